package amphipod

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// solveLog is a sub-logger carrying module=amphipod. It is derived on use so
// it follows whatever the caller installed as the global logger.
func solveLog() zerolog.Logger {
	return log.With().Str("module", "amphipod").Logger()
}
