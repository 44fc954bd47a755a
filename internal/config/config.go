package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment variables read before flags; flags win over them.
const (
	EnvLogLevel      = "AMPHIPOD_LOG_LEVEL"
	EnvWorkers       = "AMPHIPOD_WORKERS"
	EnvMaxExpansions = "AMPHIPOD_MAX_EXPANSIONS"
)

type Config struct {
	InputPath       string
	Unfold          bool
	Workers         int
	MaxExpansions   int
	LogLevel        zerolog.Level
	Trace           bool
	JSON            bool
	CheckInvariants bool
}

// Load reads .env from the working directory if present, then the
// environment, then args.
func Load(args []string, output io.Writer) (*Config, error) {
	return LoadFrom(".env", args, output)
}

// LoadFrom is Load with an explicit env file. A missing file is not an error.
func LoadFrom(envFile string, args []string, output io.Writer) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	workers, err := envInt(EnvWorkers, 1)
	if err != nil {
		return nil, err
	}
	maxExpansions, err := envInt(EnvMaxExpansions, 0)
	if err != nil {
		return nil, err
	}
	logLevel := os.Getenv(EnvLogLevel)
	if logLevel == "" {
		logLevel = zerolog.InfoLevel.String()
	}

	cfg := &Config{}
	flags := flag.NewFlagSet("amphipod", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&cfg.InputPath, "f", "-", "Input file, '-' for stdin")
	flags.BoolVar(&cfg.Unfold, "unfold", false, "Insert the two extra rows of the extended puzzle")
	flags.IntVar(&cfg.Workers, "workers", workers, "Goroutines scoring successor states")
	flags.IntVar(&cfg.MaxExpansions, "max-expansions", maxExpansions, "Stop after this many expansions (0 = unlimited)")
	flags.StringVar(&logLevel, "log-level", logLevel, "Log level (trace, debug, info, warn, error)")
	flags.BoolVar(&cfg.Trace, "trace", false, "Log every expansion at debug level")
	flags.BoolVar(&cfg.JSON, "json", false, "Print a JSON report instead of the bare cost")
	flags.BoolVar(&cfg.CheckInvariants, "check", false, "Verify every generated move")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if cfg.LogLevel, err = zerolog.ParseLevel(logLevel); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.MaxExpansions < 0 {
		return nil, fmt.Errorf("max-expansions must not be negative, got %d", cfg.MaxExpansions)
	}
	return cfg, nil
}

func envInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s not an integer: %w", key, err)
	}
	return v, nil
}
