package amphipod

import "fmt"

// Token is the content of one cell: Empty or an amphipod of some kind.
// Kind i is stored as i+1 so the zero value is an empty cell.
type Token uint8

const (
	Empty Token = 0

	emptyByte = '.'
	firstKind = 'A'

	// MaxKinds bounds the alphabet to A..H.
	MaxKinds = 8
)

// KindToken returns the token for amphipod kind (0 for A, 1 for B, ...).
func KindToken(kind int) Token { return Token(kind + 1) }

// ParseToken reads a cell character: '.' or an uppercase letter.
func ParseToken(c byte) (Token, error) {
	switch {
	case c == emptyByte:
		return Empty, nil
	case c >= firstKind && c < firstKind+MaxKinds:
		return KindToken(int(c - firstKind)), nil
	default:
		return Empty, fmt.Errorf("unknown cell %q", c)
	}
}

func (t Token) IsEmpty() bool { return t == Empty }

// Kind is the index of the token's type and of its destination room; -1 for Empty.
func (t Token) Kind() int { return int(t) - 1 }

func (t Token) Byte() byte {
	if t == Empty {
		return emptyByte
	}
	return firstKind + byte(t.Kind())
}

func (t Token) String() string { return string(t.Byte()) }
