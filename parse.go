package amphipod

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrMalformedInput is wrapped by every error about puzzle text or geometry.
var ErrMalformedInput = errors.New("malformed burrow")

// unfoldedRows are the two rows folded out of the extended four-room puzzle.
var unfoldedRows = []string{
	"  #D#C#B#A#",
	"  #D#B#A#C#",
}

// Parse reads a burrow diagram:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// The second line is the hallway. Every line between it and the bottom wall is
// one level of the rooms, so the room depth follows from the line count. Room
// columns come from the first room line and must match on every other one.
func Parse(lines []string) (*Burrow, State, error) {
	lines = trimLines(lines)
	if len(lines) < 4 {
		return nil, State{}, fmt.Errorf("%w: %d lines, want at least 4", ErrMalformedInput, len(lines))
	}
	if err := checkWall(lines[0]); err != nil {
		return nil, State{}, fmt.Errorf("%w: line 1: %v", ErrMalformedInput, err)
	}
	last := len(lines) - 1
	if err := checkWall(lines[last]); err != nil {
		return nil, State{}, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, last+1, err)
	}

	hallway := lines[1]
	if len(hallway) < 3 || hallway[0] != '#' || hallway[len(hallway)-1] != '#' {
		return nil, State{}, fmt.Errorf("%w: line 2: hallway must be enclosed in '#': %q", ErrMalformedInput, hallway)
	}
	hallway = hallway[1 : len(hallway)-1]

	roomRows := lines[2:last]
	columns := roomColumns(roomRows[0])
	for i, row := range roomRows[1:] {
		if !slices.Equal(roomColumns(row), columns) {
			return nil, State{}, fmt.Errorf("%w: line %d: inconsistent room widths: %q", ErrMalformedInput, i+4, row)
		}
	}

	doors := make([]int, len(columns))
	for i, col := range columns {
		doors[i] = col - 1
	}
	b, err := NewBurrow(len(hallway), doors, len(roomRows))
	if err != nil {
		return nil, State{}, err
	}

	s := b.NewState()
	for i := 0; i < len(hallway); i++ {
		t, err := b.parseCell(hallway[i])
		if err != nil {
			return nil, State{}, fmt.Errorf("%w: line 2, column %d: %v", ErrMalformedInput, i+2, err)
		}
		s = s.WithHall(i, t)
	}
	for j, row := range roomRows {
		for r, col := range columns {
			t, err := b.parseCell(row[col])
			if err != nil {
				return nil, State{}, fmt.Errorf("%w: line %d, column %d: %v", ErrMalformedInput, j+3, col+1, err)
			}
			s = s.WithRoom(r, j, t)
		}
	}

	if err := b.checkStacks(s); err != nil {
		return nil, State{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	tally := s.Tally()
	for kind := 0; kind < b.Rooms(); kind++ {
		if tally[kind] != b.depth {
			return nil, State{}, fmt.Errorf("%w: %d amphipods of kind %s, want %d",
				ErrMalformedInput, tally[kind], KindToken(kind), b.depth)
		}
	}
	return b, s, nil
}

// Unfold inserts the two hidden rows of the extended puzzle right after the
// first room line, turning a depth-2 four-room diagram into a depth-4 one.
func Unfold(lines []string) ([]string, error) {
	lines = trimLines(lines)
	if len(lines) < 4 {
		return nil, fmt.Errorf("%w: %d lines, want at least 4", ErrMalformedInput, len(lines))
	}
	if n := len(roomColumns(lines[2])); n != len(roomColumns(unfoldedRows[0])) {
		return nil, fmt.Errorf("%w: unfolding needs %d rooms, got %d", ErrMalformedInput, len(roomColumns(unfoldedRows[0])), n)
	}
	unfolded := make([]string, 0, len(lines)+len(unfoldedRows))
	unfolded = append(unfolded, lines[:3]...)
	unfolded = append(unfolded, unfoldedRows...)
	return append(unfolded, lines[3:]...), nil
}

func (b *Burrow) parseCell(c byte) (Token, error) {
	t, err := ParseToken(c)
	if err != nil {
		return Empty, err
	}
	if !t.IsEmpty() && t.Kind() >= b.Rooms() {
		return Empty, fmt.Errorf("amphipod %s has no room", t)
	}
	return t, nil
}

// roomColumns lists the positions of cells ('.' or letters) in a room line.
func roomColumns(row string) []int {
	var cols []int
	for i := 0; i < len(row); i++ {
		if c := row[i]; c == emptyByte || (c >= 'A' && c <= 'Z') {
			cols = append(cols, i)
		}
	}
	return cols
}

func checkWall(line string) error {
	body := strings.TrimLeft(line, " ")
	if body == "" || strings.Trim(body, "#") != "" {
		return fmt.Errorf("expected a wall of '#', got %q", line)
	}
	return nil
}

func trimLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimRight(l, " \t\r")
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}
