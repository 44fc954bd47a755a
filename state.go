package amphipod

import "strings"

// MaxCells is the capacity of a State: hallway cells plus every room cell.
const MaxCells = 64

// State is one arrangement of the burrow. It is a plain comparable value, so
// it doubles as its own map key and copies never share cells.
//
// Cells are laid out hallway first, then rooms in order, each room from the
// doorway (depth 0) to the back (depth Depth-1).
type State struct {
	hallLen uint8
	rooms   uint8
	depth   uint8
	cells   [MaxCells]Token
}

func (s State) HallLen() int { return int(s.hallLen) }
func (s State) Rooms() int   { return int(s.rooms) }
func (s State) Depth() int   { return int(s.depth) }

func (s State) Hall(i int) Token { return s.cells[i] }

func (s State) Room(room, depth int) Token { return s.cells[s.roomCell(room, depth)] }

// WithHall returns a copy of s with hallway cell i set to t.
func (s State) WithHall(i int, t Token) State {
	s.cells[i] = t
	return s
}

// WithRoom returns a copy of s with the given room cell set to t.
func (s State) WithRoom(room, depth int, t Token) State {
	s.cells[s.roomCell(room, depth)] = t
	return s
}

func (s State) roomCell(room, depth int) int {
	return int(s.hallLen) + room*int(s.depth) + depth
}

// Tally counts the tokens of every kind in the hallway and the rooms.
func (s State) Tally() [MaxKinds]int {
	var tally [MaxKinds]int
	for _, t := range s.cells[:s.roomCell(int(s.rooms), 0)] {
		if !t.IsEmpty() {
			tally[t.Kind()]++
		}
	}
	return tally
}

// String renders the state as "<hallway> <room 0> <room 1> ...".
func (s State) String() string {
	var buf strings.Builder
	for i := 0; i < s.HallLen(); i++ {
		buf.WriteByte(s.Hall(i).Byte())
	}
	for r := 0; r < s.Rooms(); r++ {
		buf.WriteByte(' ')
		for j := 0; j < s.Depth(); j++ {
			buf.WriteByte(s.Room(r, j).Byte())
		}
	}
	return buf.String()
}
