package amphipod

import (
	"fmt"
	"slices"
)

// Burrow is the fixed geometry of one puzzle: a hallway of HallLen cells,
// one room per amphipod kind hanging below a door position, and the per-step
// cost of every kind. It is immutable once built and serves as the search graph.
type Burrow struct {
	hallLen int
	depth   int
	doors   []int
	stops   []int
	isDoor  []bool
	costs   []int

	checkInvariants bool
}

// NewBurrow builds the geometry for rooms below the given hallway positions.
// Room i is the destination of kind i and costs 10^i per step.
func NewBurrow(hallLen int, doors []int, depth int) (*Burrow, error) {
	switch {
	case len(doors) == 0 || len(doors) > MaxKinds:
		return nil, fmt.Errorf("%w: %d rooms, want 1..%d", ErrMalformedInput, len(doors), MaxKinds)
	case depth < 1:
		return nil, fmt.Errorf("%w: room depth %d", ErrMalformedInput, depth)
	case hallLen+len(doors)*depth > MaxCells:
		return nil, fmt.Errorf("%w: %d hallway cells and %d rooms of depth %d exceed %d cells",
			ErrMalformedInput, hallLen, len(doors), depth, MaxCells)
	}

	b := &Burrow{
		hallLen: hallLen,
		depth:   depth,
		doors:   slices.Clone(doors),
		isDoor:  make([]bool, hallLen),
		costs:   make([]int, len(doors)),
	}
	cost := 1
	for r, door := range doors {
		if door < 0 || door >= hallLen {
			return nil, fmt.Errorf("%w: door of room %d at %d outside hallway of %d", ErrMalformedInput, r, door, hallLen)
		}
		if b.isDoor[door] {
			return nil, fmt.Errorf("%w: two rooms share door %d", ErrMalformedInput, door)
		}
		b.isDoor[door] = true
		b.costs[r] = cost
		cost *= 10
	}
	for i := 0; i < hallLen; i++ {
		if !b.isDoor[i] {
			b.stops = append(b.stops, i)
		}
	}
	return b, nil
}

// WithInvariantChecks returns a copy of b that verifies every generated move
// and panics on a broken one.
func (b *Burrow) WithInvariantChecks() *Burrow {
	c := *b
	c.checkInvariants = true
	return &c
}

func (b *Burrow) HallLen() int { return b.hallLen }
func (b *Burrow) Rooms() int   { return len(b.doors) }
func (b *Burrow) Depth() int   { return b.depth }

// Door is the hallway position right above room r.
func (b *Burrow) Door(r int) int { return b.doors[r] }

// StepCost is the cost of moving a token of the given kind by one cell.
func (b *Burrow) StepCost(kind int) int { return b.costs[kind] }

// NewState returns an all-empty state shaped for this burrow.
func (b *Burrow) NewState() State {
	return State{hallLen: uint8(b.hallLen), rooms: uint8(len(b.doors)), depth: uint8(b.depth)}
}

// Goal returns the solved arrangement.
func (b *Burrow) Goal() State {
	s := b.NewState()
	for r := range b.doors {
		for j := 0; j < b.depth; j++ {
			s = s.WithRoom(r, j, KindToken(r))
		}
	}
	return s
}

// IsGoal reports whether every room is filled with its own kind.
func (b *Burrow) IsGoal(s State) bool {
	for r := range b.doors {
		if b.settled(s, r) != b.depth {
			return false
		}
	}
	return true
}

// settled counts the tokens at the back of room r that are of kind r with
// nothing foreign below them. They never have to move again.
func (b *Burrow) settled(s State, r int) int {
	own := KindToken(r)
	n := 0
	for j := b.depth - 1; j >= 0 && s.Room(r, j) == own; j-- {
		n++
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
