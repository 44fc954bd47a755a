package amphipod

import (
	"fmt"

	"github.com/saneczkab/amphipod/astar"
)

// mustBeLegal panics when a generated move breaks an invariant the search
// relies on. Such a move means the generator is wrong, and any cost found
// with it would be wrong too.
func (b *Burrow) mustBeLegal(from State, n astar.Neighbor[State]) {
	if err := b.checkMove(from, n.ID, n.Cost); err != nil {
		panic(fmt.Sprintf("amphipod: illegal move %q -> %q: %v", from, n.ID, err))
	}
}

func (b *Burrow) checkMove(from, to State, cost int) error {
	if cost <= 0 {
		return fmt.Errorf("non-positive cost %d", cost)
	}
	if from.Tally() != to.Tally() {
		return fmt.Errorf("token counts changed from %v to %v", from.Tally(), to.Tally())
	}
	changed := 0
	for i := 0; i < MaxCells; i++ {
		if from.cells[i] != to.cells[i] {
			changed++
		}
	}
	if changed != 2 {
		return fmt.Errorf("%d cells changed, want 2", changed)
	}
	return b.checkStacks(to)
}

// checkStacks verifies that no room has an empty cell below an occupied one.
func (b *Burrow) checkStacks(s State) error {
	for r := range b.doors {
		top := b.top(s, r)
		for j := top; j < b.depth; j++ {
			if s.Room(r, j).IsEmpty() {
				return fmt.Errorf("room %d has a gap at depth %d below depth %d", r, j, top)
			}
		}
	}
	return nil
}
