package amphipod

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is returned by Replay when two consecutive states are not
// one legal move apart.
var ErrIllegalMove = errors.New("illegal move")

// Step is one move of a solution with its cost and the running total.
type Step struct {
	From  State
	To    State
	Cost  int
	Total int
}

// Replay prices a solution path move by move, checking that every pair of
// consecutive states is one legal move apart.
func (b *Burrow) Replay(path []State) ([]Step, error) {
	if len(path) < 2 {
		return nil, nil
	}
	steps := make([]Step, 0, len(path)-1)
	total := 0
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		cost, ok := b.moveCost(from, to)
		if !ok {
			return steps, fmt.Errorf("%w: step %d: %q -> %q", ErrIllegalMove, i, from, to)
		}
		total += cost
		steps = append(steps, Step{From: from, To: to, Cost: cost, Total: total})
	}
	return steps, nil
}

func (b *Burrow) moveCost(from, to State) (int, bool) {
	for _, n := range b.Neighbors(from) {
		if n.ID == to {
			return n.Cost, true
		}
	}
	return 0, false
}
