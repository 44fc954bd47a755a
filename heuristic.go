package amphipod

// Heuristic returns a lower bound on the cost of solving s. Every amphipod
// that is not settled is priced on its own, ignoring the others:
//
//   - in a room at depth j: j+1 steps to the hallway, then the walk to its own
//     door (two steps out and back when it already sits in its own room);
//   - in the hallway: the walk to its own door.
//
// On top of that each room still missing n amphipods needs 1+2+...+n steps
// down into the slots they will fill. The bound is consistent: no move lowers
// it by more than the move costs.
func (b *Burrow) Heuristic(s State) int {
	total := 0
	for r, door := range b.doors {
		settled := b.settled(s, r)
		need := b.depth - settled
		total += need * (need + 1) / 2 * b.costs[r]

		for j := 0; j < b.depth-settled; j++ {
			t := s.Room(r, j)
			if t.IsEmpty() {
				continue
			}
			kind := t.Kind()
			walk := abs(door - b.doors[kind])
			if kind == r {
				walk = 2
			}
			total += (j + 1 + walk) * b.costs[kind]
		}
	}

	for h := 0; h < b.hallLen; h++ {
		if t := s.Hall(h); !t.IsEmpty() {
			kind := t.Kind()
			total += abs(h-b.doors[kind]) * b.costs[kind]
		}
	}
	return total
}
