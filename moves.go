package amphipod

import "github.com/saneczkab/amphipod/astar"

// Neighbors returns every state reachable from s by moving one amphipod,
// together with the cost of that move. An amphipod either leaves a room for a
// hallway stop or walks from the hallway straight to the bottom of its own room.
func (b *Burrow) Neighbors(s State) []astar.Neighbor[State] {
	next := make([]astar.Neighbor[State], 0, 2*len(b.stops))
	next = b.roomToHall(s, next)
	next = b.hallToRoom(s, next)
	if b.checkInvariants {
		for _, n := range next {
			b.mustBeLegal(s, n)
		}
	}
	return next
}

func (b *Burrow) roomToHall(s State, next []astar.Neighbor[State]) []astar.Neighbor[State] {
	for r, door := range b.doors {
		top := b.top(s, r)
		if top == b.depth || b.settled(s, r) == b.depth-top || !s.Hall(door).IsEmpty() {
			continue
		}

		t := s.Room(r, top)
		left := s.WithRoom(r, top, Empty)
		step := b.costs[t.Kind()]
		for _, dir := range [2]int{-1, 1} {
			for h := door + dir; h >= 0 && h < b.hallLen; h += dir {
				if !s.Hall(h).IsEmpty() {
					break
				}
				if b.isDoor[h] {
					continue
				}
				next = append(next, astar.Neighbor[State]{
					ID:   left.WithHall(h, t),
					Cost: (top + 1 + abs(door-h)) * step,
				})
			}
		}
	}
	return next
}

func (b *Burrow) hallToRoom(s State, next []astar.Neighbor[State]) []astar.Neighbor[State] {
	for h := 0; h < b.hallLen; h++ {
		t := s.Hall(h)
		if t.IsEmpty() {
			continue
		}
		kind := t.Kind()
		door := b.doors[kind]
		if !b.pathClear(s, h, door) {
			continue
		}
		slot, ok := b.entrySlot(s, kind)
		if !ok {
			continue
		}
		next = append(next, astar.Neighbor[State]{
			ID:   s.WithHall(h, Empty).WithRoom(kind, slot, t),
			Cost: (abs(door-h) + slot + 1) * b.costs[kind],
		})
	}
	return next
}

// top returns the depth of the first occupied cell of room r, or Depth when
// the room is empty.
func (b *Burrow) top(s State, r int) int {
	j := 0
	for j < b.depth && s.Room(r, j).IsEmpty() {
		j++
	}
	return j
}

// entrySlot returns the deepest empty cell of room r. A room holding any
// foreign token, or no empty cell, cannot be entered.
func (b *Burrow) entrySlot(s State, r int) (int, bool) {
	own := KindToken(r)
	slot := -1
	for j := 0; j < b.depth; j++ {
		switch t := s.Room(r, j); {
		case t.IsEmpty():
			slot = j
		case t != own:
			return 0, false
		}
	}
	return slot, slot >= 0
}

// pathClear reports whether every hallway cell after from, up to and
// including to, is empty.
func (b *Burrow) pathClear(s State, from, to int) bool {
	step := 1
	if to < from {
		step = -1
	}
	for i := from + step; i != to+step; i += step {
		if !s.Hall(i).IsEmpty() {
			return false
		}
	}
	return true
}
