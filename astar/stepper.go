package astar

import (
	"container/heap"
	"context"

	"github.com/zyedidia/generic/mapset"

	"github.com/saneczkab/amphipod/internal"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable] struct {
	Current      NodeType
	GScore       int
	FCost        int
	FrontierSize int
	ClosedSize   int
	Reopened     int
	Done         bool
	Found        bool
	Path         []NodeType
	StepIndex    int
}

// Stepper runs the search one node expansion at a time. It is not safe for
// concurrent use; the optional worker pool only scores neighbors.
type Stepper[NodeType comparable] struct {
	ctx       context.Context
	cancel    context.CancelFunc
	graph     Graph[NodeType]
	isGoal    GoalTest[NodeType]
	heuristic Heuristic[NodeType]
	start     NodeType
	budget    int
	pool      *workerPool[NodeType]

	openSet   PriorityQueue[NodeType]
	closedSet mapset.Set[NodeType]
	cameFrom  map[NodeType]NodeType
	gScore    map[NodeType]int

	stepCount int
	reopened  int
	last      StepSnapshot[NodeType]
	done      bool
}

// NewStepper creates a stepper positioned before the first expansion of startNode.
func NewStepper[NodeType comparable](
	parent context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	isGoal GoalTest[NodeType],
	heuristic Heuristic[NodeType],
	options ...Option,
) *Stepper[NodeType] {
	opts := applyOptions(options)

	ctx, cancel := context.WithCancel(parent)
	s := &Stepper[NodeType]{
		ctx: ctx, cancel: cancel,
		graph: graph, isGoal: isGoal, heuristic: heuristic,
		start:     startNode,
		budget:    opts.MaxExpansions,
		openSet:   make(PriorityQueue[NodeType], 0),
		closedSet: mapset.New[NodeType](),
		cameFrom:  make(map[NodeType]NodeType),
		gScore:    map[NodeType]int{startNode: 0},
	}
	if opts.NumberOfWorkers > 1 {
		s.pool = startWorkers(ctx, opts.NumberOfWorkers, heuristic)
	}

	heap.Init(&s.openSet)
	heap.Push(&s.openSet, &PriorityQueueItem[NodeType]{Node: startNode, GScore: 0, FCost: heuristic(startNode)})

	return s
}

// Close stops the workers
func (s *Stepper[NodeType]) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done every further call returns the final snapshot.
func (s *Stepper[NodeType]) Step() (StepSnapshot[NodeType], error) {
	if s.done {
		return s.last, nil
	}
	if err := s.ctx.Err(); err != nil {
		return s.finish(StepSnapshot[NodeType]{}), err
	}

	currentItem, ok := s.popFresh()
	if !ok {
		return s.finish(StepSnapshot[NodeType]{}), nil
	}
	current := currentItem.Node
	reached := s.isGoal(current)
	// A goal popped at the budget still ends the search; only expansions are limited.
	if !reached && s.budget > 0 && s.stepCount >= s.budget {
		heap.Push(&s.openSet, currentItem)
		return s.finish(StepSnapshot[NodeType]{}), ErrBudgetExhausted
	}

	s.stepCount++
	if s.closedSet.Has(current) {
		s.reopened++
	}
	s.closedSet.Put(current)

	if reached {
		return s.finish(StepSnapshot[NodeType]{
			Current: current,
			GScore:  currentItem.GScore,
			FCost:   currentItem.FCost,
			Found:   true,
			Path:    internal.ReconstructPath(s.cameFrom, current, s.start),
		}), nil
	}

	if err := s.relax(current, currentItem.GScore, s.graph.Neighbors(current)); err != nil {
		return s.finish(StepSnapshot[NodeType]{Current: current}), err
	}

	return s.snapshot(StepSnapshot[NodeType]{
		Current: current,
		GScore:  currentItem.GScore,
		FCost:   currentItem.FCost,
	}), nil
}

// popFresh discards frontier entries superseded by a cheaper path found after
// they were pushed.
func (s *Stepper[NodeType]) popFresh() (*PriorityQueueItem[NodeType], bool) {
	for s.openSet.Len() > 0 {
		item := heap.Pop(&s.openSet).(*PriorityQueueItem[NodeType])
		if item.GScore > s.gScore[item.Node] {
			continue
		}
		return item, true
	}
	return nil, false
}

func (s *Stepper[NodeType]) relax(current NodeType, currentG int, neighbors []Neighbor[NodeType]) error {
	if s.pool != nil {
		proposals, err := s.pool.score(s.ctx, current, currentG, neighbors)
		if err != nil {
			return err
		}
		for _, p := range proposals {
			s.accept(p)
		}
		return nil
	}

	for _, nb := range neighbors {
		tentativeG := currentG + nb.Cost
		if gPrev, ok := s.gScore[nb.ID]; ok && gPrev <= tentativeG {
			continue
		}
		s.accept(propose(ExpandTask[NodeType]{FromNode: current, Neighbor: nb, CurrentGScore: currentG}, s.heuristic))
	}
	return nil
}

func (s *Stepper[NodeType]) accept(p RelaxProposal[NodeType]) {
	if gPrev, ok := s.gScore[p.ToNode]; ok && gPrev <= p.GScore {
		return
	}
	s.gScore[p.ToNode] = p.GScore
	s.cameFrom[p.ToNode] = p.FromNode
	heap.Push(&s.openSet, &PriorityQueueItem[NodeType]{Node: p.ToNode, GScore: p.GScore, FCost: p.FCost})
}

func (s *Stepper[NodeType]) snapshot(snap StepSnapshot[NodeType]) StepSnapshot[NodeType] {
	snap.FrontierSize = s.openSet.Len()
	snap.ClosedSize = s.closedSet.Size()
	snap.Reopened = s.reopened
	snap.StepIndex = s.stepCount
	return snap
}

func (s *Stepper[NodeType]) finish(snap StepSnapshot[NodeType]) StepSnapshot[NodeType] {
	snap.Done = true
	s.done = true
	s.last = s.snapshot(snap)
	s.Close()
	return s.last
}
