package astar

import (
	"context"
	"errors"
)

var (
	// ErrNoPath is returned when the frontier runs dry before any goal is reached.
	ErrNoPath = errors.New("no path found")
	// ErrBudgetExhausted is returned when WithMaxExpansions stops the search.
	ErrBudgetExhausted = errors.New("expansion budget exhausted")
)

// Graph is generic over node type N.
// N must be comparable so it can be used in maps.
type Graph[NodeType comparable] interface {
	Neighbors(node NodeType) []Neighbor[NodeType]
}

// Neighbor represents a reachable node with the cost of the edge leading to it.
type Neighbor[NodeType comparable] struct {
	ID   NodeType
	Cost int
}

// Heuristic returns a lower bound on the cost from node to the nearest goal.
type Heuristic[NodeType comparable] func(node NodeType) int

// GoalTest reports whether node terminates the search.
type GoalTest[NodeType comparable] func(node NodeType) bool

// Result contains the outcome of a search
type Result[NodeType comparable] struct {
	Path          []NodeType
	TotalCost     int
	ExpandedNodes int
	// ReopenedNodes counts expansions of nodes that had already been expanded
	// through a costlier path. It stays zero for consistent heuristics.
	ReopenedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	MaxExpansions   int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many worker goroutines should score neighbors.
// Values below 2 keep the search on the calling goroutine.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithMaxExpansions stops the search with ErrBudgetExhausted after the given
// number of node expansions. Zero means unlimited.
func WithMaxExpansions(maxExpansions int) Option {
	return func(options *Options) { options.MaxExpansions = maxExpansions }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{NumberOfWorkers: 1}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

// Search executes the A* search algorithm from startNode until isGoal accepts a node.
func Search[NodeType comparable](
	contextObject context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	isGoal GoalTest[NodeType],
	heuristic Heuristic[NodeType],
	options ...Option,
) (Result[NodeType], error) {
	stepper := NewStepper(contextObject, graph, startNode, isGoal, heuristic, options...)
	defer stepper.Close()

	for {
		snapshot, err := stepper.Step()
		if err != nil {
			return Result[NodeType]{
				ExpandedNodes: snapshot.StepIndex,
				ReopenedNodes: snapshot.Reopened,
			}, err
		}
		if !snapshot.Done {
			continue
		}
		if !snapshot.Found {
			return Result[NodeType]{
				ExpandedNodes: snapshot.StepIndex,
				ReopenedNodes: snapshot.Reopened,
			}, ErrNoPath
		}
		return Result[NodeType]{
			Path:          snapshot.Path,
			TotalCost:     snapshot.GScore,
			ExpandedNodes: snapshot.StepIndex,
			ReopenedNodes: snapshot.Reopened,
			Found:         true,
		}, nil
	}
}
