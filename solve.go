package amphipod

import (
	"context"
	"errors"

	"github.com/saneczkab/amphipod/astar"
)

// NoSolution is the cost reported when no arrangement of moves sorts the burrow.
const NoSolution = -1

// Solution is the outcome of a solve.
type Solution struct {
	Cost          int
	Found         bool
	ExpandedNodes int
	ReopenedNodes int
	// Path runs from the start state to the goal, both included.
	Path []State
}

// Solve finds the cheapest way to sort start. An unsolvable burrow is not an
// error: it yields Cost == NoSolution.
func (b *Burrow) Solve(ctx context.Context, start State, options ...astar.Option) (Solution, error) {
	logger := solveLog()
	logger.Debug().
		Str("start", start.String()).
		Int("depth", b.depth).
		Int("rooms", b.Rooms()).
		Int("estimate", b.Heuristic(start)).
		Msg("Solving burrow")

	result, err := astar.Search[State](ctx, b, start, b.IsGoal, b.Heuristic, options...)
	if errors.Is(err, astar.ErrNoPath) {
		logger.Debug().Int("expanded", result.ExpandedNodes).Msg("Burrow has no solution")
		return Solution{Cost: NoSolution, ExpandedNodes: result.ExpandedNodes}, nil
	}
	if err != nil {
		return Solution{Cost: NoSolution, ExpandedNodes: result.ExpandedNodes}, err
	}

	logger.Debug().
		Int("cost", result.TotalCost).
		Int("expanded", result.ExpandedNodes).
		Int("reopened", result.ReopenedNodes).
		Int("moves", len(result.Path)-1).
		Msg("Burrow solved")

	return Solution{
		Cost:          result.TotalCost,
		Found:         true,
		ExpandedNodes: result.ExpandedNodes,
		ReopenedNodes: result.ReopenedNodes,
		Path:          result.Path,
	}, nil
}

// Stepper returns a search over b that advances one expansion per Step.
func (b *Burrow) Stepper(ctx context.Context, start State, options ...astar.Option) *astar.Stepper[State] {
	return astar.NewStepper[State](ctx, b, start, b.IsGoal, b.Heuristic, options...)
}

// MinimumCost parses a diagram and returns the cheapest sorting cost, or
// NoSolution when the burrow cannot be sorted.
func MinimumCost(ctx context.Context, lines []string, options ...astar.Option) (int, error) {
	b, start, err := Parse(lines)
	if err != nil {
		return NoSolution, err
	}
	solution, err := b.Solve(ctx, start, options...)
	if err != nil {
		return NoSolution, err
	}
	return solution.Cost, nil
}
