package amphipod

import (
	"context"
	"errors"
	"testing"

	"github.com/saneczkab/amphipod/astar"
)

func TestMinimumCost(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  int
	}{
		{"toy", toyLines, 46},
		{"example", exampleLines, 12521},
		{"unfolded example", unfoldedExampleLines, 44169},
		{"already sorted", []string{"#############", "#...........#", "###A#B#C#D###", "  #A#B#C#D#", "  #########"}, 0},
		{"no hallway stops", []string{"####", "#..#", "#BA#", "####"}, NoSolution},
	}
	for _, c := range cases {
		got, err := MinimumCost(context.Background(), c.lines)
		if err != nil {
			t.Fatalf("%s: MinimumCost failed: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: cost %d, want %d", c.name, got, c.want)
		}
	}
}

func TestMinimumCost_Malformed(t *testing.T) {
	got, err := MinimumCost(context.Background(), exampleLines[:2])
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
	if got != NoSolution {
		t.Errorf("expected NoSolution alongside the error, got %d", got)
	}
}

func TestSolve_PathReplaysToCost(t *testing.T) {
	b, start := mustParse(t, exampleLines)
	b = b.WithInvariantChecks()

	solution, err := b.Solve(context.Background(), start)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !solution.Found || solution.Cost != 12521 {
		t.Fatalf("expected 12521, got %+v", solution.Cost)
	}
	if solution.Path[0] != start || !b.IsGoal(solution.Path[len(solution.Path)-1]) {
		t.Fatalf("path must run from the start to a goal")
	}
	if solution.ReopenedNodes != 0 {
		t.Errorf("consistent heuristic reopened %d nodes", solution.ReopenedNodes)
	}

	steps, err := b.Replay(solution.Path)
	if err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	if len(steps) != len(solution.Path)-1 {
		t.Fatalf("expected %d steps, got %d", len(solution.Path)-1, len(steps))
	}
	if total := steps[len(steps)-1].Total; total != solution.Cost {
		t.Errorf("replayed total %d differs from cost %d", total, solution.Cost)
	}
}

func TestSolve_AlreadySolvedExpandsOnce(t *testing.T) {
	b := standardBurrow(t, 4)
	solution, err := b.Solve(context.Background(), b.Goal())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if solution.Cost != 0 || solution.ExpandedNodes != 1 || len(solution.Path) != 1 {
		t.Errorf("unexpected solution for a sorted burrow: %+v", solution)
	}
}

func TestSolve_Workers(t *testing.T) {
	b, start := mustParse(t, exampleLines)
	solution, err := b.Solve(context.Background(), start, astar.WithWorkers(4))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if solution.Cost != 12521 {
		t.Errorf("worker pool found %d, want 12521", solution.Cost)
	}
}

func TestSolve_Budget(t *testing.T) {
	b, start := mustParse(t, exampleLines)
	solution, err := b.Solve(context.Background(), start, astar.WithMaxExpansions(10))
	if !errors.Is(err, astar.ErrBudgetExhausted) {
		t.Fatalf("expected ErrBudgetExhausted, got %v", err)
	}
	if solution.Found || solution.Cost != NoSolution {
		t.Errorf("expected no solution when the budget runs out, got %+v", solution)
	}
}

func TestReplay_RejectsJumps(t *testing.T) {
	b, start := mustParse(t, exampleLines)
	if _, err := b.Replay([]State{start, b.Goal()}); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("expected ErrIllegalMove, got %v", err)
	}
	if steps, err := b.Replay([]State{start}); err != nil || steps != nil {
		t.Errorf("a single state has no steps, got %v, %v", steps, err)
	}
}

func TestStepper_TracesToGoal(t *testing.T) {
	b, start := mustParse(t, toyLines)
	s := b.Stepper(context.Background(), start)
	defer s.Close()

	for {
		snap, err := s.Step()
		if err != nil {
			t.Fatalf("Step failed: %v", err)
		}
		if !snap.Done {
			continue
		}
		if !snap.Found || snap.GScore != 46 {
			t.Fatalf("expected the toy to finish at 46, got %+v", snap)
		}
		return
	}
}
