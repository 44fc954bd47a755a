package astar

import (
	"context"
	"testing"
)

func TestStepper_RunsToGoal(t *testing.T) {
	g := grid{W: 4, H: 4}
	goal := point{3, 3}
	s := NewStepper[point](context.Background(), g, point{0, 0}, reaches(goal), manhattanTo(goal))
	defer s.Close()

	var last StepSnapshot[point]
	for i := 0; i < 100; i++ {
		snap, err := s.Step()
		if err != nil {
			t.Fatalf("Step failed: %v", err)
		}
		if snap.StepIndex != i+1 {
			t.Fatalf("expected step index %d, got %d", i+1, snap.StepIndex)
		}
		if snap.FCost < snap.GScore {
			t.Errorf("f=%d below g=%d at step %d", snap.FCost, snap.GScore, snap.StepIndex)
		}
		last = snap
		if snap.Done {
			break
		}
	}

	if !last.Done || !last.Found {
		t.Fatalf("expected the stepper to finish with a path, got %+v", last)
	}
	if last.Current != goal || last.GScore != 6 {
		t.Errorf("expected goal %v at cost 6, got %v at %d", goal, last.Current, last.GScore)
	}
	if len(last.Path) != 7 {
		t.Errorf("expected 7 nodes on the path, got %d", len(last.Path))
	}
	if last.ClosedSize != last.StepIndex {
		t.Errorf("expected every expansion to close a distinct node, closed=%d steps=%d", last.ClosedSize, last.StepIndex)
	}

	again, err := s.Step()
	if err != nil {
		t.Fatalf("Step after done failed: %v", err)
	}
	if !again.Done || again.StepIndex != last.StepIndex {
		t.Errorf("expected the final snapshot to repeat, got %+v", again)
	}
}

func TestStepper_ExhaustsFrontier(t *testing.T) {
	g := weightedGraph{"S": {{ID: "A", Cost: 2}}}
	s := NewStepper[string](context.Background(), g, "S", func(n string) bool { return n == "G" }, zero[string])
	defer s.Close()

	first, err := s.Step()
	if err != nil || first.Done {
		t.Fatalf("expected S to expand, got %+v, %v", first, err)
	}
	if first.FrontierSize != 1 {
		t.Errorf("expected A on the frontier, got size %d", first.FrontierSize)
	}

	second, err := s.Step()
	if err != nil || second.Done || second.Current != "A" || second.GScore != 2 {
		t.Fatalf("expected A to expand at cost 2, got %+v, %v", second, err)
	}

	third, err := s.Step()
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if !third.Done || third.Found {
		t.Errorf("expected an exhausted search, got %+v", third)
	}
}
