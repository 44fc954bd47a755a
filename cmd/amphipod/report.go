package main

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/saneczkab/amphipod"
)

type report struct {
	Cost     int          `json:"cost"`
	Found    bool         `json:"found"`
	Depth    int          `json:"depth"`
	Expanded int          `json:"expanded"`
	Reopened int          `json:"reopened"`
	Steps    []reportStep `json:"steps,omitempty"`
}

type reportStep struct {
	State string `json:"state"`
	Cost  int    `json:"cost"`
	Total int    `json:"total"`
}

func newReport(b *amphipod.Burrow, solution amphipod.Solution) (report, error) {
	r := report{
		Cost:     solution.Cost,
		Found:    solution.Found,
		Depth:    b.Depth(),
		Expanded: solution.ExpandedNodes,
		Reopened: solution.ReopenedNodes,
	}
	steps, err := b.Replay(solution.Path)
	if err != nil {
		return r, fmt.Errorf("solution does not replay: %w", err)
	}
	for _, s := range steps {
		r.Steps = append(r.Steps, reportStep{State: s.To.String(), Cost: s.Cost, Total: s.Total})
	}
	return r, nil
}

func writeReport(w io.Writer, r report) error {
	data, err := sonic.ConfigStd.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
