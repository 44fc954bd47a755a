package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/saneczkab/amphipod"
	"github.com/saneczkab/amphipod/astar"
	"github.com/saneczkab/amphipod/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal().Err(err).Msg("amphipod failed")
	}
}

// run reads a burrow diagram, solves it and prints the minimal energy.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	initLogger(stderr, cfg.LogLevel)

	lines, err := readLines(cfg.InputPath, stdin)
	if err != nil {
		return err
	}
	if cfg.Unfold {
		if lines, err = amphipod.Unfold(lines); err != nil {
			return err
		}
	}

	b, start, err := amphipod.Parse(lines)
	if err != nil {
		return err
	}
	if cfg.CheckInvariants {
		b = b.WithInvariantChecks()
	}
	log.Info().
		Int("rooms", b.Rooms()).
		Int("depth", b.Depth()).
		Str("start", start.String()).
		Msg("Burrow loaded")

	options := []astar.Option{
		astar.WithWorkers(cfg.Workers),
		astar.WithMaxExpansions(cfg.MaxExpansions),
	}
	began := time.Now()
	var solution amphipod.Solution
	if cfg.Trace {
		solution, err = trace(ctx, b, start, options)
	} else {
		solution, err = b.Solve(ctx, start, options...)
	}
	if err != nil {
		return fmt.Errorf("failed to solve burrow: %w", err)
	}
	log.Info().
		Int("cost", solution.Cost).
		Int("expanded", solution.ExpandedNodes).
		Dur("elapsed", time.Since(began)).
		Msg("Search finished")

	if cfg.JSON {
		r, err := newReport(b, solution)
		if err != nil {
			return err
		}
		return writeReport(stdout, r)
	}
	_, err = fmt.Fprintln(stdout, solution.Cost)
	return err
}

func initLogger(out io.Writer, level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}).
		With().
		Timestamp().
		Logger()
}

func readLines(path string, stdin io.Reader) ([]string, error) {
	in := stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer file.Close()
		in = file
	}

	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}

// trace drives the search one expansion at a time and logs each of them.
func trace(ctx context.Context, b *amphipod.Burrow, start amphipod.State, options []astar.Option) (amphipod.Solution, error) {
	stepper := b.Stepper(ctx, start, options...)
	defer stepper.Close()

	for {
		snap, err := stepper.Step()
		if err != nil {
			return amphipod.Solution{Cost: amphipod.NoSolution, ExpandedNodes: snap.StepIndex}, err
		}
		if !snap.Done {
			log.Debug().
				Int("step", snap.StepIndex).
				Int("g", snap.GScore).
				Int("f", snap.FCost).
				Int("frontier", snap.FrontierSize).
				Str("state", snap.Current.String()).
				Msg("Expanded")
			continue
		}
		if !snap.Found {
			return amphipod.Solution{Cost: amphipod.NoSolution, ExpandedNodes: snap.StepIndex}, nil
		}
		return amphipod.Solution{
			Cost:          snap.GScore,
			Found:         true,
			ExpandedNodes: snap.StepIndex,
			ReopenedNodes: snap.Reopened,
			Path:          snap.Path,
		}, nil
	}
}
