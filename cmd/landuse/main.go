// Command landuse arranges agents (homes, offices, shops, cafes) around
// fixed landmarks by simulated annealing and prints the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/landuse/anneal"
	"github.com/katalvlaran/landuse/scenario"
)

const usage = `Usage: landuse [flags]

Without -scenario the built-in 12x12 reference block is optimised.

Flags:
`

func main() {
	scenarioPath := flag.String("scenario", "", "Path to a JSON scenario (default: built-in reference)")
	seed := flag.Int64("seed", 0, "Override the scenario seed (0 keeps it)")
	jsonOut := flag.Bool("json", false, "Print the report as JSON on stdout")
	verbose := flag.Bool("verbose", false, "Log every improving swap at debug level")
	progress := flag.Int("progress", -1, "Progress cadence in iterations (-1 keeps the scenario's, 0 disables)")
	timeout := flag.Duration("timeout", 0, "Stop annealing after this long (0 keeps the scenario's limit)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})).With("run_id", uuid.New().String()[:8])
	slog.SetDefault(logger)

	s, err := loadScenario(*scenarioPath)
	if err != nil {
		slog.Error("failed to load scenario", "path", *scenarioPath, "error", err)
		os.Exit(1)
	}
	if *seed != 0 {
		s.Seed = *seed
	}
	if *timeout > 0 {
		s.TimeLimit = *timeout
	}
	every := s.ProgressEvery
	if *progress >= 0 {
		every = *progress
	}

	slog.Info("scenario loaded",
		"name", s.Name,
		"mode", s.Mode,
		"seed", s.Seed,
		"schedule", fmt.Sprintf("%g→%g @ %g", s.Schedule.Initial, s.Schedule.Final, s.Schedule.CoolingRate),
	)

	var rows []anneal.Progress
	opts := []anneal.Option{
		anneal.WithProgress(every, func(p anneal.Progress) {
			rows = append(rows, p)
			slog.Debug("progress",
				"iteration", p.Iteration,
				"temperature", fmt.Sprintf("%.4f", p.Temperature),
				"current", p.CurrentScore,
				"best", p.BestScore,
			)
		}),
	}
	if *verbose {
		opts = append(opts, anneal.WithStepHook(func(st anneal.Step) {
			if st.Accepted && st.Delta > 0 {
				slog.Debug("improving swap",
					"iteration", st.Iteration,
					"first", st.First,
					"second", st.Second,
					"delta", st.Delta,
				)
			}
		}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	started := time.Now()
	rep, runErr := s.RunContext(ctx, opts...)
	if rep == nil {
		slog.Error("run failed", "error", runErr)
		os.Exit(1)
	}
	if runErr != nil {
		slog.Warn("annealing interrupted, reporting best grid so far", "error", runErr)
	}
	slog.Info("run finished",
		"iterations", rep.Anneal.Iterations,
		"stopped", rep.Anneal.Stopped,
		"initial", rep.InitialScore,
		"final", rep.FinalScore,
		"wall", time.Since(started).Round(time.Millisecond),
	)

	if *jsonOut {
		err = writeJSON(os.Stdout, rep, rows)
	} else {
		err = writeText(os.Stdout, rep, rows)
	}
	if err != nil {
		slog.Error("failed to write report", "error", err)
		os.Exit(1)
	}
	if runErr != nil {
		os.Exit(1)
	}
}

// loadScenario reads path, or returns the reference scenario when path is empty.
func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Reference(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return scenario.Parse(data)
}
