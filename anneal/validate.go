package anneal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/landuse/grid"
	"github.com/katalvlaran/landuse/score"
)

// minTemperature is the smallest normal float64. Below it the geometric
// decay can stall on subnormal rounding and never reach the floor.
const minTemperature = 0x1p-1022

// validateAll checks options, grid and scorer, and returns the agent-cell
// index list used for swap selection.
//
// Stages:
//  1. Options alone (schedule and limits).
//  2. Inputs non-nil; grid matches the scorer; every cell assigned.
//  3. At least two agent cells.
//
// Complexity: O(R×C).
func validateAll(g *grid.Grid, sc *score.Scorer, opts Options) ([]int, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if sc == nil {
		return nil, ErrNilScorer
	}
	if err := sc.Check(g); err != nil {
		return nil, fmt.Errorf("anneal: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("anneal: %w", err)
	}

	agents := g.AgentCells()
	if len(agents) < 2 {
		return nil, fmt.Errorf("%w: found %d", ErrTooFewAgents, len(agents))
	}

	return agents, nil
}

// ValidateOptions reports whether opts describe a runnable schedule, without
// needing a grid. It returns the same errors OptimiseContext would:
// ErrBadTemperature, ErrTemperatureOrder, ErrCoolingRate or ErrOptionViolation.
func ValidateOptions(opts Options) error {
	return validateOptions(opts)
}

// validateOptions checks the schedule and the caller-layered limits.
//
// Contract:
//   - temperatures are finite; FinalTemperature ≥ minTemperature;
//   - InitialTemperature > FinalTemperature, so at least one iteration runs;
//   - CoolingRate ∈ (0,1) and 1−CoolingRate < 1 in float64, so T strictly decays;
//   - MaxIterations, TimeLimit, ProgressEvery ≥ 0.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	t0, tf := opts.InitialTemperature, opts.FinalTemperature
	if math.IsNaN(t0) || math.IsInf(t0, 0) || math.IsNaN(tf) || math.IsInf(tf, 0) {
		return ErrBadTemperature
	}
	if tf < minTemperature {
		return fmt.Errorf("%w: final temperature %g", ErrBadTemperature, tf)
	}
	if t0 <= tf {
		return fmt.Errorf("%w: %g ≤ %g", ErrTemperatureOrder, t0, tf)
	}

	r := opts.CoolingRate
	if math.IsNaN(r) || r <= 0 || r >= 1 || 1-r >= 1 {
		return fmt.Errorf("%w: %g", ErrCoolingRate, r)
	}

	if opts.MaxIterations < 0 || opts.TimeLimit < 0 || opts.ProgressEvery < 0 {
		return ErrOptionViolation
	}

	return nil
}
