package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/landuse/anneal"
	"github.com/katalvlaran/landuse/distance"
	"github.com/katalvlaran/landuse/grid"
	"github.com/katalvlaran/landuse/score"
)

// Timings records the wall-clock cost of each pipeline stage.
type Timings struct {
	Build        time.Duration // landmark placement and population
	DistanceMaps time.Duration
	InitialScore time.Duration
	Optimisation time.Duration
	FinalScore   time.Duration
}

// Total sums all stages.
func (t Timings) Total() time.Duration {
	return t.Build + t.DistanceMaps + t.InitialScore + t.Optimisation + t.FinalScore
}

// Report is the outcome of one Run.
type Report struct {
	Scenario *Scenario
	// Initial is a snapshot of the populated grid before optimization.
	Initial *grid.Grid
	// Grid is the optimized grid.
	Grid   *grid.Grid
	Scorer *score.Scorer

	InitialScore float64
	FinalScore   float64
	Anneal       anneal.Result
	Timings      Timings
}

// Improvement returns FinalScore − InitialScore; never negative.
func (r *Report) Improvement() float64 {
	return r.FinalScore - r.InitialScore
}

// Run executes s end to end with context.Background(). See RunContext.
func (s *Scenario) Run(opts ...anneal.Option) (*Report, error) {
	return s.RunContext(context.Background(), opts...)
}

// RunContext validates s, builds the initial grid, computes the distance
// maps once, scores, anneals and rescores.
//
// opts are applied after the scenario's own schedule, RNG and limits, so
// callers can attach progress or step hooks (or override the schedule).
// The scenario's ProgressEvery is installed first; a later WithProgress
// replaces it.
//
// A canceled ctx still yields the report of the best grid found, together
// with ctx.Err().
func (s *Scenario) RunContext(ctx context.Context, opts ...anneal.Option) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	rng := anneal.NewRand(s.Seed)
	rep := &Report{Scenario: s}

	start := time.Now()
	g, err := s.build(rng)
	if err != nil {
		return nil, err
	}
	rep.Timings.Build = time.Since(start)
	rep.Initial = g.Clone()

	start = time.Now()
	maps, err := distance.BuildAll(g)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	rep.Timings.DistanceMaps = time.Since(start)

	prefs, err := score.NewPreferenceTable(s.Kinds, s.Preferences)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	sc, err := score.New(prefs, maps)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	rep.Scorer = sc

	start = time.Now()
	if rep.InitialScore, err = sc.Score(g); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	rep.Timings.InitialScore = time.Since(start)

	all := append(s.options(rng), func(o *anneal.Options) { o.ProgressEvery = s.ProgressEvery })
	all = append(all, opts...)

	start = time.Now()
	res, runErr := anneal.OptimiseContext(ctx, g, sc, all...)
	rep.Timings.Optimisation = time.Since(start)
	if runErr != nil && res.Grid == nil {
		return nil, fmt.Errorf("scenario: %w", runErr)
	}
	rep.Anneal = res
	rep.Grid = g

	start = time.Now()
	if rep.FinalScore, err = sc.Score(g); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	rep.Timings.FinalScore = time.Since(start)

	return rep, runErr
}
