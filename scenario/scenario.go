package scenario

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/landuse/anneal"
	"github.com/katalvlaran/landuse/grid"
	"github.com/katalvlaran/landuse/layout"
	"github.com/katalvlaran/landuse/score"
)

// LandmarkMode selects how landmark cells are placed before population.
type LandmarkMode int

const (
	// ModeLayout reads landmarks from Scenario.Layout.
	ModeLayout LandmarkMode = iota
	// ModeRandom scatters landmarks uniformly over an empty Rows×Cols grid.
	ModeRandom
	// ModeNoise clusters landmarks along simplex-noise peaks.
	ModeNoise
)

// String returns the mode name used in scenario documents.
func (m LandmarkMode) String() string {
	switch m {
	case ModeLayout:
		return "layout"
	case ModeRandom:
		return "random"
	case ModeNoise:
		return "noise"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseLandmarkMode maps a mode name back to its LandmarkMode.
func ParseLandmarkMode(s string) (LandmarkMode, error) {
	switch s {
	case "layout":
		return ModeLayout, nil
	case "random":
		return ModeRandom, nil
	case "noise":
		return ModeNoise, nil
	default:
		return 0, fmt.Errorf("%w: unknown landmark mode %q", ErrInvalidScenario, s)
	}
}

// Schedule is the annealing temperature schedule.
type Schedule struct {
	Initial     float64
	Final       float64
	CoolingRate float64
}

// Scenario describes one optimization run. The zero value is not usable;
// start from Reference or Parse.
type Scenario struct {
	Name  string
	Kinds *grid.Kinds

	// Mode selects the landmark source. ModeLayout uses Layout and ignores
	// Rows and Cols; the other modes start from an empty Rows×Cols grid.
	Mode   LandmarkMode
	Layout []string
	Rows   int
	Cols   int

	// Fraction is the landmark share of all cells for ModeRandom and ModeNoise.
	Fraction float64
	// Noise configures ModeNoise. Its Fraction is replaced by the field
	// above and its Seed is offset by Scenario.Seed.
	Noise layout.NoiseConfig

	Shares      map[grid.CellType]float64
	Preferences map[grid.CellType][]float64

	Schedule      Schedule
	MaxIterations int
	TimeLimit     time.Duration
	ProgressEvery int

	// Seed drives every random draw of the run; 0 selects the default seed.
	Seed int64
}

// Validate checks the scenario without running it.
// Returns ErrInvalidScenario wrapping the first problem found.
func (s *Scenario) Validate() error {
	if s.Kinds == nil {
		return fmt.Errorf("%w: no kind catalog", ErrInvalidScenario)
	}
	switch s.Mode {
	case ModeLayout:
		if len(s.Layout) == 0 {
			return fmt.Errorf("%w: layout mode needs layout rows", ErrInvalidScenario)
		}
		if _, err := grid.Parse(s.Layout, s.Kinds); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
	case ModeRandom, ModeNoise:
		if s.Rows <= 0 || s.Cols <= 0 {
			return fmt.Errorf("%w: %s mode needs positive rows and cols, got %dx%d",
				ErrInvalidScenario, s.Mode, s.Rows, s.Cols)
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidScenario, s.Mode)
	}
	if err := layout.CheckShares(s.Kinds, s.Shares); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if _, err := score.NewPreferenceTable(s.Kinds, s.Preferences); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if s.MaxIterations < 0 || s.TimeLimit < 0 || s.ProgressEvery < 0 {
		return fmt.Errorf("%w: negative iteration cap, time limit or progress cadence", ErrInvalidScenario)
	}
	o := anneal.DefaultOptions()
	for _, opt := range s.options(nil) {
		opt(&o)
	}
	o.ProgressEvery = s.ProgressEvery
	if err := anneal.ValidateOptions(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	return nil
}

// options translates the run limits into annealer options driven by r.
func (s *Scenario) options(r *rand.Rand) []anneal.Option {
	return []anneal.Option{
		anneal.WithSchedule(s.Schedule.Initial, s.Schedule.Final, s.Schedule.CoolingRate),
		anneal.WithRand(r),
		anneal.WithMaxIterations(s.MaxIterations),
		anneal.WithTimeLimit(s.TimeLimit),
	}
}

// Build validates s and returns the fully populated initial grid.
// It is deterministic in s.Seed.
func (s *Scenario) Build() (*grid.Grid, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s.build(anneal.NewRand(s.Seed))
}

// build places landmarks and agents using r. s must be valid.
func (s *Scenario) build(r *rand.Rand) (*grid.Grid, error) {
	var (
		g   *grid.Grid
		err error
	)
	switch s.Mode {
	case ModeLayout:
		g, err = grid.Parse(s.Layout, s.Kinds)
	case ModeRandom:
		if g, err = grid.New(s.Rows, s.Cols, s.Kinds); err == nil {
			err = layout.RandomLandmarks(g, s.Fraction, r)
		}
	case ModeNoise:
		if g, err = grid.New(s.Rows, s.Cols, s.Kinds); err == nil {
			cfg := s.Noise
			cfg.Fraction = s.Fraction
			cfg.Seed += s.Seed
			err = layout.NoiseLandmarks(g, cfg)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if err = layout.Populate(g, s.Shares, r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	return g, nil
}
