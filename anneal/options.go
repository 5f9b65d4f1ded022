package anneal

import (
	"math/rand"
	"time"
)

// Defaults of the annealing schedule.
const (
	DefaultInitialTemperature = 1000.0
	DefaultFinalTemperature   = 1.0
	DefaultCoolingRate        = 0.003
	DefaultProgressEvery      = 100
)

// Options configures one annealing run.
type Options struct {
	// InitialTemperature is the starting temperature. Must exceed FinalTemperature.
	InitialTemperature float64
	// FinalTemperature is the floor; the loop runs while T > FinalTemperature.
	FinalTemperature float64
	// CoolingRate is subtracted from 1 to form the per-iteration decay factor.
	// Must lie strictly in (0,1).
	CoolingRate float64

	// Seed drives the RNG when Rand is nil; 0 selects defaultRNGSeed.
	Seed int64
	// Rand, if non-nil, is used instead of a seeded source. Not goroutine-safe.
	Rand *rand.Rand

	// MaxIterations caps the number of iterations; 0 means unlimited.
	MaxIterations int
	// TimeLimit caps wall-clock time; 0 means unlimited.
	TimeLimit time.Duration

	// ProgressEvery calls OnProgress on iterations divisible by it; 0 disables.
	ProgressEvery int
	// OnProgress receives periodic progress reports.
	OnProgress func(Progress)
	// OnStep receives every finished iteration.
	OnStep func(Step)
}

// Option mutates Options before a run.
type Option func(*Options)

// DefaultOptions returns the reference schedule:
//   - InitialTemperature: 1000
//   - FinalTemperature:   1
//   - CoolingRate:        0.003
//   - Seed:               0 (default deterministic stream)
//   - ProgressEvery:      100, with no OnProgress hook
//   - no iteration cap, no time limit.
func DefaultOptions() Options {
	return Options{
		InitialTemperature: DefaultInitialTemperature,
		FinalTemperature:   DefaultFinalTemperature,
		CoolingRate:        DefaultCoolingRate,
		ProgressEvery:      DefaultProgressEvery,
	}
}

// WithSchedule sets the initial temperature, floor and cooling rate.
func WithSchedule(initial, final, coolingRate float64) Option {
	return func(o *Options) {
		o.InitialTemperature = initial
		o.FinalTemperature = final
		o.CoolingRate = coolingRate
	}
}

// WithSeed sets a deterministic seed (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies an explicit RNG; nil keeps the seeded source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithMaxIterations caps the iteration count; 0 means unlimited.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithTimeLimit caps wall-clock time; 0 means unlimited.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithProgress reports progress every n iterations to fn.
func WithProgress(n int, fn func(Progress)) Option {
	return func(o *Options) {
		o.ProgressEvery = n
		o.OnProgress = fn
	}
}

// WithStepHook traces every iteration to fn.
func WithStepHook(fn func(Step)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}
