package anneal

import "errors"

var (
	// ErrNilGrid indicates a nil grid was passed.
	ErrNilGrid = errors.New("anneal: grid is nil")
	// ErrNilScorer indicates a nil scorer was passed.
	ErrNilScorer = errors.New("anneal: scorer is nil")
	// ErrTooFewAgents indicates fewer than two agent cells, so no swap exists.
	ErrTooFewAgents = errors.New("anneal: need at least two agent cells")
	// ErrBadTemperature indicates a NaN, infinite or too-small temperature.
	ErrBadTemperature = errors.New("anneal: temperatures must be finite and positive")
	// ErrTemperatureOrder indicates InitialTemperature ≤ FinalTemperature.
	ErrTemperatureOrder = errors.New("anneal: initial temperature must exceed final temperature")
	// ErrCoolingRate indicates a cooling rate outside (0,1).
	ErrCoolingRate = errors.New("anneal: cooling rate must lie strictly between 0 and 1")
	// ErrOptionViolation indicates a negative iteration cap, time limit or progress interval.
	ErrOptionViolation = errors.New("anneal: invalid option supplied")
)
