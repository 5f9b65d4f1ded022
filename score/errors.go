package score

import "errors"

var (
	// ErrNilInput indicates a nil catalog, table, maps or grid.
	ErrNilInput = errors.New("score: nil input")
	// ErrMissingPreference indicates an agent kind without a preference vector.
	ErrMissingPreference = errors.New("score: missing preference vector for agent kind")
	// ErrPreferenceLength indicates a vector whose length differs from the landmark count.
	ErrPreferenceLength = errors.New("score: preference vector length must equal the number of landmark kinds")
	// ErrNotAgent indicates a preference keyed by a kind that is not an agent.
	ErrNotAgent = errors.New("score: preference key is not an agent kind")
	// ErrBadWeight indicates a NaN or infinite weight.
	ErrBadWeight = errors.New("score: preference weight must be finite")
	// ErrDimensionMismatch indicates grid, maps and table disagree on shape or catalog.
	ErrDimensionMismatch = errors.New("score: grid, distance maps and preferences do not match")
	// ErrIndexRange indicates a cell index outside the bound distance maps.
	ErrIndexRange = errors.New("score: cell index out of range")
)
