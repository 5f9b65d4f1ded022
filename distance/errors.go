package distance

import "errors"

var (
	// ErrNilGrid indicates a nil grid was passed.
	ErrNilGrid = errors.New("distance: grid is nil")
	// ErrNotLandmark indicates a distance map was requested for a non-landmark kind.
	ErrNotLandmark = errors.New("distance: kind is not a landmark")
)
