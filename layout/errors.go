package layout

import "errors"

var (
	// ErrNilGrid indicates a nil grid was passed.
	ErrNilGrid = errors.New("layout: grid is nil")
	// ErrBadShares indicates an invalid agent share distribution.
	ErrBadShares = errors.New("layout: agent shares must be non-negative agent weights summing to 1")
	// ErrBadFraction indicates a landmark fraction outside [0,1].
	ErrBadFraction = errors.New("layout: landmark fraction must lie in [0,1]")
	// ErrNoRoom indicates too few empty cells for the requested placement.
	ErrNoRoom = errors.New("layout: not enough empty cells")
)
