package grid

import "errors"

var (
	// ErrEmptyGrid indicates non-positive dimensions or an empty input slice.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownCellType indicates a cell type the catalog does not define.
	ErrUnknownCellType = errors.New("grid: unknown cell type")
	// ErrOutOfBounds indicates a coordinate or index outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrEmptyCell indicates a cell that was never assigned a concrete type.
	ErrEmptyCell = errors.New("grid: cell is empty")
	// ErrFixedCell indicates an attempt to move or overwrite a landmark cell.
	ErrFixedCell = errors.New("grid: landmark cells are fixed")
	// ErrBadKinds indicates an invalid kind catalog.
	ErrBadKinds = errors.New("grid: invalid kind catalog")
	// ErrUnknownGlyph indicates a layout glyph that maps to no kind.
	ErrUnknownGlyph = errors.New("grid: unknown glyph")
	// ErrShapeMismatch indicates grids of different dimensions or catalogs.
	ErrShapeMismatch = errors.New("grid: grids differ in shape or catalog")
)
