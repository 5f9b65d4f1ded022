// Package grid models a fixed-size 2D land-use grid whose cells hold a
// categorical CellType: Empty, a landmark kind (fixed during optimization)
// or an agent kind (movable).
//
// What:
//
//   - Kinds is an immutable catalog partitioning cell types into landmark
//     and agent roles, with a display name and a single glyph per kind.
//   - Grid stores R×C cells in row-major order and knows its catalog.
//   - Four-connected neighbor offsets (up, right, down, left), row-major
//     index ↔ (row, col) conversion and bounds checks.
//   - Text rendering and parsing of glyph layouts.
//
// Why:
//
//   - Distance maps, scoring and annealing all index the same row-major
//     cells, so the conversions live in one place.
//   - Landmarks must never move; Set and Swap refuse to overwrite them.
//
// Complexity:
//
//   - New, FromTypes, Parse, Clone, Validate: O(R×C) time and memory.
//   - At, Set, Swap, Index, Coordinate, InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: non-positive dimensions or no rows/columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrUnknownCellType: a value outside the catalog.
//   - ErrOutOfBounds: coordinate or index outside the grid.
//   - ErrEmptyCell: Validate found an unassigned cell.
//   - ErrFixedCell: attempt to overwrite or swap a landmark cell.
//   - ErrBadKinds: invalid catalog (duplicates, reserved glyph, no kinds).
//   - ErrUnknownGlyph: Parse met a glyph that no kind uses.
//   - ErrShapeMismatch: CopyFrom between grids of different shape or catalog.
package grid
