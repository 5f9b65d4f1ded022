package grid

import (
	"fmt"
	"slices"
)

// conn4 lists the four orthogonal neighbor offsets as (dRow, dCol):
// up, right, down, left.
var conn4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is a fixed-size R×C assignment of CellTypes in row-major order.
// Dimensions and catalog never change after construction.
type Grid struct {
	rows, cols int
	kinds      *Kinds
	cells      []CellType
}

// New returns a rows×cols grid with every cell Empty.
// Returns ErrEmptyGrid on non-positive dimensions and ErrBadKinds on a nil catalog.
// Complexity: O(R×C).
func New(rows, cols int, kinds *Kinds) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if kinds == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrBadKinds)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		kinds: kinds,
		cells: make([]CellType, rows*cols),
	}, nil
}

// FromTypes builds a grid from a non-empty, rectangular 2D slice indexed
// [row][col]. The input is deep-copied.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrUnknownCellType.
// Complexity: O(R×C).
func FromTypes(values [][]CellType, kinds *Kinds) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(rows, cols, kinds)
	if err != nil {
		return nil, err
	}
	for r, row := range values {
		for c, t := range row {
			if !kinds.Valid(t) {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownCellType, t, r, c)
			}
			g.cells[r*cols+c] = t
		}
	}

	return g, nil
}

// Rows returns R.
func (g *Grid) Rows() int { return g.rows }

// Cols returns C.
func (g *Grid) Cols() int { return g.cols }

// Len returns R×C.
func (g *Grid) Len() int { return len(g.cells) }

// Kinds returns the catalog the grid was built with.
func (g *Grid) Kinds() *Kinds { return g.kinds }

// InBounds reports whether (r,c) lies within the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Index maps (r,c) to the row-major index r*C + c. No bounds check.
func (g *Grid) Index(r, c int) int {
	return r*g.cols + c
}

// Coordinate converts a row-major index back to (r,c).
func (g *Grid) Coordinate(idx int) (r, c int) {
	return idx / g.cols, idx % g.cols
}

// NeighborOffsets returns the 4-connected offsets (dRow, dCol).
// Callers must not modify the returned slice.
func (g *Grid) NeighborOffsets() [][2]int {
	return conn4
}

// At returns the type at (r,c), or ErrOutOfBounds.
func (g *Grid) At(r, c int) (CellType, error) {
	if !g.InBounds(r, c) {
		return Empty, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, r, c)
	}

	return g.cells[g.Index(r, c)], nil
}

// Cell returns the type at row-major index idx. It panics when idx is out
// of range, like a slice access; hot loops use it after validating indices.
func (g *Grid) Cell(idx int) CellType {
	return g.cells[idx]
}

// Set assigns t to (r,c). Landmark cells are fixed: overwriting a landmark
// with a different type returns ErrFixedCell.
func (g *Grid) Set(r, c int, t CellType) error {
	if !g.InBounds(r, c) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, r, c)
	}
	if !g.kinds.Valid(t) {
		return fmt.Errorf("%w: %d", ErrUnknownCellType, t)
	}
	i := g.Index(r, c)
	if cur := g.cells[i]; g.kinds.IsLandmark(cur) && cur != t {
		return fmt.Errorf("%w: (%d,%d) holds %s", ErrFixedCell, r, c, g.kinds.Name(cur))
	}
	g.cells[i] = t

	return nil
}

// Swap exchanges the kinds of two agent cells given by row-major index.
// i == j is a valid no-op. Returns ErrOutOfBounds, or ErrFixedCell when
// either cell is not an agent.
func (g *Grid) Swap(i, j int) error {
	if i < 0 || i >= len(g.cells) || j < 0 || j >= len(g.cells) {
		return fmt.Errorf("%w: index %d or %d", ErrOutOfBounds, i, j)
	}
	if !g.kinds.IsAgent(g.cells[i]) || !g.kinds.IsAgent(g.cells[j]) {
		return fmt.Errorf("%w: swap %d<->%d", ErrFixedCell, i, j)
	}
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]

	return nil
}

// Clone returns a deep copy sharing the immutable catalog.
func (g *Grid) Clone() *Grid {
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		kinds: g.kinds,
		cells: slices.Clone(g.cells),
	}
}

// CopyFrom overwrites g's cells with src's. Both grids must share
// dimensions and catalog, else ErrShapeMismatch.
func (g *Grid) CopyFrom(src *Grid) error {
	if !g.SameShape(src) {
		return ErrShapeMismatch
	}
	copy(g.cells, src.cells)

	return nil
}

// SameShape reports whether o has the same dimensions and catalog.
func (g *Grid) SameShape(o *Grid) bool {
	return o != nil && g.rows == o.rows && g.cols == o.cols && g.kinds == o.kinds
}

// Equal reports whether o has the same shape and identical cells.
func (g *Grid) Equal(o *Grid) bool {
	return g.SameShape(o) && slices.Equal(g.cells, o.cells)
}

// Cells returns a row-major copy of all cells.
func (g *Grid) Cells() []CellType {
	return slices.Clone(g.cells)
}

// AgentCells returns the row-major indices of all agent cells, ascending.
// Swapping two agents keeps this set unchanged.
// Complexity: O(R×C).
func (g *Grid) AgentCells() []int {
	out := make([]int, 0, len(g.cells))
	for i, t := range g.cells {
		if g.kinds.IsAgent(t) {
			out = append(out, i)
		}
	}

	return out
}

// Count returns how many cells hold t.
func (g *Grid) Count(t CellType) int {
	n := 0
	for _, v := range g.cells {
		if v == t {
			n++
		}
	}

	return n
}

// CountRole returns how many cells hold a type of the given role.
func (g *Grid) CountRole(role Role) int {
	n := 0
	for _, v := range g.cells {
		if g.kinds.Role(v) == role {
			n++
		}
	}

	return n
}

// Validate checks that every cell holds a known, non-Empty type, i.e. the
// grid is fully populated and ready for optimization.
// Returns ErrUnknownCellType or ErrEmptyCell wrapped with the first offending coordinate.
func (g *Grid) Validate() error {
	for i, t := range g.cells {
		r, c := g.Coordinate(i)
		if !g.kinds.Valid(t) {
			return fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownCellType, t, r, c)
		}
		if t == Empty {
			return fmt.Errorf("%w: (%d,%d)", ErrEmptyCell, r, c)
		}
	}

	return nil
}
