package distance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/landuse/grid"
)

// Unreachable is the sentinel distance of cells with no path to the kind.
var Unreachable = math.Inf(1)

// Map holds shortest 4-connected distances from one landmark kind, row-major.
// A Map is immutable after Build returns.
type Map struct {
	kind       grid.CellType
	rows, cols int
	dist       []float64
	sources    int
}

// Kind returns the landmark kind the map was built from.
func (m *Map) Kind() grid.CellType { return m.kind }

// Rows returns R.
func (m *Map) Rows() int { return m.rows }

// Cols returns C.
func (m *Map) Cols() int { return m.cols }

// Sources returns how many cells of the kind seeded the search.
func (m *Map) Sources() int { return m.sources }

// At returns the distance at (r,c), or Unreachable when out of bounds.
func (m *Map) At(r, c int) float64 {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return Unreachable
	}

	return m.dist[r*m.cols+c]
}

// AtIndex returns the distance at row-major index idx. It panics on an
// out-of-range index, like a slice access.
func (m *Map) AtIndex(idx int) float64 {
	return m.dist[idx]
}

// Reachable reports whether idx has a finite distance.
func (m *Map) Reachable(idx int) bool {
	return !math.IsInf(m.dist[idx], 1)
}

// Build computes the distance map of landmark kind from g.
//
// Behavior:
//  1. Every cell starts at Unreachable.
//  2. Every cell currently holding kind is set to 0 and enqueued.
//  3. FIFO BFS over up/right/down/left neighbors (no diagonals, no
//     wraparound); a neighbor whose distance would decrease is updated and
//     enqueued.
//  4. Stop when the queue empties.
//
// A kind with zero occurrences yields an all-Unreachable map.
// Returns ErrNilGrid or ErrNotLandmark.
// Complexity: O(R×C) time and memory.
func Build(g *grid.Grid, kind grid.CellType) (*Map, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.Kinds().IsLandmark(kind) {
		return nil, fmt.Errorf("%w: %s", ErrNotLandmark, g.Kinds().Name(kind))
	}

	n := g.Len()
	m := &Map{
		kind: kind,
		rows: g.Rows(),
		cols: g.Cols(),
		dist: make([]float64, n),
	}
	for i := range m.dist {
		m.dist[i] = Unreachable
	}

	// Seed the queue with every source cell.
	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if g.Cell(i) == kind {
			m.dist[i] = 0
			queue = append(queue, i)
		}
	}
	m.sources = len(queue)

	offsets := g.NeighborOffsets()
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ur, uc := g.Coordinate(u)
		next := m.dist[u] + 1
		for _, d := range offsets {
			vr, vc := ur+d[0], uc+d[1]
			if !g.InBounds(vr, vc) {
				continue
			}
			v := g.Index(vr, vc)
			if next < m.dist[v] {
				m.dist[v] = next
				queue = append(queue, v)
			}
		}
	}

	return m, nil
}

// Maps holds one Map per landmark kind, in the catalog's landmark ordering.
type Maps struct {
	kinds *grid.Kinds
	rows  int
	cols  int
	maps  []*Map
}

// BuildAll computes the distance map of every landmark kind of g's catalog.
// Landmark positions must not change while the result is in use.
// Returns ErrNilGrid.
// Complexity: O(K×R×C).
func BuildAll(g *grid.Grid) (*Maps, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	landmarks := g.Kinds().Landmarks()
	out := &Maps{
		kinds: g.Kinds(),
		rows:  g.Rows(),
		cols:  g.Cols(),
		maps:  make([]*Map, 0, len(landmarks)),
	}
	for _, kind := range landmarks {
		m, err := Build(g, kind)
		if err != nil {
			return nil, err
		}
		out.maps = append(out.maps, m)
	}

	return out, nil
}

// Len returns K.
func (ms *Maps) Len() int { return len(ms.maps) }

// Rows returns R.
func (ms *Maps) Rows() int { return ms.rows }

// Cols returns C.
func (ms *Maps) Cols() int { return ms.cols }

// Kinds returns the catalog the maps were built for.
func (ms *Maps) Kinds() *grid.Kinds { return ms.kinds }

// Ordinal returns the map at landmark position k (0 ≤ k < Len()).
func (ms *Maps) Ordinal(k int) *Map { return ms.maps[k] }

// For returns the map of a landmark kind, or nil for other kinds.
func (ms *Maps) For(kind grid.CellType) *Map {
	k := ms.kinds.LandmarkIndex(kind)
	if k < 0 {
		return nil
	}

	return ms.maps[k]
}
