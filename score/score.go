package score

import (
	"fmt"
	"math"

	"github.com/katalvlaran/landuse/distance"
	"github.com/katalvlaran/landuse/grid"
)

// Scorer binds a preference table to the distance maps of one landmark
// configuration. It is safe for concurrent reads since nothing mutates it.
type Scorer struct {
	prefs *PreferenceTable
	maps  *distance.Maps
}

// New binds prefs and maps. Both must be non-nil and share a catalog.
// Returns ErrNilInput or ErrDimensionMismatch.
func New(prefs *PreferenceTable, maps *distance.Maps) (*Scorer, error) {
	if prefs == nil || maps == nil {
		return nil, ErrNilInput
	}
	if prefs.Kinds() != maps.Kinds() || maps.Len() != prefs.Kinds().NumLandmarks() {
		return nil, ErrDimensionMismatch
	}

	return &Scorer{prefs: prefs, maps: maps}, nil
}

// Score computes the objective of g with the given maps and preferences.
// It is the one-shot form of New followed by Scorer.Score.
func Score(g *grid.Grid, maps *distance.Maps, prefs *PreferenceTable) (float64, error) {
	s, err := New(prefs, maps)
	if err != nil {
		return 0, err
	}

	return s.Score(g)
}

// Preferences returns the bound table.
func (s *Scorer) Preferences() *PreferenceTable { return s.prefs }

// Maps returns the bound distance maps.
func (s *Scorer) Maps() *distance.Maps { return s.maps }

// Check verifies g can be scored: non-nil, same dimensions and catalog as
// the distance maps. Returns ErrNilInput or ErrDimensionMismatch.
func (s *Scorer) Check(g *grid.Grid) error {
	if g == nil {
		return ErrNilInput
	}
	if g.Rows() != s.maps.Rows() || g.Cols() != s.maps.Cols() || g.Kinds() != s.maps.Kinds() {
		return ErrDimensionMismatch
	}

	return nil
}

// Score returns the total objective of g.
// Returns ErrNilInput or ErrDimensionMismatch when g fails Check.
// Complexity: O(R×C×K).
func (s *Scorer) Score(g *grid.Grid) (float64, error) {
	if err := s.Check(g); err != nil {
		return 0, err
	}

	return s.score(g), nil
}

// CellScore returns the direct contribution of an agent of the given kind
// placed at row-major index idx, or 0 for non-agent kinds.
// Returns ErrIndexRange when idx lies outside the bound maps.
// Complexity: O(K).
func (s *Scorer) CellScore(kind grid.CellType, idx int) (float64, error) {
	if idx < 0 || idx >= s.maps.Rows()*s.maps.Cols() {
		return 0, fmt.Errorf("%w: %d", ErrIndexRange, idx)
	}
	a := s.prefs.Kinds().AgentIndex(kind)
	if a < 0 {
		return 0, nil
	}

	return s.term(a, idx), nil
}

// Breakdown returns the subtotal of every agent kind present in g.
// Kinds with no cells are absent from the map.
// Returns ErrNilInput or ErrDimensionMismatch when g fails Check.
// Complexity: O(R×C×K).
func (s *Scorer) Breakdown(g *grid.Grid) (map[grid.CellType]float64, error) {
	if err := s.Check(g); err != nil {
		return nil, err
	}
	kinds := s.prefs.Kinds()
	out := make(map[grid.CellType]float64, kinds.NumAgents())
	for i, n := 0, g.Len(); i < n; i++ {
		t := g.Cell(i)
		a := kinds.AgentIndex(t)
		if a < 0 {
			continue
		}
		out[t] += s.term(a, i)
	}

	return out, nil
}

// Bound is a Scorer fixed to one grid that passed Check. A grid's shape and
// catalog never change, so Score needs no further checks; the annealer
// rescores through it after every swap.
type Bound struct {
	s *Scorer
	g *grid.Grid
}

// Bind checks g once and returns a Bound scoring it.
// Returns ErrNilInput or ErrDimensionMismatch.
func (s *Scorer) Bind(g *grid.Grid) (*Bound, error) {
	if err := s.Check(g); err != nil {
		return nil, err
	}

	return &Bound{s: s, g: g}, nil
}

// Grid returns the bound grid.
func (b *Bound) Grid() *grid.Grid { return b.g }

// Score returns the current objective of the bound grid.
// Complexity: O(R×C×K).
func (b *Bound) Score() float64 {
	return b.s.score(b.g)
}

// score sums all agent terms of g. g must pass Check.
func (s *Scorer) score(g *grid.Grid) float64 {
	kinds := s.prefs.Kinds()
	total := 0.0
	for i, n := 0, g.Len(); i < n; i++ {
		a := kinds.AgentIndex(g.Cell(i))
		if a < 0 {
			continue
		}
		total += s.term(a, i)
	}

	return total
}

// term sums weight/distance over landmark kinds for agent ordinal a at idx,
// skipping zero and unreachable distances.
func (s *Scorer) term(a, idx int) float64 {
	w := s.prefs.weights[a]
	sum := 0.0
	for l := range w {
		d := s.maps.Ordinal(l).AtIndex(idx)
		if d == 0 || math.IsInf(d, 1) {
			continue
		}
		sum += w[l] / d
	}

	return sum
}
