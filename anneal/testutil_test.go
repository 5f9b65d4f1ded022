// Package anneal_test provides fixtures shared across the annealer tests.
package anneal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landuse/distance"
	"github.com/katalvlaran/landuse/grid"
	"github.com/katalvlaran/landuse/score"
)

const (
	// seedDet is the fixed seed for reproducibility tests.
	seedDet = int64(42)

	// fast schedule: a few hundred iterations.
	fastT0   = 10.0
	fastTf   = 0.5
	fastRate = 0.01
)

// urbanRows is a 6×6 block with every landmark kind and all four agents.
var urbanRows = []string{
	"R R O S P P",
	"R D D D D C",
	"O D T R D S",
	"C D R O D R",
	"S D D D D O",
	"L L R C R R",
}

// urbanPrefs is the reference preference table.
func urbanPrefs() map[grid.CellType][]float64 {
	return map[grid.CellType][]float64{
		grid.Residential: {1, 2, 3, -5},
		grid.Office:      {4, 1, 0, 2},
		grid.Shop:        {5, 3, 0, 3},
		grid.Cafe:        {2, 4, 1, -1},
	}
}

// fixture parses rows and binds a scorer to them.
func fixture(t testing.TB, kinds *grid.Kinds, rows []string, prefs map[grid.CellType][]float64) (*grid.Grid, *score.Scorer) {
	t.Helper()
	g, err := grid.Parse(rows, kinds)
	require.NoError(t, err)
	maps, err := distance.BuildAll(g)
	require.NoError(t, err)
	pt, err := score.NewPreferenceTable(kinds, prefs)
	require.NoError(t, err)
	sc, err := score.New(pt, maps)
	require.NoError(t, err)

	return g, sc
}

// urban returns a fresh urban fixture.
func urban(t testing.TB) (*grid.Grid, *score.Scorer) {
	t.Helper()
	return fixture(t, grid.DefaultKinds(), urbanRows, urbanPrefs())
}
