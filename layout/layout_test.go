package layout_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landuse/anneal"
	"github.com/katalvlaran/landuse/grid"
	"github.com/katalvlaran/landuse/layout"
)

// refShares is the reference agent mix.
func refShares() map[grid.CellType]float64 {
	return map[grid.CellType]float64{
		grid.Residential: 0.45,
		grid.Office:      0.25,
		grid.Shop:        0.20,
		grid.Cafe:        0.10,
	}
}

func emptyGrid(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols, grid.DefaultKinds())
	require.NoError(t, err)

	return g
}

//----------------------------------------------------------------------------//
// Populate
//----------------------------------------------------------------------------//

// TestPopulate_FloorCounts checks that every agent kind receives at least
// floor(share×n) cells and that all empty cells are filled.
func TestPopulate_FloorCounts(t *testing.T) {
	g := emptyGrid(t, 7, 9) // 63 cells
	require.NoError(t, g.Set(0, 0, grid.Transport))
	require.NoError(t, g.Set(3, 4, grid.Road))
	n := g.Count(grid.Empty) // 61

	require.NoError(t, layout.Populate(g, refShares(), rand.New(rand.NewSource(3))))
	require.NoError(t, g.Validate())

	assert.Equal(t, 0, g.Count(grid.Empty))
	assert.Equal(t, n, g.CountRole(grid.RoleAgent))
	assert.Equal(t, grid.Transport, g.Cell(g.Index(0, 0)))
	assert.Equal(t, grid.Road, g.Cell(g.Index(3, 4)))

	floors := map[grid.CellType]int{
		grid.Residential: 27, // floor(0.45×61)
		grid.Office:      15, // floor(0.25×61)
		grid.Shop:        12, // floor(0.20×61)
		grid.Cafe:        6,  // floor(0.10×61)
	}
	total := 0
	for kind, lo := range floors {
		got := g.Count(kind)
		assert.GreaterOrEqual(t, got, lo, "kind %d", kind)
		total += lo
	}
	// The remainder is small: at most n - Σfloor cells go to random kinds.
	assert.Equal(t, 1, n-total)
}

// TestPopulate_ExactSplit verifies exact counts when shares divide evenly.
func TestPopulate_ExactSplit(t *testing.T) {
	g := emptyGrid(t, 4, 5) // 20 cells
	shares := map[grid.CellType]float64{grid.Residential: 0.5, grid.Office: 0.5}

	require.NoError(t, layout.Populate(g, shares, nil))
	assert.Equal(t, 10, g.Count(grid.Residential))
	assert.Equal(t, 10, g.Count(grid.Office))
	assert.Zero(t, g.Count(grid.Shop))
	assert.Zero(t, g.Count(grid.Cafe))
}

// TestPopulate_NilRandUsesSeedPolicy verifies a nil stream matches the
// default stream of the shared seed policy.
func TestPopulate_NilRandUsesSeedPolicy(t *testing.T) {
	a := emptyGrid(t, 6, 6)
	b := emptyGrid(t, 6, 6)
	require.NoError(t, layout.Populate(a, refShares(), nil))
	require.NoError(t, layout.Populate(b, refShares(), anneal.NewRand(0)))
	assert.True(t, a.Equal(b))

	c := emptyGrid(t, 6, 6)
	d := emptyGrid(t, 6, 6)
	require.NoError(t, layout.RandomLandmarks(c, 0.3, nil))
	require.NoError(t, layout.RandomLandmarks(d, 0.3, anneal.NewRand(0)))
	assert.True(t, c.Equal(d))
}

// TestPopulate_Deterministic verifies identical output for identical seeds.
func TestPopulate_Deterministic(t *testing.T) {
	a := emptyGrid(t, 6, 6)
	b := emptyGrid(t, 6, 6)
	require.NoError(t, layout.Populate(a, refShares(), rand.New(rand.NewSource(9))))
	require.NoError(t, layout.Populate(b, refShares(), rand.New(rand.NewSource(9))))
	assert.True(t, a.Equal(b))
}

// TestPopulate_NoEmptyCells leaves a full grid unchanged.
func TestPopulate_NoEmptyCells(t *testing.T) {
	g, err := grid.Parse([]string{"R O", "T S"}, grid.DefaultKinds())
	require.NoError(t, err)
	before := g.Clone()

	require.NoError(t, layout.Populate(g, refShares(), nil))
	assert.True(t, g.Equal(before))
}

// TestPopulate_Errors covers share validation.
func TestPopulate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		shares map[grid.CellType]float64
	}{
		{"SumBelowOne", map[grid.CellType]float64{grid.Residential: 0.5}},
		{"SumAboveOne", map[grid.CellType]float64{grid.Residential: 0.7, grid.Office: 0.7}},
		{"Negative", map[grid.CellType]float64{grid.Residential: 1.5, grid.Office: -0.5}},
		{"LandmarkKey", map[grid.CellType]float64{grid.Residential: 0.5, grid.Road: 0.5}},
		{"EmptyKey", map[grid.CellType]float64{grid.Empty: 1}},
		{"Nil", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := emptyGrid(t, 3, 3)
			err := layout.Populate(g, tc.shares, nil)
			require.ErrorIs(t, err, layout.ErrBadShares)
			assert.Equal(t, g.Len(), g.Count(grid.Empty))
		})
	}

	require.ErrorIs(t, layout.Populate(nil, refShares(), nil), layout.ErrNilGrid)
}

//----------------------------------------------------------------------------//
// RandomLandmarks
//----------------------------------------------------------------------------//

// TestRandomLandmarks_Quota checks the per-kind quota and that other cells stay empty.
func TestRandomLandmarks_Quota(t *testing.T) {
	g := emptyGrid(t, 12, 12)
	require.NoError(t, layout.RandomLandmarks(g, layout.DefaultLandmarkFraction, rand.New(rand.NewSource(5))))

	// int(0.2×144)=28, split over 4 kinds.
	for _, k := range g.Kinds().Landmarks() {
		assert.Equal(t, 7, g.Count(k))
	}
	assert.Equal(t, 144-28, g.Count(grid.Empty))
}

// TestRandomLandmarks_Deterministic verifies seeded reproducibility.
func TestRandomLandmarks_Deterministic(t *testing.T) {
	a := emptyGrid(t, 10, 10)
	b := emptyGrid(t, 10, 10)
	require.NoError(t, layout.RandomLandmarks(a, 0.3, rand.New(rand.NewSource(11))))
	require.NoError(t, layout.RandomLandmarks(b, 0.3, rand.New(rand.NewSource(11))))
	assert.True(t, a.Equal(b))
}

// TestRandomLandmarks_Errors covers fraction and capacity errors.
func TestRandomLandmarks_Errors(t *testing.T) {
	g := emptyGrid(t, 4, 4)
	require.ErrorIs(t, layout.RandomLandmarks(g, -0.1, nil), layout.ErrBadFraction)
	require.ErrorIs(t, layout.RandomLandmarks(g, 1.5, nil), layout.ErrBadFraction)
	require.ErrorIs(t, layout.RandomLandmarks(nil, 0.2, nil), layout.ErrNilGrid)

	// 16 cells, all but one occupied: quota 4 per kind does not fit.
	full := emptyGrid(t, 4, 4)
	require.NoError(t, layout.Populate(full, refShares(), nil))
	require.NoError(t, full.Set(0, 0, grid.Empty))
	require.ErrorIs(t, layout.RandomLandmarks(full, 1, nil), layout.ErrNoRoom)
	assert.Equal(t, 1, full.Count(grid.Empty))
}

//----------------------------------------------------------------------------//
// NoiseLandmarks
//----------------------------------------------------------------------------//

// TestNoiseLandmarks_QuotaAndDeterminism checks quotas and seeded reproducibility.
func TestNoiseLandmarks_QuotaAndDeterminism(t *testing.T) {
	cfg := layout.DefaultNoiseConfig()
	a := emptyGrid(t, 12, 12)
	b := emptyGrid(t, 12, 12)
	require.NoError(t, layout.NoiseLandmarks(a, cfg))
	require.NoError(t, layout.NoiseLandmarks(b, cfg))

	assert.True(t, a.Equal(b))
	for _, k := range a.Kinds().Landmarks() {
		assert.Equal(t, 7, a.Count(k))
	}
	assert.Equal(t, 144-28, a.Count(grid.Empty))
}

// TestNoiseLandmarks_KeepsExisting verifies that occupied cells are never overwritten.
func TestNoiseLandmarks_KeepsExisting(t *testing.T) {
	g := emptyGrid(t, 8, 8)
	for c := 0; c < 8; c++ {
		require.NoError(t, g.Set(4, c, grid.Road))
	}
	cfg := layout.DefaultNoiseConfig()
	cfg.Fraction = 0.5
	cfg.Octaves = 0 // clamped to 1

	require.NoError(t, layout.NoiseLandmarks(g, cfg))
	for c := 0; c < 8; c++ {
		assert.Equal(t, grid.Road, g.Cell(g.Index(4, c)))
	}
	// 8 pre-placed roads plus int(0.5×64)/4 = 8 of each kind.
	assert.Equal(t, 16, g.Count(grid.Road))
	assert.Equal(t, 8, g.Count(grid.Transport))
}

// TestNoiseLandmarks_Errors covers fraction and capacity errors.
func TestNoiseLandmarks_Errors(t *testing.T) {
	cfg := layout.DefaultNoiseConfig()
	require.ErrorIs(t, layout.NoiseLandmarks(nil, cfg), layout.ErrNilGrid)

	cfg.Fraction = 2
	require.ErrorIs(t, layout.NoiseLandmarks(emptyGrid(t, 3, 3), cfg), layout.ErrBadFraction)

	cfg.Fraction = 1
	g := emptyGrid(t, 4, 4)
	require.NoError(t, g.Set(0, 0, grid.Road))
	require.ErrorIs(t, layout.NoiseLandmarks(g, cfg), layout.ErrNoRoom)
	assert.Equal(t, 15, g.Count(grid.Empty))
}
