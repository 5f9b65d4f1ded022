package layout

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/landuse/grid"
)

// DefaultLandmarkFraction is the share of all cells turned into landmarks
// by the random generators: one fifth of the grid.
const DefaultLandmarkFraction = 0.2

// landmarkQuota returns how many cells of each landmark kind to place:
// int(fraction×R×C) split evenly (integer division) across K kinds.
func landmarkQuota(g *grid.Grid, fraction float64) (int, error) {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return 0, fmt.Errorf("%w: %v", ErrBadFraction, fraction)
	}
	total := int(fraction * float64(g.Len()))

	return total / g.Kinds().NumLandmarks(), nil
}

// RandomLandmarks places landmark cells on uniformly random empty cells of g.
// Each landmark kind receives int(fraction×R×C)/K cells, kinds in catalog order.
// Returns ErrNilGrid, ErrBadFraction or ErrNoRoom; g is untouched on error.
// Complexity: O(R×C).
func RandomLandmarks(g *grid.Grid, fraction float64, r *rand.Rand) error {
	if g == nil {
		return ErrNilGrid
	}
	per, err := landmarkQuota(g, fraction)
	if err != nil {
		return err
	}
	r = rngOrDefault(r)

	empty := make([]int, 0, g.Len())
	for i := 0; i < g.Len(); i++ {
		if g.Cell(i) == grid.Empty {
			empty = append(empty, i)
		}
	}
	landmarks := g.Kinds().Landmarks()
	need := per * len(landmarks)
	if need > len(empty) {
		return fmt.Errorf("%w: need %d, have %d", ErrNoRoom, need, len(empty))
	}
	shuffle(empty, r)

	k := 0
	for _, kind := range landmarks {
		for j := 0; j < per; j++ {
			row, col := g.Coordinate(empty[k])
			if err = g.Set(row, col, kind); err != nil {
				return err
			}
			k++
		}
	}

	return nil
}
