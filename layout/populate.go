package layout

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/landuse/anneal"
	"github.com/katalvlaran/landuse/grid"
)

// shareTol is the tolerance on the sum of agent shares.
const shareTol = 1e-6

// rngOrDefault returns r, or the stream anneal.NewRand gives seed 0 when r is nil.
func rngOrDefault(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}

	return anneal.NewRand(0)
}

// Populate assigns an agent kind to every Empty cell of g.
//
// Behavior:
//  1. Collect empty cells in row-major order (n of them).
//  2. For each agent kind in catalog order, add floor(share×n) copies.
//  3. Fill the remainder with agent kinds drawn uniformly from the catalog.
//  4. Fisher–Yates shuffle, then assign in the order of step 1.
//
// Agent kinds missing from shares get share 0. A grid with no empty cells
// is left unchanged.
// Returns ErrNilGrid or ErrBadShares.
// Complexity: O(R×C).
func Populate(g *grid.Grid, shares map[grid.CellType]float64, r *rand.Rand) error {
	if g == nil {
		return ErrNilGrid
	}
	kinds := g.Kinds()
	if err := validateShares(kinds, shares); err != nil {
		return err
	}
	r = rngOrDefault(r)

	empty := make([]int, 0, g.Len())
	for i := 0; i < g.Len(); i++ {
		if g.Cell(i) == grid.Empty {
			empty = append(empty, i)
		}
	}
	if len(empty) == 0 {
		return nil
	}

	agents := kinds.Agents()
	pool := make([]grid.CellType, 0, len(empty))
	for _, a := range agents {
		n := int(shares[a] * float64(len(empty)))
		for j := 0; j < n && len(pool) < len(empty); j++ {
			pool = append(pool, a)
		}
	}
	for len(pool) < len(empty) {
		pool = append(pool, agents[r.Intn(len(agents))])
	}
	shuffle(pool, r)

	for k, i := range empty {
		row, col := g.Coordinate(i)
		if err := g.Set(row, col, pool[k]); err != nil {
			return err
		}
	}

	return nil
}

// CheckShares reports whether shares is a valid distribution over the agent
// kinds of kinds, as required by Populate. Returns ErrBadShares or nil.
func CheckShares(kinds *grid.Kinds, shares map[grid.CellType]float64) error {
	return validateShares(kinds, shares)
}

// validateShares checks keys, values and the sum of shares.
func validateShares(kinds *grid.Kinds, shares map[grid.CellType]float64) error {
	sum := 0.0
	for t, s := range shares {
		if !kinds.IsAgent(t) {
			return fmt.Errorf("%w: %d is not an agent kind", ErrBadShares, t)
		}
		if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
			return fmt.Errorf("%w: %s=%v", ErrBadShares, kinds.Name(t), s)
		}
		sum += s
	}
	if math.Abs(sum-1) > shareTol {
		return fmt.Errorf("%w: sum is %v", ErrBadShares, sum)
	}

	return nil
}

// shuffle performs an in-place Fisher–Yates shuffle of a.
func shuffle[T any](a []T, r *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
