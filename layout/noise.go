package layout

import (
	"fmt"
	"sort"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/landuse/grid"
)

// NoiseConfig holds parameters for clustered landmark placement.
type NoiseConfig struct {
	Fraction    float64 // share of all cells turned into landmarks
	Seed        int64   // noise seed; kind k uses Seed+k
	Octaves     int     // fractal layers, ≥ 1
	Frequency   float64 // base sampling frequency per cell
	Persistence float64 // amplitude factor between octaves
}

// DefaultNoiseConfig returns a configuration producing a few blobs per
// kind on a 12×12 grid.
func DefaultNoiseConfig() NoiseConfig {
	return NoiseConfig{
		Fraction:    DefaultLandmarkFraction,
		Seed:        1,
		Octaves:     3,
		Frequency:   0.15,
		Persistence: 0.5,
	}
}

// NoiseLandmarks places landmarks where per-kind simplex noise peaks.
//
// Behavior:
//  1. Quota per kind as in RandomLandmarks.
//  2. For each landmark kind k (catalog order), sample octave noise seeded
//     with Seed+k on every still-empty cell.
//  3. Take the quota highest-valued cells (ties by row-major index) and
//     assign them to k.
//
// Deterministic for a given config. Returns ErrNilGrid, ErrBadFraction or
// ErrNoRoom; on ErrNoRoom g is untouched.
// Complexity: O(K × R×C × log(R×C)).
func NoiseLandmarks(g *grid.Grid, cfg NoiseConfig) error {
	if g == nil {
		return ErrNilGrid
	}
	per, err := landmarkQuota(g, cfg.Fraction)
	if err != nil {
		return err
	}
	landmarks := g.Kinds().Landmarks()
	free := g.Count(grid.Empty)
	if need := per * len(landmarks); need > free {
		return fmt.Errorf("%w: need %d, have %d", ErrNoRoom, need, free)
	}
	if cfg.Octaves < 1 {
		cfg.Octaves = 1
	}

	type scored struct {
		idx   int
		value float64
	}
	cells := make([]scored, 0, g.Len())
	for k, kind := range landmarks {
		noise := opensimplex.NewNormalized(cfg.Seed + int64(k))
		cells = cells[:0]
		for i := 0; i < g.Len(); i++ {
			if g.Cell(i) != grid.Empty {
				continue
			}
			r, c := g.Coordinate(i)
			cells = append(cells, scored{idx: i, value: octaveNoise(noise, float64(c), float64(r), cfg)})
		}
		sort.SliceStable(cells, func(a, b int) bool { return cells[a].value > cells[b].value })

		for _, s := range cells[:per] {
			r, c := g.Coordinate(s.idx)
			if err = g.Set(r, c, kind); err != nil {
				return err
			}
		}
	}

	return nil
}

// octaveNoise layers octaves of noise at doubling frequency, normalized to [0,1).
func octaveNoise(noise opensimplex.Noise, x, y float64, cfg NoiseConfig) float64 {
	total, amplitude, maxVal := 0.0, 1.0, 0.0
	frequency := cfg.Frequency
	for i := 0; i < cfg.Octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= cfg.Persistence
		frequency *= 2
	}

	return total / maxVal
}
