// Package layout produces initial land-use grids for the annealer.
//
// What:
//
//   - Populate fills every Empty cell with agent kinds following a target
//     share per kind. Counts are floor(share × empty cells); the rounding
//     remainder is filled with uniformly random agent kinds; the resulting
//     multiset is shuffled and assigned to empty cells in row-major order.
//     CheckShares validates a share map up front.
//   - RandomLandmarks scatters fraction×R×C landmark cells, split evenly
//     across landmark kinds, over random empty cells.
//   - NoiseLandmarks places the same number of landmarks but clusters them
//     where a per-kind simplex-noise field peaks, giving contiguous parks,
//     hubs and road stretches instead of salt-and-pepper noise.
//
// All generators are deterministic for a given *rand.Rand or seed; a nil
// *rand.Rand selects the stream of anneal.NewRand(0).
//
// Errors:
//
//   - ErrBadShares: shares keyed by non-agents, negative, NaN, or not summing to 1.
//   - ErrBadFraction: landmark fraction outside [0,1].
//   - ErrNoRoom: not enough empty cells for the requested landmarks.
//   - ErrNilGrid: nil grid.
package layout
