// Package anneal optimizes agent placement on a land-use grid by simulated
// annealing.
//
// What:
//
//   - Each iteration draws two agent cells uniformly (independently, the
//     same cell twice is allowed), swaps them and rescores the grid.
//   - Metropolis criterion: improving moves (Δ > 0) are always accepted;
//     others are accepted when exp(Δ/T) exceeds a uniform draw in [0,1).
//   - Temperature decays geometrically, T ← T·(1 − CoolingRate), and the
//     loop ends once T ≤ FinalTemperature.
//   - The best grid ever observed (strict improvement only) is returned
//     and written back into the caller's grid.
//
// Determinism:
//
//   - Seed==0 selects a fixed default seed; any other seed is used verbatim.
//   - Per iteration the RNG is drawn in a fixed order: first agent position,
//     second agent position, then one acceptance draw only when Δ ≤ 0.
//     Same seed, grid, scorer and options ⇒ identical run.
//
// Stops layered on top of the temperature floor:
//
//   - MaxIterations, TimeLimit and a context (OptimiseContext). All are off
//     by default, leaving the temperature floor as the only stop.
//
// Complexity:
//
//   - O(I × R×C×K) for I iterations, I ≈ ln(Tf/T0)/ln(1 − rate).
//   - Memory: O(R×C) for the current and best grids.
//
// Errors:
//
//   - ErrNilGrid, ErrNilScorer: missing inputs.
//   - ErrTooFewAgents: fewer than two agent cells.
//   - ErrBadTemperature, ErrTemperatureOrder, ErrCoolingRate: schedule.
//   - ErrOptionViolation: negative limits or progress interval.
//   - Grid and scorer validation errors are wrapped as-is.
//
// ValidateOptions reports the schedule and limit errors without a grid.
package anneal
