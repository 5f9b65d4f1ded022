// Package distance builds breadth-first distance maps from landmark cells
// of a grid.Grid.
//
// What:
//
//   - Build runs a multi-source BFS from every cell of one landmark kind and
//     records, for every cell, the shortest 4-connected path length to the
//     nearest such landmark.
//   - BuildAll does this for every landmark kind of the grid's catalog, in
//     landmark ordering.
//   - Cells that cannot be reached (only possible when the kind has zero
//     occurrences) hold the Unreachable sentinel, +Inf.
//
// Why:
//
//   - Landmarks never move during annealing, so distance maps are computed
//     once and then read by the scorer on every candidate grid.
//
// Complexity:
//
//   - Build:    O(R×C) time, O(R×C) memory.
//   - BuildAll: O(K×R×C) time and memory for K landmark kinds.
//
// Errors:
//
//   - ErrNilGrid: nil input grid.
//   - ErrNotLandmark: Build was asked for a kind that is not a landmark.
package distance
