// Package score computes the proximity objective of a land-use grid.
//
// Every agent cell of kind A at position p contributes, for each landmark
// kind L in the catalog's landmark ordering,
//
//	pref[A][L] / d(L, p)
//
// where d is the BFS distance from the nearest L cell. Terms with d == 0 or
// d == distance.Unreachable are skipped, so a landmark kind absent from the
// grid contributes nothing. Landmark and empty cells contribute nothing.
// Negative weights model repulsion.
//
// The Scorer is pure: it never mutates the grid or the distance maps and
// always sums in the same order (row-major cells, then landmark ordering),
// so repeated calls on the same grid are bit-identical. Every exported
// entry point checks the grid against the maps first; a grid of another
// shape or catalog yields ErrDimensionMismatch.
//
// Complexity: Score is O(R×C×K).
package score
