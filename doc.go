// Package landuse arranges movable land uses around fixed landmarks on a
// rectangular grid so that every agent ends up near the landmarks it likes
// and away from the ones it dislikes.
//
// What is landuse?
//
//	A small, deterministic toolkit built from four steps:
//		• Grid: landmark cells (transport, public, landscape, road) never move;
//		  agent cells (residential, office, shop, cafe) are swapped freely
//		• Distance maps: one multi-source BFS per landmark kind, computed once
//		• Score: Σ weight / distance over all agent × landmark pairs
//		• Annealing: Metropolis swaps under geometric cooling, best grid kept
//
// Why landuse?
//
//   - Reproducible: a single seed drives layout, population and annealing
//   - Explicit: catalogs, preferences and schedules are values, no globals
//   - Observable: progress and step hooks instead of library logging
//   - Extensible: bring your own kinds, layouts and preference tables
//
// Layout of the module:
//
//	grid/         cell kinds, the Grid type, glyph parsing and rendering
//	distance/     multi-source BFS distance maps per landmark kind
//	score/        preference tables and the inverse-distance objective
//	anneal/       simulated annealing over agent swaps
//	layout/       agent population, random and simplex-noise landmarks
//	scenario/     reference scenario, JSON scenarios, end-to-end runs
//	cmd/landuse/  command-line front end
//
// Quick ASCII example (T transport, D road, R residential, S shop):
//
//	R S R
//	D D T
//	S R R
//
// Residential cells dislike roads and drift away from row two; shops move
// toward the transport stop.
//
//	go run ./cmd/landuse -scenario scenarios/noise.json
package landuse
