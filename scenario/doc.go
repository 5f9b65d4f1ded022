// Package scenario bundles everything needed to run one land-use
// optimization: the kind catalog, the initial landmark layout, agent
// shares, the preference table, the annealing schedule and a seed.
//
// What:
//
//   - Scenario describes a run declaratively. Landmarks come from a
//     hand-authored glyph layout (ModeLayout), from uniformly random
//     placement (ModeRandom), or from simplex-noise clusters (ModeNoise).
//   - Reference returns the 12×12 city block with two roads, parks,
//     transport stops and public buildings, shares
//     {R:.45, O:.25, S:.20, C:.10} and schedule (1000, 0.1, 0.001).
//   - Parse decodes a JSON scenario document. Kinds, agents and landmarks
//     are referenced by name or single-character glyph.
//   - Run executes the pipeline: Build (landmarks, Populate) → distance
//     maps → initial score → anneal → final score, timing each stage.
//
// Determinism:
//
//	One *rand.Rand seeded from Scenario.Seed (0 ⇒ 1) drives landmark
//	placement, population and annealing, in that order. Equal scenarios
//	produce equal reports apart from timings.
//
// Errors:
//
//   - ErrInvalidScenario: malformed JSON or a scenario that fails
//     validation; the precise cause is wrapped alongside.
//   - Errors from anneal are returned wrapped with the "scenario:" prefix.
package scenario
