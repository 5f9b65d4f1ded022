package score

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/landuse/grid"
)

// PreferenceTable maps each agent kind to K signed weights, one per
// landmark kind in the catalog's landmark ordering. Immutable.
type PreferenceTable struct {
	kinds   *grid.Kinds
	weights [][]float64 // [agent ordinal][landmark ordinal]
}

// NewPreferenceTable validates prefs against kinds and copies it.
//
// Contract:
//   - every agent kind of the catalog has an entry;
//   - every key is an agent kind;
//   - every vector has exactly NumLandmarks() finite weights.
//
// Returns ErrNilInput, ErrNotAgent, ErrMissingPreference,
// ErrPreferenceLength or ErrBadWeight, wrapped with the kind name.
// Complexity: O(A×K).
func NewPreferenceTable(kinds *grid.Kinds, prefs map[grid.CellType][]float64) (*PreferenceTable, error) {
	if kinds == nil {
		return nil, ErrNilInput
	}
	for t := range prefs {
		if !kinds.IsAgent(t) {
			return nil, fmt.Errorf("%w: %d (%s)", ErrNotAgent, t, kinds.Name(t))
		}
	}

	k := kinds.NumLandmarks()
	pt := &PreferenceTable{
		kinds:   kinds,
		weights: make([][]float64, kinds.NumAgents()),
	}
	for a, agent := range kinds.Agents() {
		vec, ok := prefs[agent]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingPreference, kinds.Name(agent))
		}
		if len(vec) != k {
			return nil, fmt.Errorf("%w: %s has %d, want %d", ErrPreferenceLength, kinds.Name(agent), len(vec), k)
		}
		for l, w := range vec {
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: %s[%d]=%v", ErrBadWeight, kinds.Name(agent), l, w)
			}
		}
		pt.weights[a] = slices.Clone(vec)
	}

	return pt, nil
}

// Kinds returns the catalog the table was validated against.
func (pt *PreferenceTable) Kinds() *grid.Kinds { return pt.kinds }

// Weight returns the weight of agent towards landmark, or 0 when either
// kind has the wrong role.
func (pt *PreferenceTable) Weight(agent, landmark grid.CellType) float64 {
	a, l := pt.kinds.AgentIndex(agent), pt.kinds.LandmarkIndex(landmark)
	if a < 0 || l < 0 {
		return 0
	}

	return pt.weights[a][l]
}

// Vector returns a copy of agent's weights in landmark ordering, or nil.
func (pt *PreferenceTable) Vector(agent grid.CellType) []float64 {
	a := pt.kinds.AgentIndex(agent)
	if a < 0 {
		return nil
	}

	return slices.Clone(pt.weights[a])
}
