package grid

import (
	"fmt"
	"math"
	"unicode"
)

// CellType identifies the kind occupying a cell. Empty is always 0;
// agent kinds follow (1..A) and landmark kinds come last (A+1..A+K).
type CellType uint8

// Empty marks a cell without an assigned kind.
const Empty CellType = 0

// EmptyGlyph is the glyph reserved for Empty cells.
const EmptyGlyph = '.'

// UnknownGlyph is rendered for cell types outside the catalog; no kind may use it.
const UnknownGlyph = '?'

// Reference catalog cell types, valid for DefaultKinds only.
const (
	Residential CellType = iota + 1
	Office
	Shop
	Cafe
	Transport
	Public
	Landscape
	Road
)

// Role partitions cell types into empty, landmark and agent.
type Role int

const (
	// RoleEmpty is the role of Empty.
	RoleEmpty Role = iota
	// RoleLandmark is the role of fixed distance sources.
	RoleLandmark
	// RoleAgent is the role of movable kinds.
	RoleAgent
)

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case RoleEmpty:
		return "empty"
	case RoleLandmark:
		return "landmark"
	case RoleAgent:
		return "agent"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Kind describes one catalog entry.
type Kind struct {
	Name  string // unique, non-empty
	Glyph rune   // unique, printable, not EmptyGlyph
}

// Kinds is an immutable catalog of landmark and agent kinds.
// The order of Landmarks() is the landmark ordering shared by distance
// maps and preference vectors.
type Kinds struct {
	names     []string // indexed by CellType
	glyphs    []rune   // indexed by CellType
	roles     []Role   // indexed by CellType
	ordinal   []int    // position within Agents() or Landmarks(); -1 for Empty
	agents    []CellType
	landmarks []CellType
	byGlyph   map[rune]CellType
	byName    map[string]CellType
}

// NewKinds builds a catalog. Agents receive CellTypes 1..len(agents) in the
// given order, landmarks the following values.
// Returns ErrBadKinds if either list is empty, names or glyphs repeat,
// a glyph is EmptyGlyph, UnknownGlyph, whitespace or not printable, or the
// catalog exceeds 255 kinds.
// Complexity: O(A+K).
func NewKinds(landmarks, agents []Kind) (*Kinds, error) {
	if len(landmarks) == 0 || len(agents) == 0 {
		return nil, fmt.Errorf("%w: need at least one landmark and one agent kind", ErrBadKinds)
	}
	total := 1 + len(agents) + len(landmarks)
	if total > math.MaxUint8+1 {
		return nil, fmt.Errorf("%w: %d kinds exceed the CellType range", ErrBadKinds, total-1)
	}

	k := &Kinds{
		names:     make([]string, 0, total),
		glyphs:    make([]rune, 0, total),
		roles:     make([]Role, 0, total),
		ordinal:   make([]int, 0, total),
		agents:    make([]CellType, 0, len(agents)),
		landmarks: make([]CellType, 0, len(landmarks)),
		byGlyph:   make(map[rune]CellType, total),
		byName:    make(map[string]CellType, total),
	}
	k.names = append(k.names, "empty")
	k.glyphs = append(k.glyphs, EmptyGlyph)
	k.roles = append(k.roles, RoleEmpty)
	k.ordinal = append(k.ordinal, -1)
	k.byGlyph[EmptyGlyph] = Empty
	k.byName["empty"] = Empty

	add := func(kd Kind, role Role, ord int) error {
		if kd.Name == "" {
			return fmt.Errorf("%w: empty kind name", ErrBadKinds)
		}
		if kd.Glyph == EmptyGlyph || kd.Glyph == UnknownGlyph || unicode.IsSpace(kd.Glyph) || !unicode.IsPrint(kd.Glyph) {
			return fmt.Errorf("%w: kind %q uses reserved glyph %q", ErrBadKinds, kd.Name, kd.Glyph)
		}
		if _, ok := k.byName[kd.Name]; ok {
			return fmt.Errorf("%w: duplicate kind name %q", ErrBadKinds, kd.Name)
		}
		if prev, ok := k.byGlyph[kd.Glyph]; ok {
			return fmt.Errorf("%w: glyph %q used by %q and %q", ErrBadKinds, kd.Glyph, k.names[prev], kd.Name)
		}
		t := CellType(len(k.names))
		k.names = append(k.names, kd.Name)
		k.glyphs = append(k.glyphs, kd.Glyph)
		k.roles = append(k.roles, role)
		k.ordinal = append(k.ordinal, ord)
		k.byGlyph[kd.Glyph] = t
		k.byName[kd.Name] = t
		if role == RoleAgent {
			k.agents = append(k.agents, t)
		} else {
			k.landmarks = append(k.landmarks, t)
		}
		return nil
	}

	for i, kd := range agents {
		if err := add(kd, RoleAgent, i); err != nil {
			return nil, err
		}
	}
	for i, kd := range landmarks {
		if err := add(kd, RoleLandmark, i); err != nil {
			return nil, err
		}
	}

	return k, nil
}

var defaultKinds = mustKinds(
	[]Kind{
		{Name: "transport", Glyph: 'T'},
		{Name: "public", Glyph: 'P'},
		{Name: "landscape", Glyph: 'L'},
		{Name: "road", Glyph: 'D'},
	},
	[]Kind{
		{Name: "residential", Glyph: 'R'},
		{Name: "office", Glyph: 'O'},
		{Name: "shop", Glyph: 'S'},
		{Name: "cafe", Glyph: 'C'},
	},
)

// DefaultKinds returns the reference urban catalog: agents Residential,
// Office, Shop, Cafe and landmarks Transport, Public, Landscape, Road.
// The returned catalog is shared and immutable.
func DefaultKinds() *Kinds {
	return defaultKinds
}

// mustKinds panics on an invalid static catalog.
func mustKinds(landmarks, agents []Kind) *Kinds {
	k, err := NewKinds(landmarks, agents)
	if err != nil {
		panic(err)
	}

	return k
}

// Len returns the number of cell types including Empty.
func (k *Kinds) Len() int { return len(k.names) }

// Valid reports whether t belongs to the catalog (Empty included).
func (k *Kinds) Valid(t CellType) bool { return int(t) < len(k.names) }

// Role returns the role of t; unknown types report RoleEmpty.
func (k *Kinds) Role(t CellType) Role {
	if !k.Valid(t) {
		return RoleEmpty
	}

	return k.roles[t]
}

// IsAgent reports whether t is an agent kind.
func (k *Kinds) IsAgent(t CellType) bool { return k.Role(t) == RoleAgent }

// IsLandmark reports whether t is a landmark kind.
func (k *Kinds) IsLandmark(t CellType) bool { return k.Role(t) == RoleLandmark }

// Agents returns a copy of the agent ordering.
func (k *Kinds) Agents() []CellType { return append([]CellType(nil), k.agents...) }

// Landmarks returns a copy of the landmark ordering.
func (k *Kinds) Landmarks() []CellType { return append([]CellType(nil), k.landmarks...) }

// NumAgents returns A.
func (k *Kinds) NumAgents() int { return len(k.agents) }

// NumLandmarks returns K.
func (k *Kinds) NumLandmarks() int { return len(k.landmarks) }

// LandmarkIndex returns the position of t in Landmarks(), or -1.
func (k *Kinds) LandmarkIndex(t CellType) int {
	if !k.IsLandmark(t) {
		return -1
	}

	return k.ordinal[t]
}

// AgentIndex returns the position of t in Agents(), or -1.
func (k *Kinds) AgentIndex(t CellType) int {
	if !k.IsAgent(t) {
		return -1
	}

	return k.ordinal[t]
}

// Name returns the kind name, or "" for unknown types.
func (k *Kinds) Name(t CellType) string {
	if !k.Valid(t) {
		return ""
	}

	return k.names[t]
}

// Glyph returns the display glyph, or UnknownGlyph for unknown types.
func (k *Kinds) Glyph(t CellType) rune {
	if !k.Valid(t) {
		return UnknownGlyph
	}

	return k.glyphs[t]
}

// ByGlyph looks a kind up by its glyph.
func (k *Kinds) ByGlyph(r rune) (CellType, bool) {
	t, ok := k.byGlyph[r]
	return t, ok
}

// ByName looks a kind up by its name.
func (k *Kinds) ByName(name string) (CellType, bool) {
	t, ok := k.byName[name]
	return t, ok
}
