package scenario

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/katalvlaran/landuse/grid"
)

// Parse decodes a JSON scenario document and validates it.
//
// Every field is optional; missing fields keep the Reference values.
// Supplying "kinds" replaces the catalog and drops the reference layout,
// shares and preferences, which must then be given explicitly.
//
//	{
//	  "name": "downtown",
//	  "seed": 7,
//	  "kinds": {
//	    "landmarks": [{"name": "transport", "glyph": "T"}, ...],
//	    "agents":    [{"name": "residential", "glyph": "R"}, ...]
//	  },
//	  "layout": ["...PPP......", ...],
//	  "landmarks": {"mode": "noise", "rows": 16, "cols": 16, "fraction": 0.2,
//	                "seed": 3, "octaves": 3, "frequency": 0.15, "persistence": 0.5},
//	  "shares": {"residential": 0.45, "O": 0.25, ...},
//	  "preferences": {
//	    "residential": [1, 2, 3, -5],
//	    "office": {"transport": 4, "public": 1, "road": 2}
//	  },
//	  "anneal": {"initial": 1000, "final": 0.1, "coolingRate": 0.001,
//	             "maxIterations": 0, "timeLimit": "30s", "progressEvery": 100}
//	}
//
// Kinds are referenced by name or by glyph. A preference object lists
// weights by landmark; absent landmarks weigh 0. "timeLimit" accepts a
// Go duration string or a number of seconds.
//
// Returns ErrInvalidScenario wrapping the first problem found.
func Parse(data []byte) (*Scenario, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidScenario)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: document must be a JSON object", ErrInvalidScenario)
	}

	s := Reference()
	if v := doc.Get("name"); v.Exists() {
		s.Name = v.String()
	}
	if v := doc.Get("seed"); v.Exists() {
		seed, err := integer64(v, "seed")
		if err != nil {
			return nil, err
		}
		s.Seed = seed
	}

	if v := doc.Get("kinds"); v.Exists() {
		kinds, err := parseKinds(v)
		if err != nil {
			return nil, err
		}
		s.Kinds = kinds
		s.Layout = nil
		s.Shares = nil
		s.Preferences = nil
	}

	if v := doc.Get("layout"); v.Exists() {
		if !v.IsArray() {
			return nil, fmt.Errorf("%w: layout must be an array of strings", ErrInvalidScenario)
		}
		s.Layout = s.Layout[:0]
		for _, row := range v.Array() {
			if row.Type != gjson.String {
				return nil, fmt.Errorf("%w: layout rows must be strings", ErrInvalidScenario)
			}
			s.Layout = append(s.Layout, row.String())
		}
		s.Mode = ModeLayout
	}

	if v := doc.Get("landmarks"); v.Exists() {
		if err := parseLandmarks(v, s); err != nil {
			return nil, err
		}
	}

	if v := doc.Get("shares"); v.Exists() {
		shares, err := parseShares(v, s.Kinds)
		if err != nil {
			return nil, err
		}
		s.Shares = shares
	}

	if v := doc.Get("preferences"); v.Exists() {
		prefs, err := parsePreferences(v, s.Kinds)
		if err != nil {
			return nil, err
		}
		s.Preferences = prefs
	}

	if v := doc.Get("anneal"); v.Exists() {
		if err := parseAnneal(v, s); err != nil {
			return nil, err
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// parseKinds builds a catalog from {"landmarks": [...], "agents": [...]}.
func parseKinds(v gjson.Result) (*grid.Kinds, error) {
	list := func(path string) ([]grid.Kind, error) {
		arr := v.Get(path)
		if !arr.IsArray() {
			return nil, fmt.Errorf("%w: kinds.%s must be an array", ErrInvalidScenario, path)
		}
		out := make([]grid.Kind, 0, len(arr.Array()))
		for i, e := range arr.Array() {
			glyph := e.Get("glyph").String()
			if utf8.RuneCountInString(glyph) != 1 {
				return nil, fmt.Errorf("%w: kinds.%s[%d].glyph must be one character", ErrInvalidScenario, path, i)
			}
			r, _ := utf8.DecodeRuneInString(glyph)
			out = append(out, grid.Kind{Name: e.Get("name").String(), Glyph: r})
		}

		return out, nil
	}

	landmarks, err := list("landmarks")
	if err != nil {
		return nil, err
	}
	agents, err := list("agents")
	if err != nil {
		return nil, err
	}
	kinds, err := grid.NewKinds(landmarks, agents)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	return kinds, nil
}

// parseLandmarks reads the landmark generation block into s.
func parseLandmarks(v gjson.Result, s *Scenario) error {
	if !v.IsObject() {
		return fmt.Errorf("%w: landmarks must be an object", ErrInvalidScenario)
	}
	if m := v.Get("mode"); m.Exists() {
		mode, err := ParseLandmarkMode(m.String())
		if err != nil {
			return err
		}
		s.Mode = mode
	}

	ints := []struct {
		path string
		dst  *int
	}{
		{"rows", &s.Rows},
		{"cols", &s.Cols},
		{"octaves", &s.Noise.Octaves},
	}
	for _, f := range ints {
		if r := v.Get(f.path); r.Exists() {
			n, err := integer(r, "landmarks."+f.path)
			if err != nil {
				return err
			}
			*f.dst = n
		}
	}

	floats := []struct {
		path string
		dst  *float64
	}{
		{"fraction", &s.Fraction},
		{"frequency", &s.Noise.Frequency},
		{"persistence", &s.Noise.Persistence},
	}
	for _, f := range floats {
		if r := v.Get(f.path); r.Exists() {
			x, err := number(r, "landmarks."+f.path)
			if err != nil {
				return err
			}
			*f.dst = x
		}
	}

	if r := v.Get("seed"); r.Exists() {
		seed, err := integer64(r, "landmarks.seed")
		if err != nil {
			return err
		}
		s.Noise.Seed = seed
	}

	return nil
}

// parseShares reads {"kind": share, ...}.
func parseShares(v gjson.Result, kinds *grid.Kinds) (map[grid.CellType]float64, error) {
	if !v.IsObject() {
		return nil, fmt.Errorf("%w: shares must be an object", ErrInvalidScenario)
	}
	out := make(map[grid.CellType]float64)
	var err error
	v.ForEach(func(key, value gjson.Result) bool {
		t, ok := lookup(kinds, key.String())
		if !ok {
			err = fmt.Errorf("%w: shares: unknown kind %q", ErrInvalidScenario, key.String())
			return false
		}
		var x float64
		if x, err = number(value, "shares."+key.String()); err != nil {
			return false
		}
		out[t] = x

		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// parsePreferences reads one weight vector per agent, either as an array in
// landmark order or as an object keyed by landmark.
func parsePreferences(v gjson.Result, kinds *grid.Kinds) (map[grid.CellType][]float64, error) {
	if !v.IsObject() {
		return nil, fmt.Errorf("%w: preferences must be an object", ErrInvalidScenario)
	}
	out := make(map[grid.CellType][]float64)
	var err error
	v.ForEach(func(key, value gjson.Result) bool {
		agent, ok := lookup(kinds, key.String())
		if !ok {
			err = fmt.Errorf("%w: preferences: unknown kind %q", ErrInvalidScenario, key.String())
			return false
		}
		out[agent], err = parseVector(value, kinds, "preferences."+key.String())

		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// parseVector reads one preference vector.
func parseVector(v gjson.Result, kinds *grid.Kinds, path string) ([]float64, error) {
	switch {
	case v.IsArray():
		arr := v.Array()
		vec := make([]float64, len(arr))
		for i, e := range arr {
			x, err := number(e, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			vec[i] = x
		}

		return vec, nil

	case v.IsObject():
		vec := make([]float64, kinds.NumLandmarks())
		var err error
		v.ForEach(func(key, value gjson.Result) bool {
			t, ok := lookup(kinds, key.String())
			if !ok || !kinds.IsLandmark(t) {
				err = fmt.Errorf("%w: %s: %q is not a landmark kind", ErrInvalidScenario, path, key.String())
				return false
			}
			var x float64
			if x, err = number(value, path+"."+key.String()); err != nil {
				return false
			}
			vec[kinds.LandmarkIndex(t)] = x

			return true
		})
		if err != nil {
			return nil, err
		}

		return vec, nil

	default:
		return nil, fmt.Errorf("%w: %s must be an array or object", ErrInvalidScenario, path)
	}
}

// parseAnneal reads the schedule and run limits into s.
func parseAnneal(v gjson.Result, s *Scenario) error {
	if !v.IsObject() {
		return fmt.Errorf("%w: anneal must be an object", ErrInvalidScenario)
	}
	floats := []struct {
		path string
		dst  *float64
	}{
		{"initial", &s.Schedule.Initial},
		{"final", &s.Schedule.Final},
		{"coolingRate", &s.Schedule.CoolingRate},
	}
	for _, f := range floats {
		if r := v.Get(f.path); r.Exists() {
			x, err := number(r, "anneal."+f.path)
			if err != nil {
				return err
			}
			*f.dst = x
		}
	}

	ints := []struct {
		path string
		dst  *int
	}{
		{"maxIterations", &s.MaxIterations},
		{"progressEvery", &s.ProgressEvery},
	}
	for _, f := range ints {
		if r := v.Get(f.path); r.Exists() {
			n, err := integer(r, "anneal."+f.path)
			if err != nil {
				return err
			}
			*f.dst = n
		}
	}

	if r := v.Get("timeLimit"); r.Exists() {
		switch r.Type {
		case gjson.String:
			d, err := time.ParseDuration(r.String())
			if err != nil {
				return fmt.Errorf("%w: anneal.timeLimit: %w", ErrInvalidScenario, err)
			}
			s.TimeLimit = d
		case gjson.Number:
			s.TimeLimit = time.Duration(r.Float() * float64(time.Second))
		default:
			return fmt.Errorf("%w: anneal.timeLimit must be a duration string or seconds", ErrInvalidScenario)
		}
	}

	return nil
}

// lookup resolves a kind by name, then by single-character glyph.
func lookup(kinds *grid.Kinds, key string) (grid.CellType, bool) {
	if t, ok := kinds.ByName(key); ok {
		return t, true
	}
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		return kinds.ByGlyph(r)
	}

	return grid.Empty, false
}

// number returns r as a finite float64.
func number(r gjson.Result, path string) (float64, error) {
	if r.Type != gjson.Number {
		return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidScenario, path)
	}

	return r.Float(), nil
}

// integer returns r as an int, rejecting fractional values.
func integer(r gjson.Result, path string) (int, error) {
	x, err := number(r, path)
	if err != nil {
		return 0, err
	}
	if x != math.Trunc(x) || math.Abs(x) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidScenario, path)
	}

	return int(r.Int()), nil
}

// integer64 returns r as an int64 seed, rejecting fractional and
// out-of-range values.
func integer64(r gjson.Result, path string) (int64, error) {
	x, err := number(r, path)
	if err != nil {
		return 0, err
	}
	if x != math.Trunc(x) || math.Abs(x) >= 0x1p63 {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidScenario, path)
	}

	return r.Int(), nil
}
