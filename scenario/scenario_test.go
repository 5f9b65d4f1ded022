package scenario_test

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landuse/anneal"
	"github.com/katalvlaran/landuse/grid"
	"github.com/katalvlaran/landuse/scenario"
)

// quick shortens the reference schedule to a few hundred iterations.
func quick(s *scenario.Scenario) *scenario.Scenario {
	s.Schedule = scenario.Schedule{Initial: 50, Final: 0.5, CoolingRate: 0.02}

	return s
}

//----------------------------------------------------------------------------//
// Reference
//----------------------------------------------------------------------------//

// TestReference_Layout checks the reference landmark counts and the
// parse/render round trip of its layout.
func TestReference_Layout(t *testing.T) {
	s := scenario.Reference()
	require.NoError(t, s.Validate())

	g, err := grid.Parse(s.Layout, s.Kinds)
	require.NoError(t, err)
	assert.Equal(t, 12, g.Rows())
	assert.Equal(t, 12, g.Cols())
	assert.Equal(t, 3, g.Count(grid.Transport))
	assert.Equal(t, 9, g.Count(grid.Public))
	assert.Equal(t, 9, g.Count(grid.Landscape))
	assert.Equal(t, 23, g.Count(grid.Road))

	// String spaces glyphs; stripping them must give back the layout.
	lines := strings.Split(g.String(), "\n")
	require.Len(t, lines, 12)
	for i, line := range lines {
		assert.Equal(t, s.Layout[i], strings.ReplaceAll(line, " ", ""))
	}
}

// TestReference_Independent verifies that callers cannot alter shared state.
func TestReference_Independent(t *testing.T) {
	a := scenario.Reference()
	a.Layout[0] = "TTTTTTTTTTTT"
	a.Shares[grid.Residential] = 0
	a.Preferences[grid.Office][0] = 99

	b := scenario.Reference()
	assert.Equal(t, "...PPP......", b.Layout[0])
	assert.InDelta(t, 0.45, b.Shares[grid.Residential], 1e-12)
	assert.Equal(t, 4.0, b.Preferences[grid.Office][0])
}

//----------------------------------------------------------------------------//
// Build and Run
//----------------------------------------------------------------------------//

// TestBuild_Reference checks population of the reference layout.
func TestBuild_Reference(t *testing.T) {
	s := scenario.Reference()
	g, err := s.Build()
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	landmarks := 3 + 9 + 9 + 23
	assert.Equal(t, landmarks, g.CountRole(grid.RoleLandmark))
	assert.Equal(t, 144-landmarks, g.CountRole(grid.RoleAgent))
	// 100 empty cells: floor counts 45/25/20/10 fill them exactly.
	assert.Equal(t, 45, g.Count(grid.Residential))
	assert.Equal(t, 25, g.Count(grid.Office))
	assert.Equal(t, 20, g.Count(grid.Shop))
	assert.Equal(t, 10, g.Count(grid.Cafe))
}

// TestBuild_Modes checks random and noise landmark generation.
func TestBuild_Modes(t *testing.T) {
	for _, mode := range []scenario.LandmarkMode{scenario.ModeRandom, scenario.ModeNoise} {
		t.Run(mode.String(), func(t *testing.T) {
			s := scenario.Reference()
			s.Mode = mode
			s.Rows, s.Cols = 10, 10
			s.Seed = 5

			g, err := s.Build()
			require.NoError(t, err)
			require.NoError(t, g.Validate())
			for _, k := range g.Kinds().Landmarks() {
				assert.Equal(t, 5, g.Count(k), "kind %s", g.Kinds().Name(k))
			}

			again, err := s.Build()
			require.NoError(t, err)
			assert.True(t, g.Equal(again))
		})
	}
}

// TestRun_Reference runs the pipeline and checks the report invariants.
func TestRun_Reference(t *testing.T) {
	s := quick(scenario.Reference())
	s.Seed = 7

	var progress []int
	rep, err := s.Run(anneal.WithProgress(50, func(p anneal.Progress) {
		progress = append(progress, p.Iteration)
	}))
	require.NoError(t, err)

	require.NoError(t, rep.Grid.Validate())
	assert.GreaterOrEqual(t, rep.FinalScore, rep.InitialScore)
	assert.Equal(t, rep.Anneal.BestScore, rep.FinalScore)
	assert.Equal(t, rep.Anneal.InitialScore, rep.InitialScore)
	assert.GreaterOrEqual(t, rep.Improvement(), 0.0)
	assert.Equal(t, anneal.StopCooled, rep.Anneal.Stopped)
	assert.NotEmpty(t, progress)
	assert.Equal(t, 0, progress[0])

	// Landmarks and the agent multiset survive optimization.
	for _, k := range s.Kinds.Landmarks() {
		for i := 0; i < rep.Grid.Len(); i++ {
			if rep.Initial.Cell(i) == k {
				assert.Equal(t, k, rep.Grid.Cell(i))
			}
		}
	}
	for _, a := range s.Kinds.Agents() {
		assert.Equal(t, rep.Initial.Count(a), rep.Grid.Count(a))
	}
	assert.GreaterOrEqual(t, rep.Timings.Total(), rep.Timings.Optimisation)
}

// TestRun_Deterministic checks that equal seeds give equal outcomes.
func TestRun_Deterministic(t *testing.T) {
	a, err := quick(scenario.Reference()).Run()
	require.NoError(t, err)
	b, err := quick(scenario.Reference()).Run()
	require.NoError(t, err)

	assert.True(t, a.Initial.Equal(b.Initial))
	assert.True(t, a.Grid.Equal(b.Grid))
	assert.Equal(t, a.FinalScore, b.FinalScore)
	assert.Equal(t, a.Anneal.Accepted, b.Anneal.Accepted)
}

// TestRun_Limits checks that iteration caps and cancellation surface in the report.
func TestRun_Limits(t *testing.T) {
	s := scenario.Reference()
	s.MaxIterations = 25
	rep, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, 25, rep.Anneal.Iterations)
	assert.Equal(t, anneal.StopMaxIterations, rep.Anneal.Stopped)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err = scenario.Reference().RunContext(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, rep)
	assert.Equal(t, anneal.StopCanceled, rep.Anneal.Stopped)
	assert.Equal(t, rep.InitialScore, rep.FinalScore)
}

// TestRun_AnnealError checks that schedule errors are reported.
func TestRun_AnnealError(t *testing.T) {
	s := scenario.Reference()
	s.Schedule.CoolingRate = 1.5
	require.ErrorIs(t, s.Validate(), scenario.ErrInvalidScenario)
	require.ErrorIs(t, s.Validate(), anneal.ErrCoolingRate)

	rep, err := s.Run()
	require.ErrorIs(t, err, scenario.ErrInvalidScenario)
	require.ErrorIs(t, err, anneal.ErrCoolingRate)
	assert.Nil(t, rep)
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestValidate_Errors lists scenarios that must be rejected.
func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(s *scenario.Scenario)
	}{
		{"NoKinds", func(s *scenario.Scenario) { s.Kinds = nil }},
		{"NoLayout", func(s *scenario.Scenario) { s.Layout = nil }},
		{"BadGlyph", func(s *scenario.Scenario) { s.Layout[0] = "...XXX......" }},
		{"RaggedLayout", func(s *scenario.Scenario) { s.Layout[3] = "..." }},
		{"RandomNoSize", func(s *scenario.Scenario) { s.Mode, s.Rows = scenario.ModeRandom, 0 }},
		{"UnknownMode", func(s *scenario.Scenario) { s.Mode = scenario.LandmarkMode(9) }},
		{"SharesSum", func(s *scenario.Scenario) { s.Shares[grid.Cafe] = 0.5 }},
		{"MissingPreference", func(s *scenario.Scenario) { delete(s.Preferences, grid.Shop) }},
		{"ShortPreference", func(s *scenario.Scenario) { s.Preferences[grid.Shop] = []float64{1} }},
		{"NegativeCap", func(s *scenario.Scenario) { s.MaxIterations = -1 }},
		{"NegativeTimeLimit", func(s *scenario.Scenario) { s.TimeLimit = -time.Second }},
		{"NegativeProgress", func(s *scenario.Scenario) { s.ProgressEvery = -1 }},
		{"CoolingRateAboveOne", func(s *scenario.Scenario) { s.Schedule.CoolingRate = 1.5 }},
		{"TemperatureOrder", func(s *scenario.Scenario) { s.Schedule.Initial, s.Schedule.Final = 0.1, 1000 }},
		{"NaNInitial", func(s *scenario.Scenario) { s.Schedule.Initial = math.NaN() }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := scenario.Reference()
			tc.mutate(s)
			require.ErrorIs(t, s.Validate(), scenario.ErrInvalidScenario)
			_, err := s.Build()
			require.ErrorIs(t, err, scenario.ErrInvalidScenario)
		})
	}
}

// TestLandmarkMode_RoundTrip checks mode names.
func TestLandmarkMode_RoundTrip(t *testing.T) {
	for _, m := range []scenario.LandmarkMode{scenario.ModeLayout, scenario.ModeRandom, scenario.ModeNoise} {
		got, err := scenario.ParseLandmarkMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := scenario.ParseLandmarkMode("grid")
	require.ErrorIs(t, err, scenario.ErrInvalidScenario)
	assert.Equal(t, "mode(7)", scenario.LandmarkMode(7).String())
}
