package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/katalvlaran/landuse/anneal"
	"github.com/katalvlaran/landuse/scenario"
)

func shortRun(t *testing.T) (*scenario.Report, []anneal.Progress) {
	t.Helper()
	s := scenario.Reference()
	s.Schedule = scenario.Schedule{Initial: 20, Final: 1, CoolingRate: 0.05}

	var rows []anneal.Progress
	rep, err := s.Run(anneal.WithProgress(10, func(p anneal.Progress) { rows = append(rows, p) }))
	require.NoError(t, err)

	return rep, rows
}

// TestWriteText checks the sections of the text report.
func TestWriteText(t *testing.T) {
	rep, rows := shortRun(t)

	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, rep, rows))
	out := buf.String()

	for _, want := range []string{
		"Scenario: reference (12x12, seed 0)",
		"Initial Grid:",
		"Initial Score:",
		"Iteration",
		"Optimised Grid:",
		"Optimised Score:",
		"Optimisation Time:",
		"stopped: cooled",
		"residential",
	} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, rep.Grid.String())
}

// TestWriteJSON decodes the JSON report back with gjson.
func TestWriteJSON(t *testing.T) {
	rep, rows := shortRun(t)

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, rep, rows))
	doc := gjson.ParseBytes(buf.Bytes())

	assert.Equal(t, "reference", doc.Get("scenario").String())
	assert.Equal(t, int64(12), doc.Get("rows").Int())
	assert.Equal(t, rep.FinalScore, doc.Get("finalScore").Float())
	assert.Equal(t, int64(rep.Anneal.Iterations), doc.Get("iterations").Int())
	assert.Len(t, doc.Get("finalGrid").Array(), 12)
	assert.Equal(t, "...PPP......", strings.Map(func(r rune) rune {
		if strings.ContainsRune("ROSC", r) {
			return '.'
		}
		return r
	}, doc.Get("initialGrid.0").String()))
	assert.Len(t, doc.Get("progress").Array(), len(rows))
	assert.True(t, doc.Get("breakdown.cafe").Exists())
	assert.True(t, doc.Get("timingsMs.optimisation").Exists())
}

// TestLoadScenario covers the built-in default, a file and a missing file.
func TestLoadScenario(t *testing.T) {
	s, err := loadScenario("")
	require.NoError(t, err)
	assert.Equal(t, "reference", s.Name)

	path := filepath.Join(t.TempDir(), "s.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "file", "seed": 3}`), 0o600))
	s, err = loadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "file", s.Name)
	assert.Equal(t, int64(3), s.Seed)

	_, err = loadScenario(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
