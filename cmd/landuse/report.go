package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/landuse/anneal"
	"github.com/katalvlaran/landuse/grid"
	"github.com/katalvlaran/landuse/scenario"
)

// writeText prints grids, scores, the progress table and stage timings.
func writeText(w io.Writer, rep *scenario.Report, rows []anneal.Progress) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Scenario: %s (%dx%d, seed %d)\n\n", rep.Scenario.Name, rep.Grid.Rows(), rep.Grid.Cols(), rep.Scenario.Seed)
	fmt.Fprintln(&b, "Initial Grid:")
	fmt.Fprintln(&b, rep.Initial.String())
	fmt.Fprintf(&b, "Distance Maps Computation Time: %s\n", ms(rep.Timings.DistanceMaps))
	fmt.Fprintf(&b, "Initial Score: %s\n", score(rep.InitialScore))
	fmt.Fprintf(&b, "Initial Score Computation Time: %s\n\n", ms(rep.Timings.InitialScore))

	if len(rows) > 0 {
		tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "Iteration\tTemperature\tCurrent\tBest\tElapsed\t")
		for _, p := range rows {
			fmt.Fprintf(tw, "%s\t%.4f\t%s\t%s\t%s\t\n",
				humanize.Comma(int64(p.Iteration)), p.Temperature, score(p.CurrentScore), score(p.BestScore), ms(p.Elapsed))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, "Optimised Grid:")
	fmt.Fprintln(&b, rep.Grid.String())
	fmt.Fprintf(&b, "Optimised Score: %s (%+.3f)\n", score(rep.FinalScore), rep.Improvement())
	fmt.Fprintf(&b, "Optimised Score Computation Time: %s\n", ms(rep.Timings.FinalScore))
	fmt.Fprintf(&b, "Optimisation Time: %s\n", ms(rep.Timings.Optimisation))
	fmt.Fprintf(&b, "Iterations: %s (%s accepted, %s improvements, stopped: %s)\n",
		humanize.Comma(int64(rep.Anneal.Iterations)),
		humanize.Comma(int64(rep.Anneal.Accepted)),
		humanize.Comma(int64(rep.Anneal.Improvements)),
		rep.Anneal.Stopped)

	kinds := rep.Grid.Kinds()
	breakdown, err := rep.Scorer.Breakdown(rep.Grid)
	if err != nil {
		return err
	}
	fmt.Fprintln(&b, "\nScore by agent kind:")
	for _, a := range kinds.Agents() {
		fmt.Fprintf(&b, "  %c %-12s %5d cells  %s\n", kinds.Glyph(a), kinds.Name(a), rep.Grid.Count(a), score(breakdown[a]))
	}

	_, err = io.WriteString(w, b.String())

	return err
}

// jsonReport is the machine-readable form of a run.
type jsonReport struct {
	Scenario     string             `json:"scenario"`
	Seed         int64              `json:"seed"`
	Rows         int                `json:"rows"`
	Cols         int                `json:"cols"`
	InitialGrid  []string           `json:"initialGrid"`
	FinalGrid    []string           `json:"finalGrid"`
	InitialScore float64            `json:"initialScore"`
	FinalScore   float64            `json:"finalScore"`
	Breakdown    map[string]float64 `json:"breakdown"`
	Iterations   int                `json:"iterations"`
	Accepted     int                `json:"accepted"`
	Improvements int                `json:"improvements"`
	Stopped      string             `json:"stopped"`
	Progress     []jsonProgress     `json:"progress,omitempty"`
	TimingsMs    map[string]float64 `json:"timingsMs"`
}

type jsonProgress struct {
	Iteration   int     `json:"iteration"`
	Temperature float64 `json:"temperature"`
	Current     float64 `json:"current"`
	Best        float64 `json:"best"`
	ElapsedMs   float64 `json:"elapsedMs"`
}

// writeJSON encodes rep as indented JSON.
func writeJSON(w io.Writer, rep *scenario.Report, rows []anneal.Progress) error {
	kinds := rep.Grid.Kinds()
	breakdown, err := rep.Scorer.Breakdown(rep.Grid)
	if err != nil {
		return err
	}
	out := jsonReport{
		Scenario:     rep.Scenario.Name,
		Seed:         rep.Scenario.Seed,
		Rows:         rep.Grid.Rows(),
		Cols:         rep.Grid.Cols(),
		InitialGrid:  glyphRows(rep.Initial),
		FinalGrid:    glyphRows(rep.Grid),
		InitialScore: rep.InitialScore,
		FinalScore:   rep.FinalScore,
		Breakdown:    make(map[string]float64, kinds.NumAgents()),
		Iterations:   rep.Anneal.Iterations,
		Accepted:     rep.Anneal.Accepted,
		Improvements: rep.Anneal.Improvements,
		Stopped:      rep.Anneal.Stopped.String(),
		TimingsMs: map[string]float64{
			"build":        msf(rep.Timings.Build),
			"distanceMaps": msf(rep.Timings.DistanceMaps),
			"initialScore": msf(rep.Timings.InitialScore),
			"optimisation": msf(rep.Timings.Optimisation),
			"finalScore":   msf(rep.Timings.FinalScore),
		},
	}
	for a, v := range breakdown {
		out.Breakdown[kinds.Name(a)] = v
	}
	for _, p := range rows {
		out.Progress = append(out.Progress, jsonProgress{
			Iteration:   p.Iteration,
			Temperature: p.Temperature,
			Current:     p.CurrentScore,
			Best:        p.BestScore,
			ElapsedMs:   msf(p.Elapsed),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

// glyphRows renders g as unspaced glyph rows, the layout format scenarios accept.
func glyphRows(g *grid.Grid) []string {
	lines := strings.Split(g.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.ReplaceAll(l, " ", "")
	}

	return lines
}

func score(v float64) string {
	return humanize.CommafWithDigits(v, 3)
}

func ms(d time.Duration) string {
	return humanize.CommafWithDigits(msf(d), 3) + " ms"
}

func msf(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
