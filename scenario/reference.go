package scenario

import (
	"github.com/katalvlaran/landuse/anneal"
	"github.com/katalvlaran/landuse/grid"
	"github.com/katalvlaran/landuse/layout"
)

// referenceLayout is a 12×12 block: two east-west roads joined by a
// north-south road, three parks, three transport stops and public
// buildings on the edges.
var referenceLayout = []string{
	"...PPP......",
	"............",
	".DDDDDDDDD..",
	".....D......",
	".LL..D...L..",
	".LL..D.T.L.P",
	".LL..D...L.P",
	".....D.....P",
	".DDDDDDDDD..",
	"............",
	"...T.....T..",
	".....PPP....",
}

// ReferenceLayout returns a copy of the reference glyph rows.
func ReferenceLayout() []string {
	return append([]string(nil), referenceLayout...)
}

// ReferencePreferences returns the reference weights, one vector per agent
// in landmark order transport, public, landscape, road.
func ReferencePreferences() map[grid.CellType][]float64 {
	return map[grid.CellType][]float64{
		grid.Residential: {1, 2, 3, -5},
		grid.Office:      {4, 1, 0, 2},
		grid.Shop:        {5, 3, 0, 3},
		grid.Cafe:        {2, 4, 1, -1},
	}
}

// ReferenceShares returns the reference agent mix.
func ReferenceShares() map[grid.CellType]float64 {
	return map[grid.CellType]float64{
		grid.Residential: 0.45,
		grid.Office:      0.25,
		grid.Shop:        0.20,
		grid.Cafe:        0.10,
	}
}

// Reference returns the reference scenario over grid.DefaultKinds:
// the 12×12 layout, ReferenceShares, ReferencePreferences and the
// schedule (1000, 0.1, 0.001) with progress every 100 iterations.
func Reference() *Scenario {
	return &Scenario{
		Name:     "reference",
		Kinds:    grid.DefaultKinds(),
		Mode:     ModeLayout,
		Layout:   ReferenceLayout(),
		Rows:     len(referenceLayout),
		Cols:     len(referenceLayout[0]),
		Fraction: layout.DefaultLandmarkFraction,
		Noise:    layout.DefaultNoiseConfig(),

		Shares:      ReferenceShares(),
		Preferences: ReferencePreferences(),

		Schedule: Schedule{
			Initial:     1000,
			Final:       0.1,
			CoolingRate: 0.001,
		},
		ProgressEvery: anneal.DefaultProgressEvery,
	}
}
