package scenario_test

import (
	"fmt"

	"github.com/katalvlaran/landuse/scenario"
)

// ExampleParse overrides the reference scenario with a short schedule and
// runs it end to end.
func ExampleParse() {
	s, err := scenario.Parse([]byte(`{
		"name": "short",
		"seed": 11,
		"anneal": {"initial": 20, "final": 1, "coolingRate": 0.05}
	}`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	rep, err := s.Run()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("scenario:", s.Name, rep.Grid.Rows(), "x", rep.Grid.Cols())
	fmt.Println("improved or equal:", rep.FinalScore >= rep.InitialScore)
	fmt.Println("stopped:", rep.Anneal.Stopped)

	// Output:
	// scenario: short 12 x 12
	// improved or equal: true
	// stopped: cooled
}
