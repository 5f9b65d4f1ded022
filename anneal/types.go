package anneal

import (
	"fmt"
	"time"

	"github.com/katalvlaran/landuse/grid"
)

// StopReason tells why the annealing loop ended.
type StopReason int

const (
	// StopCooled means the temperature reached the floor.
	StopCooled StopReason = iota
	// StopMaxIterations means Options.MaxIterations was reached.
	StopMaxIterations
	// StopTimeLimit means Options.TimeLimit elapsed.
	StopTimeLimit
	// StopCanceled means the context was canceled.
	StopCanceled
)

// String returns a short name for logs.
func (s StopReason) String() string {
	switch s {
	case StopCooled:
		return "cooled"
	case StopMaxIterations:
		return "max-iterations"
	case StopTimeLimit:
		return "time-limit"
	case StopCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("stop(%d)", int(s))
	}
}

// Step describes one finished iteration. It is passed to Options.OnStep.
type Step struct {
	Iteration    int
	First        int     // row-major index of the first drawn agent cell
	Second       int     // row-major index of the second drawn agent cell
	Temperature  float64 // temperature used for the acceptance test
	Delta        float64 // candidate score − current score
	Accepted     bool
	CurrentScore float64 // after the acceptance decision
	BestScore    float64 // after best tracking
}

// Progress is the periodic report passed to Options.OnProgress.
type Progress struct {
	Iteration    int
	Temperature  float64
	CurrentScore float64
	BestScore    float64
	Elapsed      time.Duration
}

// Result summarizes one annealing run.
type Result struct {
	// Grid is the caller's grid, overwritten with the best placement found.
	Grid *grid.Grid

	InitialScore float64 // score of the input grid
	BestScore    float64 // score of Grid
	CurrentScore float64 // score of the last current state (≤ BestScore)

	Iterations   int // completed iterations
	Accepted     int // accepted candidates, improving or not
	Improvements int // times the best solution was replaced

	Elapsed time.Duration
	Stopped StopReason
}
