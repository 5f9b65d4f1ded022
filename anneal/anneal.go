package anneal

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/landuse/grid"
	"github.com/katalvlaran/landuse/score"
)

// Optimise anneals g in place and returns the run summary.
// It is OptimiseContext with context.Background().
func Optimise(g *grid.Grid, sc *score.Scorer, opts ...Option) (Result, error) {
	return OptimiseContext(context.Background(), g, sc, opts...)
}

// OptimiseContext runs simulated annealing over the agent cells of g,
// scoring candidates with sc, starting from DefaultOptions() modified by opts.
//
// Behavior per iteration, while T > FinalTemperature:
//  1. Draw two agent cells (first, second) from the agent-cell list.
//  2. Swap them in the current grid and rescore: Δ = candidate − current.
//  3. Accept if Δ > 0, else draw u ∈ [0,1) and accept if exp(Δ/T) > u.
//     A rejected candidate is swapped back.
//  4. If the current score strictly exceeds the best, copy current to best.
//  5. T ← T·(1 − CoolingRate).
//
// On return g holds the best grid seen, never merely the last state. The
// same holds when a cap, time limit or ctx stops the run early; for a
// canceled ctx the result is returned together with ctx.Err().
//
// Returns the validation errors listed in the package doc.
func OptimiseContext(ctx context.Context, g *grid.Grid, sc *score.Scorer, opts ...Option) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	agents, err := validateAll(g, sc, o)
	if err != nil {
		return Result{}, err
	}
	current := g.Clone()
	eval, err := sc.Bind(current)
	if err != nil {
		return Result{}, fmt.Errorf("anneal: %w", err)
	}

	var (
		rng          = rngFor(o)
		start        = time.Now()
		currentScore = eval.Score()
		best         = current.Clone()
		bestScore    = currentScore
		temperature  = o.InitialTemperature
		decay        = 1 - o.CoolingRate
		res          = Result{Grid: g, InitialScore: currentScore, Stopped: StopCooled}
	)

	for iter := 0; temperature > o.FinalTemperature; iter++ {
		if reason, stop := shouldStop(ctx, o, iter, start); stop {
			res.Stopped = reason
			break
		}

		first, second := drawPair(agents, rng)
		if err = current.Swap(first, second); err != nil {
			return Result{}, err
		}
		candidateScore := eval.Score()
		delta := candidateScore - currentScore

		accepted := delta > 0
		if !accepted {
			accepted = math.Exp(delta/temperature) > rng.Float64()
		}
		if accepted {
			currentScore = candidateScore
			res.Accepted++
		} else if err = current.Swap(first, second); err != nil {
			return Result{}, err
		}

		if currentScore > bestScore {
			if err = best.CopyFrom(current); err != nil {
				return Result{}, err
			}
			bestScore = currentScore
			res.Improvements++
		}

		if o.OnStep != nil {
			o.OnStep(Step{
				Iteration:    iter,
				First:        first,
				Second:       second,
				Temperature:  temperature,
				Delta:        delta,
				Accepted:     accepted,
				CurrentScore: currentScore,
				BestScore:    bestScore,
			})
		}
		if o.OnProgress != nil && o.ProgressEvery > 0 && iter%o.ProgressEvery == 0 {
			o.OnProgress(Progress{
				Iteration:    iter,
				Temperature:  temperature,
				CurrentScore: currentScore,
				BestScore:    bestScore,
				Elapsed:      time.Since(start),
			})
		}

		res.Iterations++
		temperature *= decay
	}

	if err = g.CopyFrom(best); err != nil {
		return Result{}, err
	}
	res.BestScore = bestScore
	res.CurrentScore = currentScore
	res.Elapsed = time.Since(start)

	if res.Stopped == StopCanceled {
		return res, ctx.Err()
	}

	return res, nil
}

// shouldStop checks the caller-layered stops before iteration iter.
func shouldStop(ctx context.Context, o Options, iter int, start time.Time) (StopReason, bool) {
	if o.MaxIterations > 0 && iter >= o.MaxIterations {
		return StopMaxIterations, true
	}
	if o.TimeLimit > 0 && time.Since(start) >= o.TimeLimit {
		return StopTimeLimit, true
	}
	select {
	case <-ctx.Done():
		return StopCanceled, true
	default:
	}

	return StopCooled, false
}
