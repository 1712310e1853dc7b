// File: solver.go
// Role: Converge drives power iteration to a fixed point, checking
// termination rules in the order spec.md §4.B mandates:
//  1. iterations >= MaxIterations
//  2. last delta <= ConvergenceThreshold
//  3. wall time since last yield > YieldAfterMs -> cooperative yield, resume
package solver

import (
	"fmt"
	"runtime"
	"time"

	"github.com/katalvlaran/credgraph/chain"
	channerics "github.com/niceyeti/channerics/channels"
)

// Converge repeatedly steps chain c from pi0 toward a stationary
// distribution under teleport alpha and seed distribution seed, per opts.
//
// MaxIterations == 0 returns pi0 unchanged, with ConvergenceDelta computed
// against one hypothetical step (so callers can see how far pi0 is from a
// fixed point without the solver actually taking that step).
//
// Converge never panics on non-convergence; it reports the final delta and
// lets the caller decide how to interpret it.
func Converge(c *chain.Chain, pi0, seed chain.Distribution, alpha float64, opts Options) (Result, error) {
	n := c.Len()
	if len(pi0) != n || len(seed) != n {
		return Result{}, ErrDimensionMismatch
	}
	if alpha < 0 || alpha > 1 {
		return Result{}, ErrInvalidAlpha
	}
	if opts.ConvergenceThreshold < 0 {
		return Result{}, ErrNegativeThreshold
	}
	if opts.MaxIterations < 0 {
		return Result{}, ErrNegativeMaxIterations
	}

	if opts.MaxIterations == 0 {
		hypothetical, err := chain.Step(c, pi0, seed, alpha)
		if err != nil {
			return Result{}, fmt.Errorf("solver: hypothetical step: %w", err)
		}
		delta, err := chain.MaxDelta(hypothetical, pi0)
		if err != nil {
			return Result{}, fmt.Errorf("solver: hypothetical delta: %w", err)
		}

		return Result{Pi: pi0, ConvergenceDelta: delta}, nil
	}

	done := make(chan struct{})
	defer close(done)
	var ticks <-chan time.Time
	if opts.YieldAfterMs > 0 {
		ticks = channerics.NewTicker(done, time.Duration(opts.YieldAfterMs)*time.Millisecond)
	}

	pi := pi0
	var delta float64
	lastYield := time.Now()
	for iter := 0; iter < opts.MaxIterations; iter++ {
		next, err := chain.Step(c, pi, seed, alpha)
		if err != nil {
			return Result{}, fmt.Errorf("solver: step %d: %w", iter, err)
		}
		delta, err = chain.MaxDelta(next, pi)
		if err != nil {
			return Result{}, fmt.Errorf("solver: delta %d: %w", iter, err)
		}
		pi = next

		if delta <= opts.ConvergenceThreshold {
			break
		}

		if ticks != nil && time.Since(lastYield) >= time.Duration(opts.YieldAfterMs)*time.Millisecond {
			select {
			case <-ticks:
				runtime.Gosched()
			default:
			}
			lastYield = time.Now()
		}
	}

	return Result{Pi: pi, ConvergenceDelta: delta}, nil
}
