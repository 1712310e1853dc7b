// File: types.go
// Role: Converge's configuration surface, grounded on the teacher's
// functional-options style (dijkstra.Options / dijkstra.Option).
package solver

import (
	"time"

	"github.com/katalvlaran/credgraph/chain"
)

// Options configures a single call to Converge.
type Options struct {
	// MaxIterations caps the number of power-iteration steps. 0 means
	// "return the initial distribution immediately" (spec.md §4.B rule 1).
	MaxIterations int

	// ConvergenceThreshold is the L∞ delta at or below which Converge stops.
	ConvergenceThreshold float64

	// YieldAfterMs is the wall-clock budget, in milliseconds, after which
	// Converge cooperatively yields before resuming. 0 disables yielding.
	YieldAfterMs int64
}

// Option is a functional option for Options.
type Option func(*Options)

// WithMaxIterations sets the iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithConvergenceThreshold sets the L∞ stopping threshold.
func WithConvergenceThreshold(t float64) Option {
	return func(o *Options) { o.ConvergenceThreshold = t }
}

// WithYieldAfter sets the cooperative-yield cadence.
func WithYieldAfter(d time.Duration) Option {
	return func(o *Options) { o.YieldAfterMs = d.Milliseconds() }
}

// DefaultOptions returns the package defaults: 100 iterations, a 1e-6
// convergence threshold, yielding every 50ms.
func DefaultOptions() Options {
	return Options{
		MaxIterations:        100,
		ConvergenceThreshold: 1e-6,
		YieldAfterMs:         50,
	}
}

// Result is what Converge returns.
type Result struct {
	// Pi is the final distribution (converged, capped, or the initial
	// distribution verbatim if MaxIterations == 0).
	Pi chain.Distribution

	// ConvergenceDelta is the last observed L∞ delta between successive
	// distributions (spec.md §4.B: "the last observed delta").
	ConvergenceDelta float64
}
