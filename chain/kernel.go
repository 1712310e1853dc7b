// File: kernel.go
// Role: Distribution builders and the power-iteration primitives (Step,
// MaxDelta). Step's dense scratch accumulator and the α-seed / (1−α)-chain
// blend use gonum.org/v1/gonum/mat.VecDense; MaxDelta's L∞ norm uses
// gonum.org/v1/gonum/floats, matching matrix/ops/eigen.go's habit of working
// through a small typed numeric helper rather than hand-rolled loops for
// the delicate parts.
package chain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Distribution is a probability distribution over the canonical node order:
// non-negative entries summing to 1 (within floating-point drift).
type Distribution []float64

// Uniform returns the distribution [1/n, ..., 1/n] over n states.
// Returns ErrNonPositiveSize if n <= 0.
// Complexity: O(n).
func Uniform(n int) (Distribution, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}
	out := make(Distribution, n)
	mass := 1.0 / float64(n)
	for i := range out {
		out[i] = mass
	}

	return out, nil
}

// Indicator returns a distribution over len(order) states whose mass is
// spread evenly over the positions of order that appear in selected, and
// zero elsewhere. An empty selected is treated as "no preference" and
// yields the uniform distribution over order, matching how SELECTED_SEED's
// degenerate cases (empty or full selection) collapse to uniform seeding
// in package scoredgraph.
//
// Returns ErrNonPositiveSize if order is empty, ErrEmptySelection if
// selected is non-empty but shares no element with order.
// Complexity: O(len(order) + len(selected)).
func Indicator[T comparable](order []T, selected []T) (Distribution, error) {
	n := len(order)
	if n == 0 {
		return nil, ErrNonPositiveSize
	}
	if len(selected) == 0 {
		return Uniform(n)
	}

	want := make(map[T]struct{}, len(selected))
	for _, s := range selected {
		want[s] = struct{}{}
	}

	out := make(Distribution, n)
	hits := 0
	for i, v := range order {
		if _, ok := want[v]; ok {
			out[i] = 1
			hits++
		}
	}
	if hits == 0 {
		return nil, ErrEmptySelection
	}
	mass := 1.0 / float64(hits)
	for i := range out {
		out[i] *= mass
	}

	return out, nil
}

// Step performs one teleporting power-iteration step:
//
//	π' = α·seed + (1−α)·(chain · π)
//
// pi and seed must both have length chain.Len(); alpha must be in [0, 1].
// Complexity: O(nonzeros + n).
func Step(c *Chain, pi, seed Distribution, alpha float64) (Distribution, error) {
	n := c.Len()
	if len(pi) != n || len(seed) != n {
		return nil, ErrDimensionMismatch
	}
	if alpha < 0 || alpha > 1 || math.IsNaN(alpha) {
		return nil, ErrInvalidAlpha
	}

	mv := mat.NewVecDense(n, nil)
	for j, col := range c.Columns {
		pj := pi[j]
		if pj == 0 {
			continue
		}
		for k, row := range col.Neighbors {
			mv.SetVec(row, mv.AtVec(row)+pj*col.Weights[k])
		}
	}

	scaled := mat.NewVecDense(n, nil)
	scaled.ScaleVec(1-alpha, mv)

	seedVec := mat.NewVecDense(n, append(Distribution(nil), seed...))
	out := mat.NewVecDense(n, nil)
	out.AddScaledVec(scaled, alpha, seedVec)

	result := make(Distribution, n)
	for i := range result {
		result[i] = out.AtVec(i)
	}

	return result, nil
}

// MaxDelta returns the L∞ norm of a−b: max_i |a_i − b_i|. Used as the
// power-iteration convergence measure.
// Returns ErrDimensionMismatch if len(a) != len(b).
// Complexity: O(n).
func MaxDelta(a, b Distribution) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("chain: MaxDelta len(a)=%d len(b)=%d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	diff := append([]float64(nil), a...)
	floats.Sub(diff, b)

	return floats.Norm(diff, math.Inf(1)), nil
}
