package chain_test

import (
	"testing"

	"github.com/katalvlaran/credgraph/chain"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// randomColumn draws a column over n states with k random nonzero entries,
// normalized so the column sums to exactly 1 (spec.md testable property 7).
func randomColumn(t *rapid.T, n int) chain.Column {
	k := rapid.IntRange(1, n).Draw(t, "k")
	seen := make(map[int]bool, k)
	neighbors := make([]int, 0, k)
	for len(neighbors) < k {
		idx := rapid.IntRange(0, n-1).Draw(t, "neighbor")
		if seen[idx] {
			continue
		}
		seen[idx] = true
		neighbors = append(neighbors, idx)
	}
	raw := make([]float64, k)
	var total float64
	for i := range raw {
		raw[i] = rapid.Float64Range(0.01, 10).Draw(t, "rawWeight")
		total += raw[i]
	}
	weights := make([]float64, k)
	for i, w := range raw {
		weights[i] = w / total
	}

	return chain.Column{Neighbors: neighbors, Weights: weights}
}

// TestChain_ColumnStochasticityHolds exercises spec.md testable property 7
// over randomly generated column-stochastic chains.
func TestChain_ColumnStochasticityHolds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(t, "n")
		cols := make([]chain.Column, n)
		for j := range cols {
			cols[j] = randomColumn(t, n)
		}

		c, err := chain.NewChain(cols, 0)
		require.NoError(t, err)
		for _, col := range c.Columns {
			var sum float64
			for _, w := range col.Weights {
				sum += w
			}
			require.InDelta(t, 1.0, sum, 1e-9)
		}
	})
}

// TestChain_StepPreservesDistributionInvariant exercises spec.md testable
// property 1 (restricted to a single step): Step's output is always a
// valid probability distribution, for any valid chain/seed/alpha.
func TestChain_StepPreservesDistributionInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(t, "n")
		cols := make([]chain.Column, n)
		for j := range cols {
			cols[j] = randomColumn(t, n)
		}
		c, err := chain.NewChain(cols, 0)
		require.NoError(t, err)

		pi, err := chain.Uniform(n)
		require.NoError(t, err)
		seed, err := chain.Uniform(n)
		require.NoError(t, err)
		alpha := rapid.Float64Range(0, 1).Draw(t, "alpha")

		out, err := chain.Step(c, pi, seed, alpha)
		require.NoError(t, err)

		var sum float64
		for _, v := range out {
			require.GreaterOrEqual(t, v, -1e-12)
			sum += v
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	})
}
