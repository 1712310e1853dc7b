package solver_test

import (
	"testing"

	"github.com/katalvlaran/credgraph/chain"
	"github.com/katalvlaran/credgraph/solver"
	"github.com/stretchr/testify/require"
)

// fourNodeRing builds a column-stochastic chain for a->b->c->d->a: each
// column sends all of its mass to the next node, with no self-loop entry,
// so the chain is a pure permutation and the uniform distribution is a
// fixed point of it.
func fourNodeRing(t *testing.T) *chain.Chain {
	t.Helper()
	cols := []chain.Column{
		{Neighbors: []int{1}, Weights: []float64{1}},
		{Neighbors: []int{2}, Weights: []float64{1}},
		{Neighbors: []int{3}, Weights: []float64{1}},
		{Neighbors: []int{0}, Weights: []float64{1}},
	}
	c, err := chain.NewChain(cols, 0)
	require.NoError(t, err)

	return c
}

func TestConverge_MaxIterationsZero(t *testing.T) {
	c := fourNodeRing(t)
	// A point mass is not a fixed point of the ring, so the hypothetical
	// step moves it and the reported delta is positive.
	pi0 := chain.Distribution{1, 0, 0, 0}
	seed, _ := chain.Uniform(4)

	res, err := solver.Converge(c, pi0, seed, 0, solver.Options{MaxIterations: 0, ConvergenceThreshold: 0})
	require.NoError(t, err)
	require.Equal(t, pi0, res.Pi)
	require.Greater(t, res.ConvergenceDelta, 0.0)
}

func TestConverge_LooseThreshold(t *testing.T) {
	c := fourNodeRing(t)
	pi0, _ := chain.Uniform(4)
	seed, _ := chain.Uniform(4)

	res, err := solver.Converge(c, pi0, seed, 0, solver.Options{MaxIterations: 170, ConvergenceThreshold: 0.01})
	require.NoError(t, err)
	require.LessOrEqual(t, res.ConvergenceDelta, 0.01)

	var sum float64
	for _, s := range res.Pi {
		require.GreaterOrEqual(t, s, 0.0)
		sum += s
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}

func TestConverge_IndicatorSeedFullTeleport(t *testing.T) {
	c := fourNodeRing(t)
	pi0, _ := chain.Uniform(4)
	seed, err := chain.Indicator([]int{0, 1, 2, 3}, []int{0})
	require.NoError(t, err)

	res, err := solver.Converge(c, pi0, seed, 1, solver.Options{MaxIterations: 100, ConvergenceThreshold: 1e-4})
	require.NoError(t, err)
	require.InDelta(t, 1.0, res.Pi[0], 1e-9)
	require.InDelta(t, 0.0, res.Pi[1], 1e-9)
	require.InDelta(t, 0.0, res.Pi[2], 1e-9)
	require.InDelta(t, 0.0, res.Pi[3], 1e-9)
}

func TestConverge_ValidatesInputs(t *testing.T) {
	c := fourNodeRing(t)
	pi0, _ := chain.Uniform(4)

	_, err := solver.Converge(c, chain.Distribution{1}, pi0, 0, solver.DefaultOptions())
	require.ErrorIs(t, err, solver.ErrDimensionMismatch)

	_, err = solver.Converge(c, pi0, pi0, 1.5, solver.DefaultOptions())
	require.ErrorIs(t, err, solver.ErrInvalidAlpha)

	_, err = solver.Converge(c, pi0, pi0, 0, solver.Options{MaxIterations: -1})
	require.ErrorIs(t, err, solver.ErrNegativeMaxIterations)

	_, err = solver.Converge(c, pi0, pi0, 0, solver.Options{ConvergenceThreshold: -1})
	require.ErrorIs(t, err, solver.ErrNegativeThreshold)
}
