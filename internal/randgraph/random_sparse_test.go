package randgraph_test

import (
	"testing"

	"github.com/katalvlaran/credgraph/internal/randgraph"
	"github.com/stretchr/testify/require"
)

func TestBuildRandomSparse_DeterministicForFixedSeed(t *testing.T) {
	g1, err := randgraph.BuildRandomSparse(8, 0.4, randgraph.WithSeed(42))
	require.NoError(t, err)
	g2, err := randgraph.BuildRandomSparse(8, 0.4, randgraph.WithSeed(42))
	require.NoError(t, err)

	require.True(t, g1.Equals(g2))
}

func TestBuildRandomSparse_PZeroAndOne(t *testing.T) {
	empty, err := randgraph.BuildRandomSparse(5, 0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.EdgeCount())

	complete, err := randgraph.BuildRandomSparse(5, 1)
	require.NoError(t, err)
	require.Equal(t, 25, complete.EdgeCount()) // 5*5 ordered pairs including self-loops
}

func TestBuildRandomSparse_ValidatesInputs(t *testing.T) {
	_, err := randgraph.BuildRandomSparse(0, 0.5, randgraph.WithSeed(1))
	require.ErrorIs(t, err, randgraph.ErrTooFewVertices)

	_, err = randgraph.BuildRandomSparse(5, 1.5, randgraph.WithSeed(1))
	require.ErrorIs(t, err, randgraph.ErrInvalidProbability)

	_, err = randgraph.BuildRandomSparse(5, 0.5)
	require.ErrorIs(t, err, randgraph.ErrNeedRandSource)
}
