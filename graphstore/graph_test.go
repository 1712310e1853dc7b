package graphstore_test

import (
	"testing"

	"github.com/katalvlaran/credgraph/graphstore"
	"github.com/stretchr/testify/require"
)

func buildDiamond(t *testing.T) *graphstore.Graph {
	t.Helper()
	g := graphstore.New()
	for _, n := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddNode(graphstore.NodeAddress(n)))
	}
	require.NoError(t, g.AddEdge("e-ab", "a", "b"))
	require.NoError(t, g.AddEdge("e-bd", "b", "d"))
	require.NoError(t, g.AddEdge("e-ac", "a", "c"))
	require.NoError(t, g.AddEdge("e-cd", "c", "d"))

	return g
}

func TestAddNode_EmptyAndDuplicate(t *testing.T) {
	g := graphstore.New()
	require.ErrorIs(t, g.AddNode(""), graphstore.ErrEmptyAddress)
	require.NoError(t, g.AddNode("a"))
	require.ErrorIs(t, g.AddNode("a"), graphstore.ErrNodeExists)
}

func TestAddEdge_DanglingEndpoint(t *testing.T) {
	g := graphstore.New()
	require.NoError(t, g.AddNode("a"))
	require.ErrorIs(t, g.AddEdge("e1", "a", "b"), graphstore.ErrDanglingEndpoint)
}

func TestAddEdge_Duplicate(t *testing.T) {
	g := graphstore.New()
	require.NoError(t, g.AddNode("a"))
	require.NoError(t, g.AddEdge("e1", "a", "a"))
	require.ErrorIs(t, g.AddEdge("e1", "a", "a"), graphstore.ErrEdgeExists)
}

func TestNeighbors_Directions(t *testing.T) {
	g := buildDiamond(t)

	out := g.Neighbors("a", graphstore.DirectionOut, "", "")
	require.Len(t, out, 2)

	in := g.Neighbors("d", graphstore.DirectionIn, "", "")
	require.Len(t, in, 2)

	any := g.Neighbors("b", graphstore.DirectionAny, "", "")
	require.Len(t, any, 2) // a->b (in), b->d (out)
}

func TestNeighbors_SelfLoopCountedOnce(t *testing.T) {
	g := graphstore.New()
	require.NoError(t, g.AddNode("a"))
	require.NoError(t, g.AddEdge("loop", "a", "a"))

	any := g.Neighbors("a", graphstore.DirectionAny, "", "")
	require.Len(t, any, 1)
}

func TestModificationCount_BumpsOnMutation(t *testing.T) {
	g := graphstore.New()
	before := g.ModificationCount()
	require.NoError(t, g.AddNode("a"))
	require.Greater(t, g.ModificationCount(), before)
}

func TestCanonicalJSON_RoundTrip(t *testing.T) {
	g := buildDiamond(t)
	data, err := g.CanonicalJSON()
	require.NoError(t, err)

	g2, err := graphstore.FromCanonicalJSON(data)
	require.NoError(t, err)
	require.True(t, g.Equals(g2))

	data2, err := g2.CanonicalJSON()
	require.NoError(t, err)
	require.Equal(t, data, data2)
}

func TestEquals_ConstructionOrderIndependent(t *testing.T) {
	g1 := graphstore.New()
	require.NoError(t, g1.AddNode("a"))
	require.NoError(t, g1.AddNode("b"))
	require.NoError(t, g1.AddEdge("e1", "a", "b"))

	g2 := graphstore.New()
	require.NoError(t, g2.AddNode("b"))
	require.NoError(t, g2.AddNode("a"))
	require.NoError(t, g2.AddEdge("e1", "a", "b"))

	require.True(t, g1.Equals(g2))

	d1, err := g1.CanonicalJSON()
	require.NoError(t, err)
	d2, err := g2.CanonicalJSON()
	require.NoError(t, err)
	require.Equal(t, d1, d2)
}

func TestPrefixFiltering(t *testing.T) {
	g := graphstore.New()
	require.NoError(t, g.AddNode("author/alice"))
	require.NoError(t, g.AddNode("author/bob"))
	require.NoError(t, g.AddNode("artifact/readme"))

	authors := g.Nodes("author/")
	require.Len(t, authors, 2)

	all := g.Nodes("")
	require.Len(t, all, 3)
}
