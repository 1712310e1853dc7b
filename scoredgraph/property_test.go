package scoredgraph_test

import (
	"testing"

	"github.com/katalvlaran/credgraph/graphstore"
	"github.com/katalvlaran/credgraph/internal/randgraph"
	"github.com/katalvlaran/credgraph/scoredgraph"
	"github.com/katalvlaran/credgraph/solver"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// randomGraph samples a small directed multigraph (self-loops permitted)
// via randgraph.BuildRandomSparse, grounded on spec.md §8's "random small
// graphs" framing for property tests. The rapid-drawn seed makes the draw
// shrinkable while BuildRandomSparse's own trial order stays deterministic.
func randomGraph(t *rapid.T) (*graphstore.Graph, []graphstore.NodeAddress) {
	n := rapid.IntRange(1, 8).Draw(t, "n")
	p := rapid.Float64Range(0, 1).Draw(t, "p")
	seed := rapid.Int64().Draw(t, "seed")

	g, err := randgraph.BuildRandomSparse(n, p, randgraph.WithSeed(seed))
	require.NoError(t, err)

	addrs := g.Nodes("")

	return g, addrs
}

// randomEvaluator draws from t on every call, which is only safe because
// scoredgraph.New evaluates edges sequentially, never concurrently.
func randomEvaluator(t *rapid.T) scoredgraph.Evaluator {
	return func(graphstore.Edge) (scoredgraph.EdgeWeight, error) {
		return scoredgraph.EdgeWeight{
			ToWeight:  rapid.Float64Range(0, 5).Draw(t, "toWeight"),
			FroWeight: rapid.Float64Range(0, 5).Draw(t, "froWeight"),
		}, nil
	}
}

// TestScoredGraph_DistributionInvariant exercises spec.md testable
// property 1 over random graphs and a bounded number of Run calls.
func TestScoredGraph_DistributionInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, _ := randomGraph(t)
		sg, err := scoredgraph.New(g, randomEvaluator(t))
		require.NoError(t, err)

		runs := rapid.IntRange(0, 3).Draw(t, "runs")
		for i := 0; i < runs; i++ {
			_, err := sg.Run(scoredgraph.NoSeed(), solver.Options{MaxIterations: 20, ConvergenceThreshold: 1e-6})
			require.NoError(t, err)
		}

		nodes, err := sg.Nodes()
		require.NoError(t, err)
		var sum float64
		for _, n := range nodes {
			require.GreaterOrEqual(t, n.Score, -1e-12)
			require.LessOrEqual(t, n.Score, 1+1e-12)
			sum += n.Score
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	})
}

// TestScoredGraph_ScoreDecompositionIdentity exercises spec.md testable
// property 2 over random graphs: every node's score equals its synthetic
// loop contribution plus the sum of its neighbor contributions. The
// neighbor and loop contributions add up to one chain step applied to the
// current scores, so the identity holds only once the scores are a fixed
// point; the run is therefore driven to a tight convergence threshold.
func TestScoredGraph_ScoreDecompositionIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, addrs := randomGraph(t)
		sg, err := scoredgraph.New(g, randomEvaluator(t))
		require.NoError(t, err)

		_, err = sg.Run(scoredgraph.NoSeed(), solver.Options{MaxIterations: 5_000_000, ConvergenceThreshold: 1e-12})
		require.NoError(t, err)

		for _, addr := range addrs {
			n, ok, err := sg.Node(addr)
			require.NoError(t, err)
			require.True(t, ok)

			loop, err := sg.SyntheticLoopScoreContribution(addr)
			require.NoError(t, err)

			neighbors, err := sg.Neighbors(addr)
			require.NoError(t, err)
			total := loop
			for _, nb := range neighbors {
				total += nb.ScoreContribution
			}
			require.InDelta(t, n.Score, total, 1e-9)
		}
	})
}

// TestScoredGraph_TotalOutWeightDefinition exercises spec.md testable
// property 6 over random graphs.
func TestScoredGraph_TotalOutWeightDefinition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, addrs := randomGraph(t)
		loopWeight := rapid.Float64Range(1e-6, 2).Draw(t, "loopWeight")
		// Plain map is safe here only because evaluation is sequential.
		weights := make(map[graphstore.EdgeAddress]scoredgraph.EdgeWeight)
		eval := func(e graphstore.Edge) (scoredgraph.EdgeWeight, error) {
			w := scoredgraph.EdgeWeight{
				ToWeight:  rapid.Float64Range(0, 5).Draw(t, "toWeight"),
				FroWeight: rapid.Float64Range(0, 5).Draw(t, "froWeight"),
			}
			weights[e.Address] = w

			return w, nil
		}

		sg, err := scoredgraph.New(g, eval, scoredgraph.WithSyntheticLoopWeight(loopWeight))
		require.NoError(t, err)

		edgeAddrs := g.Edges("", "", "")
		for _, addr := range addrs {
			want := loopWeight
			for _, ea := range edgeAddrs {
				e, _ := g.Edge(ea)
				w := weights[ea]
				if e.Src == addr {
					want += w.ToWeight
				}
				if e.Dst == addr {
					want += w.FroWeight
				}
			}

			got, err := sg.TotalOutWeight(addr)
			require.NoError(t, err)
			require.InDelta(t, want, got, 1e-9)
		}
	})
}
