// File: random_sparse.go
// Role: BuildRandomSparse samples a directed Erdős–Rényi-style graph:
// every ordered pair (i, j), including i == j (self-loops), is an edge
// independently with probability p. Adapted from the teacher's
// builder.RandomSparse loop structure and p-in-{0,1} determinism carve-out.
package randgraph

import (
	"fmt"

	"github.com/katalvlaran/credgraph/graphstore"
)

// BuildRandomSparse returns a graphstore.Graph over n nodes, with each of
// the n*n ordered pairs (i, j) an edge independently with probability p.
//
// Returns ErrTooFewVertices if n < 1, ErrInvalidProbability if p is
// outside [0, 1], or ErrNeedRandSource if 0 < p < 1 and no RNG was
// configured via WithRand/WithSeed.
//
// Determinism: vertex order is always i ascending; edge-trial order is i
// ascending then j ascending, so BuildRandomSparse(n, p, WithSeed(s)) is
// reproducible for a fixed (n, p, s).
func BuildRandomSparse(n int, p float64, opts ...Option) (*graphstore.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("randgraph: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("randgraph: p=%.6f: %w", p, ErrInvalidProbability)
	}
	cfg := newConfig(opts)
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, ErrNeedRandSource
	}

	g := graphstore.New()
	addrs := make([]graphstore.NodeAddress, n)
	for i := 0; i < n; i++ {
		addrs[i] = graphstore.NodeAddress(cfg.idFunc(i))
		if err := g.AddNode(addrs[i]); err != nil {
			return nil, fmt.Errorf("randgraph: AddNode(%s): %w", addrs[i], err)
		}
	}

	edgeSeq := 0
	include := func() bool {
		switch p {
		case 0:
			return false
		case 1:
			return true
		default:
			return cfg.rng.Float64() <= p
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !include() {
				continue
			}
			addr := graphstore.EdgeAddress(fmt.Sprintf("e%04d", edgeSeq))
			edgeSeq++
			if err := g.AddEdge(addr, addrs[i], addrs[j]); err != nil {
				return nil, fmt.Errorf("randgraph: AddEdge(%s -> %s): %w", addrs[i], addrs[j], err)
			}
		}
	}

	return g, nil
}
