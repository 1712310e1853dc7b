// File: canonical.go
// Role: Canonical-order accessors and the snapshot-reconstruction
// constructor package snapshot needs. Kept separate from scoredgraph.go so
// the "weak reference to the host graph" surface (Graph) and the
// serialization support surface are easy to audit independently.
package scoredgraph

import (
	"fmt"

	"github.com/katalvlaran/credgraph/compiler"
	"github.com/katalvlaran/credgraph/graphstore"
)

// Graph returns the host graph the overlay was constructed over. The
// overlay never mutates it; this is a lookup reference only (spec.md §9:
// "weak/back-reference semantics... never ownership").
func (s *ScoredGraph) Graph() *graphstore.Graph {
	return s.graph
}

// CanonicalScores returns the current score of every node in canonical
// (sorted) address order, matching the node order the chain was compiled
// over.
func (s *ScoredGraph) CanonicalScores() ([]float64, error) {
	if err := s.checkModified(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]float64, len(s.order))
	for i, addr := range s.order {
		out[i] = s.scores[addr]
	}

	return out, nil
}

// CanonicalWeights returns the toWeight and froWeight of every edge, in
// canonical (sorted) edge-address order.
func (s *ScoredGraph) CanonicalWeights() (toWeights, froWeights []float64, err error) {
	if err := s.checkModified(); err != nil {
		return nil, nil, err
	}
	edgeAddrs := s.graph.Edges("", "", "")
	toWeights = make([]float64, len(edgeAddrs))
	froWeights = make([]float64, len(edgeAddrs))
	for i, a := range edgeAddrs {
		w := s.weights[a]
		toWeights[i] = w.ToWeight
		froWeights[i] = w.FroWeight
	}

	return toWeights, froWeights, nil
}

// FromCanonical reconstructs a ScoredGraph from a host graph and the three
// parallel canonical-order arrays CanonicalWeights/CanonicalScores produce,
// plus the synthetic loop weight. Unlike New, it never calls a caller
// evaluator: the weights are already known, so package snapshot can
// round-trip an overlay without re-deriving anything from scratch.
//
// Returns ErrEmptyGraph, ErrInvalidLoopWeight, or a length-mismatch error
// wrapping ErrInvalidOptions if the arrays do not match the graph's current
// edge/node counts.
func FromCanonical(g *graphstore.Graph, toWeights, froWeights, scores []float64, syntheticLoopWeight float64) (*ScoredGraph, error) {
	edgeAddrs := g.Edges("", "", "")
	if len(toWeights) != len(edgeAddrs) || len(froWeights) != len(edgeAddrs) {
		return nil, fmt.Errorf("scoredgraph: canonical weight arrays have length %d/%d, want %d: %w",
			len(toWeights), len(froWeights), len(edgeAddrs), ErrInvalidOptions)
	}

	weights := make(map[graphstore.EdgeAddress]EdgeWeight, len(edgeAddrs))
	for i, a := range edgeAddrs {
		weights[a] = EdgeWeight{ToWeight: toWeights[i], FroWeight: froWeights[i]}
	}
	replay := func(e graphstore.Edge) (compiler.EdgeWeight, error) {
		w := weights[e.Address]

		return compiler.EdgeWeight{ToWeight: w.ToWeight, FroWeight: w.FroWeight}, nil
	}

	result, err := compiler.Compile(g, replay, syntheticLoopWeight)
	if err != nil {
		return nil, fmt.Errorf("scoredgraph: %w", err)
	}

	if len(scores) != len(result.Order) {
		return nil, fmt.Errorf("scoredgraph: canonical scores have length %d, want %d: %w",
			len(scores), len(result.Order), ErrInvalidOptions)
	}
	scoreMap := make(map[graphstore.NodeAddress]float64, len(result.Order))
	for i, addr := range result.Order {
		scoreMap[addr] = scores[i]
	}

	return &ScoredGraph{
		scores:              scoreMap,
		graph:               g,
		modSnapshot:         g.ModificationCount(),
		syntheticLoopWeight: syntheticLoopWeight,
		weights:             weights,
		totalOutWeight:      result.TotalOutWeight,
		chain:               result.Chain,
		order:               result.Order,
	}, nil
}
