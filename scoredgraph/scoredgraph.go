// File: scoredgraph.go
// Role: ScoredGraph's fields and constructor. New evaluates every edge
// exactly once (spec.md §6's edge-evaluator contract) by delegating to
// compiler.Compile with a wrapper that both returns the weight to the
// compiler and records it into the overlay's own weight map, so the real
// caller-supplied evaluator is never invoked a second time on a later Run.
// compiler.Compile evaluates edges sequentially, so the wrapper needs no
// synchronization of its own.
package scoredgraph

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/credgraph/chain"
	"github.com/katalvlaran/credgraph/compiler"
	"github.com/katalvlaran/credgraph/graphstore"
)

// Evaluator assigns weights to an edge. Must be deterministic and total;
// New calls it exactly once per edge.
type Evaluator func(graphstore.Edge) (EdgeWeight, error)

// ScoredGraph overlays a score distribution and per-edge weights onto a
// graphstore.Graph. The zero value is not usable; construct with New.
type ScoredGraph struct {
	mu     sync.RWMutex // guards scores, the only field Run mutates
	scores map[graphstore.NodeAddress]float64

	graph               *graphstore.Graph
	modSnapshot         uint64
	syntheticLoopWeight float64

	weights        map[graphstore.EdgeAddress]EdgeWeight
	totalOutWeight map[graphstore.NodeAddress]float64

	chain *chain.Chain
	order []graphstore.NodeAddress
}

// New constructs a ScoredGraph over g using evaluator to weight every edge.
//
// Returns ErrEmptyGraph if g has no nodes, ErrInvalidLoopWeight if the
// configured synthetic loop weight is non-positive, or ErrInvalidWeight
// (wrapped with the offending edge's address) if evaluator returns a
// negative, NaN, or infinite weight.
func New(g *graphstore.Graph, evaluator Evaluator, opts ...Option) (*ScoredGraph, error) {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	weights := make(map[graphstore.EdgeAddress]EdgeWeight, g.EdgeCount())
	wrapped := func(e graphstore.Edge) (compiler.EdgeWeight, error) {
		w, err := evaluator(e)
		if err != nil {
			return compiler.EdgeWeight{}, err
		}
		weights[e.Address] = w

		return compiler.EdgeWeight{ToWeight: w.ToWeight, FroWeight: w.FroWeight}, nil
	}

	result, err := compiler.Compile(g, wrapped, cfg.SyntheticLoopWeight)
	if err != nil {
		return nil, fmt.Errorf("scoredgraph: %w", err)
	}

	scores := make(map[graphstore.NodeAddress]float64, len(result.Order))
	mass := 1.0 / float64(len(result.Order))
	for _, addr := range result.Order {
		scores[addr] = mass
	}

	return &ScoredGraph{
		scores:              scores,
		graph:               g,
		modSnapshot:         g.ModificationCount(),
		syntheticLoopWeight: cfg.SyntheticLoopWeight,
		weights:             weights,
		totalOutWeight:      result.TotalOutWeight,
		chain:               result.Chain,
		order:               result.Order,
	}, nil
}

// checkModified returns ErrGraphModified if the host graph has mutated
// since construction. Every public operation except Equals,
// SyntheticLoopWeight and Graph calls this first, outside any lock the
// overlay itself holds; those three do not check the host graph.
func (s *ScoredGraph) checkModified() error {
	if s.graph.ModificationCount() != s.modSnapshot {
		return ErrGraphModified
	}

	return nil
}

// SyntheticLoopWeight returns the configured synthetic loop weight.
func (s *ScoredGraph) SyntheticLoopWeight() float64 {
	return s.syntheticLoopWeight
}

// TotalOutWeight returns the cached total out-weight of address.
// Returns ErrUnknownNode if address is not a node of the host graph.
func (s *ScoredGraph) TotalOutWeight(address graphstore.NodeAddress) (float64, error) {
	if err := s.checkModified(); err != nil {
		return 0, err
	}
	w, ok := s.totalOutWeight[address]
	if !ok {
		return 0, fmt.Errorf("scoredgraph: %s: %w", address, ErrUnknownNode)
	}

	return w, nil
}

// Node returns the node at address decorated with its current score, or
// ok=false if address is not a node of the host graph.
func (s *ScoredGraph) Node(address graphstore.NodeAddress) (ScoredNode, bool, error) {
	if err := s.checkModified(); err != nil {
		return ScoredNode{}, false, err
	}
	s.mu.RLock()
	score, ok := s.scores[address]
	s.mu.RUnlock()
	if !ok {
		return ScoredNode{}, false, nil
	}

	return ScoredNode{Address: address, Score: score}, true, nil
}

// Nodes returns every node whose address begins with the prefix supplied
// via WithNodePrefix, in canonical (sorted) address order. With no
// options, every node is returned. Supplying an option set without
// WithNodePrefix is ErrInvalidOptions.
func (s *ScoredGraph) Nodes(opts ...NodesOption) ([]ScoredNode, error) {
	if err := s.checkModified(); err != nil {
		return nil, err
	}
	var cfg nodesConfig
	for _, o := range opts {
		o(&cfg)
	}
	if len(opts) > 0 && !cfg.prefixSet {
		return nil, ErrInvalidOptions
	}

	addrs := s.graph.Nodes(cfg.prefix)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ScoredNode, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, ScoredNode{Address: a, Score: s.scores[a]})
	}

	return out, nil
}

// Edge returns the edge at address decorated with its evaluated weight, or
// ok=false if address is not an edge of the host graph.
func (s *ScoredGraph) Edge(address graphstore.EdgeAddress) (ScoredEdge, bool, error) {
	if err := s.checkModified(); err != nil {
		return ScoredEdge{}, false, err
	}
	e, ok := s.graph.Edge(address)
	if !ok {
		return ScoredEdge{}, false, nil
	}

	return ScoredEdge{Edge: e, Weight: s.weights[address]}, true, nil
}

// Edges returns every edge matching the three prefixes supplied via
// WithEdgeAddressPrefix/WithEdgeSrcPrefix/WithEdgeDstPrefix, in canonical
// (sorted) address order. With no options, every edge is returned.
// Supplying a partial option set is ErrInvalidOptions.
func (s *ScoredGraph) Edges(opts ...EdgesOption) ([]ScoredEdge, error) {
	if err := s.checkModified(); err != nil {
		return nil, err
	}
	var cfg edgesConfig
	for _, o := range opts {
		o(&cfg)
	}
	if len(opts) > 0 && !(cfg.addressPrefixSet && cfg.srcPrefixSet && cfg.dstPrefixSet) {
		return nil, ErrInvalidOptions
	}

	addrs := s.graph.Edges(cfg.addressPrefix, cfg.srcPrefix, cfg.dstPrefix)
	out := make([]ScoredEdge, 0, len(addrs))
	for _, a := range addrs {
		e, _ := s.graph.Edge(a)
		out = append(out, ScoredEdge{Edge: e, Weight: s.weights[a]})
	}

	return out, nil
}

// Equals reports whether s and other represent the same overlay: equal
// host graphs, equal score maps, equal weight maps, and equal synthetic
// loop weights. Modification history is irrelevant.
func (s *ScoredGraph) Equals(other *ScoredGraph) (bool, error) {
	if other == nil {
		return false, fmt.Errorf("scoredgraph: Equals(nil): %w", ErrTypeMismatch)
	}
	if s == other {
		return true, nil
	}
	if s.syntheticLoopWeight != other.syntheticLoopWeight {
		return false, nil
	}
	if !s.graph.Equals(other.graph) {
		return false, nil
	}

	s.mu.RLock()
	other.mu.RLock()
	defer s.mu.RUnlock()
	defer other.mu.RUnlock()

	if len(s.scores) != len(other.scores) {
		return false, nil
	}
	for addr, score := range s.scores {
		if other.scores[addr] != score {
			return false, nil
		}
	}
	if len(s.weights) != len(other.weights) {
		return false, nil
	}
	for addr, w := range s.weights {
		if other.weights[addr] != w {
			return false, nil
		}
	}

	return true, nil
}
