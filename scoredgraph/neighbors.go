// File: neighbors.go
// Role: Neighbor enumeration with per-edge score-contribution decomposition
// (spec.md §4.D), plus the synthetic loop's own contribution. Together with
// Node.Score, these two sources satisfy the score-decomposition identity
// that property_test.go checks.
package scoredgraph

import (
	"fmt"

	"github.com/katalvlaran/credgraph/graphstore"
)

// Neighbors returns, for every edge incident to target that matches the
// direction/nodePrefix/edgePrefix filters supplied via options, the other
// endpoint, the edge, and that neighbor's score contribution to target. For
// a self-loop, the "other endpoint" is target itself. With no options,
// every direction and no prefix filtering is used. Supplying a partial
// option set is ErrInvalidOptions.
//
// Returns ErrUnknownNode if target is not a node of the host graph.
func (s *ScoredGraph) Neighbors(target graphstore.NodeAddress, opts ...NeighborsOption) ([]NeighborContribution, error) {
	if err := s.checkModified(); err != nil {
		return nil, err
	}

	cfg := neighborsConfig{direction: graphstore.DirectionAny}
	for _, o := range opts {
		o(&cfg)
	}
	if len(opts) > 0 && !(cfg.directionSet && cfg.nodePrefixSet && cfg.edgePrefixSet) {
		return nil, ErrInvalidOptions
	}

	s.mu.RLock()
	_, knownTarget := s.scores[target]
	s.mu.RUnlock()
	if !knownTarget {
		return nil, fmt.Errorf("scoredgraph: %s: %w", target, ErrUnknownNode)
	}

	edges := s.graph.Neighbors(target, cfg.direction, cfg.nodePrefix, cfg.edgePrefix)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]NeighborContribution, 0, len(edges))
	for _, e := range edges {
		other := e.Src
		if e.Src == target {
			other = e.Dst
		}

		w := s.weights[e.Address]
		var raw float64
		if e.Dst == target {
			raw += w.ToWeight
		}
		if e.Src == target {
			raw += w.FroWeight
		}

		otherScore := s.scores[other]
		contribution := otherScore * raw / s.totalOutWeight[other]

		out = append(out, NeighborContribution{
			Node:              ScoredNode{Address: other, Score: otherScore},
			Edge:              ScoredEdge{Edge: e, Weight: w},
			ScoreContribution: contribution,
		})
	}

	return out, nil
}

// SyntheticLoopScoreContribution returns score(target) * syntheticLoopWeight
// / totalOutWeight(target). Returns ErrUnknownNode if target is not a node
// of the host graph.
func (s *ScoredGraph) SyntheticLoopScoreContribution(target graphstore.NodeAddress) (float64, error) {
	if err := s.checkModified(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	score, ok := s.scores[target]
	s.mu.RUnlock()
	if !ok {
		return 0, fmt.Errorf("scoredgraph: %s: %w", target, ErrUnknownNode)
	}

	return score * s.syntheticLoopWeight / s.totalOutWeight[target], nil
}
