// File: run.go
// Role: Run drives the overlay's scores toward a stationary distribution:
// build a seed distribution from the requested Seed strategy, hand the
// cached chain and the overlay's current scores to solver.Converge, then
// write the result back. Side effects land only at the end of Run (spec.md
// §5: "an abandoned run leaves the overlay unchanged").
package scoredgraph

import (
	"fmt"

	"github.com/katalvlaran/credgraph/chain"
	"github.com/katalvlaran/credgraph/graphstore"
	"github.com/katalvlaran/credgraph/solver"
)

// RunResult is what Run returns: the last observed convergence delta.
type RunResult struct {
	ConvergenceDelta float64
}

// Run converges the overlay's scores under seed and opts, then overwrites
// the score map with the result. The initial distribution is the overlay's
// current scores (spec.md §9's resolved open question: not re-initialized
// to uniform), so a first Run starts from the uniform prior New set and a
// second Run continues from wherever the first left off.
//
// Returns ErrNotImplemented if seed.Kind is SpecifiedSeedKind.
func (s *ScoredGraph) Run(seed Seed, opts solver.Options) (RunResult, error) {
	if err := s.checkModified(); err != nil {
		return RunResult{}, err
	}
	if seed.Kind == SpecifiedSeedKind {
		return RunResult{}, fmt.Errorf("scoredgraph: run: %w", ErrNotImplemented)
	}

	n := len(s.order)
	alpha, seedDist, err := s.buildSeed(seed, n)
	if err != nil {
		return RunResult{}, fmt.Errorf("scoredgraph: run: %w", err)
	}

	s.mu.RLock()
	pi0 := make(chain.Distribution, n)
	for i, addr := range s.order {
		pi0[i] = s.scores[addr]
	}
	s.mu.RUnlock()

	result, err := solver.Converge(s.chain, pi0, seedDist, alpha, opts)
	if err != nil {
		return RunResult{}, fmt.Errorf("scoredgraph: run: %w", err)
	}

	s.mu.Lock()
	for i, addr := range s.order {
		s.scores[addr] = result.Pi[i]
	}
	s.mu.Unlock()

	return RunResult{ConvergenceDelta: result.ConvergenceDelta}, nil
}

// buildSeed translates a Seed strategy into (alpha, distribution), applying
// SELECTED_SEED's silent-drop-and-collapse rule.
func (s *ScoredGraph) buildSeed(seed Seed, n int) (float64, chain.Distribution, error) {
	switch seed.Kind {
	case NoSeedKind:
		d, err := chain.Uniform(n)

		return 0, d, err

	case UniformSeedKind:
		d, err := chain.Uniform(n)

		return seed.Alpha, d, err

	case SelectedSeedKind:
		present := make(map[graphstore.NodeAddress]struct{}, n)
		for _, a := range s.order {
			present[a] = struct{}{}
		}
		seenSel := make(map[graphstore.NodeAddress]struct{}, len(seed.SelectedNodes))
		filtered := make([]graphstore.NodeAddress, 0, len(seed.SelectedNodes))
		for _, a := range seed.SelectedNodes {
			if _, ok := present[a]; !ok {
				continue // silently dropped: absent from the graph
			}
			if _, dup := seenSel[a]; dup {
				continue
			}
			seenSel[a] = struct{}{}
			filtered = append(filtered, a)
		}
		if len(filtered) == 0 || len(filtered) == n {
			d, err := chain.Uniform(n)

			return seed.Alpha, d, err
		}
		d, err := chain.Indicator(s.order, filtered)

		return seed.Alpha, d, err

	default:
		return 0, nil, fmt.Errorf("scoredgraph: unrecognized seed kind %d", seed.Kind)
	}
}
