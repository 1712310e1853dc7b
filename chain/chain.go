// File: chain.go
// Role: The Chain type and its constructor, including column-stochasticity
// validation (spec.md testable property 7: every column sums to 1 within
// 1e-12).
package chain

import (
	"fmt"
	"math"
)

// DefaultStochasticEpsilon is the default tolerance NewChain uses when
// checking that every column sums to 1.
const DefaultStochasticEpsilon = 1e-12

// Column describes the nonzero entries of one column of a column-stochastic
// matrix: Neighbors[k] is a row index, Weights[k] is P(Neighbors[k] ← this
// column's node). Neighbors need not be sorted; ties in Neighbors are
// summed by the caller before being handed to NewChain (NewChain itself
// does not deduplicate).
type Column struct {
	Neighbors []int
	Weights   []float64
}

// Chain is a sparse column-stochastic matrix: Columns[j] is the outgoing
// transition distribution of node j over the canonical node order.
type Chain struct {
	Columns []Column
}

// Len returns the number of states (nodes) in the chain.
func (c *Chain) Len() int { return len(c.Columns) }

// NewChain validates that every column's weights are non-negative, finite,
// sum to 1 within epsilon, and reference rows in [0, len(columns)), then
// returns the Chain.
//
// epsilon <= 0 selects DefaultStochasticEpsilon.
// Complexity: O(nonzeros).
func NewChain(columns []Column, epsilon float64) (*Chain, error) {
	if epsilon <= 0 {
		epsilon = DefaultStochasticEpsilon
	}
	n := len(columns)
	for j, col := range columns {
		if len(col.Neighbors) != len(col.Weights) {
			return nil, fmt.Errorf("chain: column %d: %w", j, ErrDimensionMismatch)
		}
		var sum float64
		for k, w := range col.Weights {
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("chain: column %d entry %d: %w", j, k, ErrInvalidWeight)
			}
			if col.Neighbors[k] < 0 || col.Neighbors[k] >= n {
				return nil, fmt.Errorf("chain: column %d entry %d: row %d out of range: %w", j, k, col.Neighbors[k], ErrDimensionMismatch)
			}
			sum += w
		}
		if n > 0 && math.Abs(sum-1) > epsilon {
			return nil, fmt.Errorf("chain: column %d sums to %v, want 1±%v: %w", j, sum, epsilon, ErrNumeric)
		}
	}

	return &Chain{Columns: columns}, nil
}
