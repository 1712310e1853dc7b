// File: compile.go
// Role: Compile walks the canonical node order, evaluates every edge in
// canonical order, then folds the results into a validated chain.Chain.
// The engine performs no parallelism of its own: evaluation is strictly
// sequential, so a stateful, non-reentrant evaluator is spec-legal.
package compiler

import (
	"fmt"
	"math"

	"github.com/katalvlaran/credgraph/chain"
	"github.com/katalvlaran/credgraph/graphstore"
)

// Compile builds the canonical node order and the induced Markov chain for
// g, using evaluator to weight each edge and syntheticLoopWeight as the
// phantom self-loop applied at every node.
//
// Returns ErrEmptyGraph if g has no nodes, ErrInvalidLoopWeight if
// syntheticLoopWeight <= 0, or ErrInvalidWeight (wrapped with the offending
// edge's address) if evaluator returns a negative, NaN, or infinite weight.
//
// Complexity: O(V log V + E) plus evaluator cost. Edges are evaluated
// strictly sequentially in canonical order — single-threaded, cooperative,
// no parallelism — so evaluator need not be reentrant or goroutine-safe.
func Compile(g *graphstore.Graph, evaluator Evaluator, syntheticLoopWeight float64) (Result, error) {
	if syntheticLoopWeight <= 0 || math.IsNaN(syntheticLoopWeight) || math.IsInf(syntheticLoopWeight, 0) {
		return Result{}, ErrInvalidLoopWeight
	}

	order := g.Nodes("")
	n := len(order)
	if n == 0 {
		return Result{}, ErrEmptyGraph
	}
	index := make(map[graphstore.NodeAddress]int, n)
	for i, addr := range order {
		index[addr] = i
	}

	edgeAddrs := g.Edges("", "", "")
	edges := make([]graphstore.Edge, len(edgeAddrs))
	for i, ea := range edgeAddrs {
		e, _ := g.Edge(ea)
		edges[i] = e
	}

	weights, err := evaluateSequential(edges, evaluator)
	if err != nil {
		return Result{}, err
	}

	accum := make([]map[int]float64, n)
	for i := range accum {
		accum[i] = make(map[int]float64)
	}
	for i, e := range edges {
		srcIdx, dstIdx := index[e.Src], index[e.Dst]
		w := weights[i]
		accum[srcIdx][dstIdx] += w.ToWeight
		accum[dstIdx][srcIdx] += w.FroWeight
	}
	for j := 0; j < n; j++ {
		accum[j][j] += syntheticLoopWeight
	}

	totalOutWeight := make(map[graphstore.NodeAddress]float64, n)
	columns := make([]chain.Column, n)
	for j := 0; j < n; j++ {
		var total float64
		for _, w := range accum[j] {
			total += w
		}
		totalOutWeight[order[j]] = total

		neighbors := make([]int, 0, len(accum[j]))
		weightsOut := make([]float64, 0, len(accum[j]))
		for row, w := range accum[j] {
			neighbors = append(neighbors, row)
			weightsOut = append(weightsOut, w/total)
		}
		columns[j] = chain.Column{Neighbors: neighbors, Weights: weightsOut}
	}

	c, err := chain.NewChain(columns, 0)
	if err != nil {
		return Result{}, fmt.Errorf("compiler: compiled chain failed validation: %w", err)
	}

	return Result{Chain: c, Order: order, TotalOutWeight: totalOutWeight}, nil
}

// evaluateSequential calls evaluator exactly once per edge, strictly in
// canonical edge order, and validates every result before returning.
func evaluateSequential(edges []graphstore.Edge, evaluator Evaluator) ([]EdgeWeight, error) {
	out := make([]EdgeWeight, len(edges))
	for i, e := range edges {
		w, err := evaluator(e)
		if err != nil {
			return nil, fmt.Errorf("compiler: edge %s: %w", e.Address, err)
		}
		if w.ToWeight < 0 || w.FroWeight < 0 ||
			math.IsNaN(w.ToWeight) || math.IsNaN(w.FroWeight) ||
			math.IsInf(w.ToWeight, 0) || math.IsInf(w.FroWeight, 0) {
			return nil, fmt.Errorf("compiler: edge %s: %w", e.Address, ErrInvalidWeight)
		}
		out[i] = w
	}

	return out, nil
}
