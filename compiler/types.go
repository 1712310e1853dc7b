package compiler

import (
	"github.com/katalvlaran/credgraph/chain"
	"github.com/katalvlaran/credgraph/graphstore"
)

// EdgeWeight is the pair of asymmetric weights spec.md §3 assigns to an
// edge: ToWeight governs score flow Src -> Dst, FroWeight governs flow
// Dst -> Src. Both must be non-negative and finite.
type EdgeWeight struct {
	ToWeight  float64
	FroWeight float64
}

// Evaluator assigns weights to an edge. It must be deterministic and total;
// Compile calls it exactly once per edge.
type Evaluator func(graphstore.Edge) (EdgeWeight, error)

// Result is the output of Compile: the compiled chain plus the canonical
// node order used to build it (also the order the chain's rows/columns are
// indexed by) and each node's total out-weight.
type Result struct {
	Chain          *chain.Chain
	Order          []graphstore.NodeAddress
	TotalOutWeight map[graphstore.NodeAddress]float64
}
