// File: errors.go
// Role: Sentinel error set for scoredgraph, re-exporting compiler/chain
// sentinels where the underlying failure genuinely originates there
// (preserving errors.Is for callers who only import scoredgraph) and
// defining new sentinels for overlay-specific failure kinds.
package scoredgraph

import (
	"errors"

	"github.com/katalvlaran/credgraph/chain"
	"github.com/katalvlaran/credgraph/compiler"
)

var (
	// ErrEmptyGraph indicates the host graph has zero nodes.
	ErrEmptyGraph = compiler.ErrEmptyGraph

	// ErrInvalidLoopWeight indicates a non-positive synthetic loop weight.
	ErrInvalidLoopWeight = compiler.ErrInvalidLoopWeight

	// ErrInvalidWeight indicates the evaluator returned a negative, NaN, or
	// infinite weight for some edge.
	ErrInvalidWeight = compiler.ErrInvalidWeight

	// ErrNumeric indicates a compiled chain column failed to sum to 1.
	ErrNumeric = chain.ErrNumeric

	// ErrGraphModified indicates the host graph's modification counter has
	// diverged from the snapshot taken at construction.
	ErrGraphModified = errors.New("scoredgraph: host graph modified since construction")

	// ErrUnknownNode indicates an address not present in the graph.
	ErrUnknownNode = errors.New("scoredgraph: unknown node address")

	// ErrInvalidOptions indicates an options record was supplied with one
	// or more required fields left unset.
	ErrInvalidOptions = errors.New("scoredgraph: missing required option field")

	// ErrTypeMismatch indicates Equals was called with an incompatible
	// argument.
	ErrTypeMismatch = errors.New("scoredgraph: type mismatch")

	// ErrNotImplemented indicates a SpecifiedSeed run was requested.
	ErrNotImplemented = errors.New("scoredgraph: specified seed is not implemented")
)
