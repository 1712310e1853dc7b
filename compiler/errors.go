package compiler

import "errors"

var (
	// ErrInvalidWeight indicates the evaluator returned a negative, NaN, or
	// infinite weight for some edge.
	ErrInvalidWeight = errors.New("compiler: invalid edge weight")

	// ErrInvalidLoopWeight indicates a non-positive synthetic loop weight.
	ErrInvalidLoopWeight = errors.New("compiler: synthetic loop weight must be positive")

	// ErrEmptyGraph indicates the host graph has zero nodes.
	ErrEmptyGraph = errors.New("compiler: graph has no nodes")
)
