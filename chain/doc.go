// Package chain implements the Markov-chain kernel at the core of the
// scoring engine: a sparse, column-stochastic transition matrix plus the
// handful of vector operations power iteration needs (uniform and
// indicator distribution builders, one teleporting step, and the L∞
// convergence measure).
//
// A Chain is represented as a sequence of Columns rather than a dense or
// CSR matrix: column j lists the rows i and probabilities P(i ← j) of
// moving from node j to node i in one step. This mirrors how the graph→
// chain compiler naturally produces the data (one column per source node,
// built while scanning that node's outgoing/incoming/loop contributions)
// and keeps construction and validation O(nonzeros) instead of O(n²).
//
// Numerics: per-step accumulation uses gonum.org/v1/gonum/mat.VecDense as
// the dense scratch vector the spec calls for, and
// gonum.org/v1/gonum/floats for the L∞ convergence delta.
package chain
