// Package compiler builds a chain.Chain from a graphstore.Graph, an edge
// evaluator, and a synthetic self-loop weight: it assigns the canonical
// (lexicographic) node order and, for each node, accumulates its column of
// the induced Markov chain from outgoing edges (toWeight), incoming edges
// (froWeight), and the always-present synthetic loop, before normalizing by
// the node's total out-weight.
//
// The engine performs no parallelism of its own: Compile evaluates every
// edge exactly once, strictly in canonical edge order (spec.md §5's
// single-threaded cooperative scheduling model), then folds the result
// into per-node columns in a single pass. The fold ranges over per-column
// maps, so the order of entries within a column (and the order in which a
// column's total is summed) is not fixed from one call to the next. This
// mirrors the teacher's tsp.SolveWithGraph: a dedicated build stage
// followed by a fold/dispatch.
package compiler
