// Package graphstore implements the minimal "host graph" contract that the
// scoring engine (packages chain, solver, compiler, scoredgraph, snapshot)
// depends on: addressed nodes and edges, a monotonic modification counter,
// prefix-filtered iteration, direction-aware neighbor queries, structural
// equality, and canonical JSON.
//
// It is deliberately not a general-purpose graph library: no traversal
// algorithms, no shortest paths, no builders. Those concerns belong to
// whatever production graph a real host supplies; graphstore exists only so
// this module is self-contained and testable.
//
// Concurrency: Graph guards nodes and edges+adjacency with two separate
// sync.RWMutex locks (muNode, muEdge) to minimize contention, the same
// separation used by the core package this is adapted from. The two locks
// are never held at once.
package graphstore
