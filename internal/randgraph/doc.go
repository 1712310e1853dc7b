// Package randgraph builds Erdős–Rényi-style random graphstore.Graph
// fixtures for property-based tests. Adapted from the teacher's
// builder.RandomSparse(n, p): same deterministic trial order (ordered
// pairs (i, j), i ascending then j ascending, self-loops included), same
// functional-options config surface, rewired to produce graphstore's
// addressed multigraph instead of lvlath/core's undirected-capable Graph.
// Every admissible edge is included independently with probability p; this
// package deliberately omits the teacher's undirected/weighted/multigraph
// mode flags since graphstore only ever models a directed multigraph.
package randgraph
