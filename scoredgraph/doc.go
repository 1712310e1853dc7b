// Package scoredgraph overlays a PageRank-style score distribution onto a
// graphstore.Graph: it evaluates every edge into an asymmetric weight pair
// exactly once at construction, derives each node's total out-weight, and
// exposes read-only node/edge/neighbor queries decorated with the current
// score and its per-neighbor decomposition. Run drives the overlay's scores
// toward a stationary distribution by delegating to compiler.Compile (graph
// -> chain) and solver.Converge (chain -> fixed point).
//
// Grounded on the teacher's core/api.go (a thin read-only facade in front
// of Graph) and core/methods.go (RWMutex-guarded accessors): ScoredGraph
// holds a single sync.RWMutex guarding only the score map, since scores are
// the sole field Run ever mutates after construction. The host graph
// reference, the weight map, and the synthetic-loop weight are immutable
// for the overlay's lifetime; the modification-counter snapshot taken at
// construction is the only integrity link back to the host graph, matching
// the teacher's policy of never holding two locks at once.
package scoredgraph
