// File: query.go
// Role: Read-only, prefix-filtered iteration and direction-aware neighbor
// queries. Adapted from core/methods.go's Neighbors/NeighborIDs, generalized
// from "directed vs undirected" to an explicit Direction enum and from bare
// string IDs to ordered, prefix-matchable addresses.
package graphstore

import (
	"iter"
	"sort"
)

// Node returns the node at address, or ok=false if absent.
// Complexity: O(1).
func (g *Graph) Node(address NodeAddress) (Node, bool) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[address]

	return n, ok
}

// Edge returns the edge at address, or ok=false if absent.
// Complexity: O(1).
func (g *Graph) Edge(address EdgeAddress) (Edge, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	e, ok := g.edges[address]

	return e, ok
}

// Nodes returns the sorted addresses of every node whose address begins
// with prefix (empty prefix matches all nodes).
// Complexity: O(V log V).
func (g *Graph) Nodes(prefix NodeAddress) []NodeAddress {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := make([]NodeAddress, 0, len(g.nodes))
	for addr := range g.nodes {
		if addr.HasPrefix(prefix) {
			out = append(out, addr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// NodesSeq is a lazy, sorted-order iterator over nodes whose address begins
// with prefix, mirroring spec.md's "lazy sequence" framing for the overlay's
// public nodes() operation.
// Complexity: O(V log V) to materialize the order, O(1) amortized per yield.
func (g *Graph) NodesSeq(prefix NodeAddress) iter.Seq[Node] {
	addrs := g.Nodes(prefix)

	return func(yield func(Node) bool) {
		for _, a := range addrs {
			n, ok := g.Node(a)
			if !ok {
				continue // removed between snapshot and iteration
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Edges returns the sorted addresses of every edge matching all three
// prefixes (addressPrefix on the edge's own address, srcPrefix on Src,
// dstPrefix on Dst).
// Complexity: O(E log E).
func (g *Graph) Edges(addressPrefix EdgeAddress, srcPrefix, dstPrefix NodeAddress) []EdgeAddress {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	out := make([]EdgeAddress, 0, len(g.edges))
	for addr, e := range g.edges {
		if addr.HasPrefix(addressPrefix) && e.Src.HasPrefix(srcPrefix) && e.Dst.HasPrefix(dstPrefix) {
			out = append(out, addr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// EdgesSeq is a lazy, sorted-order iterator over edges matching the three
// prefixes; see Edges.
func (g *Graph) EdgesSeq(addressPrefix EdgeAddress, srcPrefix, dstPrefix NodeAddress) iter.Seq[Edge] {
	addrs := g.Edges(addressPrefix, srcPrefix, dstPrefix)

	return func(yield func(Edge) bool) {
		for _, a := range addrs {
			e, ok := g.Edge(a)
			if !ok {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Neighbors returns, in sorted edge-address order, every edge incident to
// target that matches direction, nodePrefix (on the *other* endpoint), and
// edgePrefix (on the edge's own address).
//
// direction selects which role target must play:
//   - DirectionOut: edges where target == Src (the "other" endpoint is Dst).
//   - DirectionIn:  edges where target == Dst (the "other" endpoint is Src).
//   - DirectionAny: either of the above. A self-loop (Src == Dst == target)
//     satisfies both roles simultaneously but is reported exactly once.
//
// Complexity: O(deg(target) log deg(target)).
func (g *Graph) Neighbors(target NodeAddress, direction Direction, nodePrefix NodeAddress, edgePrefix EdgeAddress) []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	seen := make(map[EdgeAddress]struct{})
	var out []Edge
	add := func(eid EdgeAddress) {
		if !eid.HasPrefix(edgePrefix) {
			return
		}
		if _, dup := seen[eid]; dup {
			return
		}
		seen[eid] = struct{}{}
		out = append(out, g.edges[eid])
	}
	if direction == DirectionOut || direction == DirectionAny {
		for dst, edgeSet := range g.outAdj[target] {
			if !dst.HasPrefix(nodePrefix) {
				continue
			}
			for eid := range edgeSet {
				add(eid)
			}
		}
	}
	if direction == DirectionIn || direction == DirectionAny {
		for src, edgeSet := range g.inAdj[target] {
			if !src.HasPrefix(nodePrefix) {
				continue
			}
			for eid := range edgeSet {
				add(eid)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })

	return out
}
