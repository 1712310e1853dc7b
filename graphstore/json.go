// File: json.go
// Role: Canonical JSON encoding. Node and edge order is sorted-address order
// so that two structurally equal graphs, regardless of the order in which
// their nodes/edges were inserted, marshal to byte-identical JSON — the
// property snapshot.Serialize's canonicality law depends on.
package graphstore

import (
	json "github.com/goccy/go-json"
)

// canonicalEdge is the wire shape of Edge; field order is fixed by struct
// declaration order, which go-json (like encoding/json) serializes in order.
type canonicalEdge struct {
	Address EdgeAddress `json:"address"`
	Src     NodeAddress `json:"src"`
	Dst     NodeAddress `json:"dst"`
}

// canonicalForm is the wire shape of a whole Graph.
type canonicalForm struct {
	Nodes []NodeAddress   `json:"nodes"`
	Edges []canonicalEdge `json:"edges"`
}

// CanonicalJSON returns the graph's canonical JSON encoding: nodes in sorted
// address order, edges in sorted address order.
// Complexity: O(V log V + E log E).
func (g *Graph) CanonicalJSON() ([]byte, error) {
	form := canonicalForm{
		Nodes: g.Nodes(""),
	}
	edgeAddrs := g.Edges("", "", "")
	form.Edges = make([]canonicalEdge, 0, len(edgeAddrs))
	for _, ea := range edgeAddrs {
		e, _ := g.Edge(ea)
		form.Edges = append(form.Edges, canonicalEdge{Address: e.Address, Src: e.Src, Dst: e.Dst})
	}

	return json.Marshal(form)
}

// FromCanonicalJSON rebuilds a Graph from the encoding produced by
// CanonicalJSON. Node and edge insertion order follows the sorted order
// already present in the payload, so the rebuilt graph's modification
// counter is deterministic given the same input.
// Complexity: O(V + E).
func FromCanonicalJSON(data []byte) (*Graph, error) {
	var form canonicalForm
	if err := json.Unmarshal(data, &form); err != nil {
		return nil, err
	}

	g := New()
	for _, addr := range form.Nodes {
		if err := g.AddNode(addr); err != nil {
			return nil, err
		}
	}
	for _, e := range form.Edges {
		if err := g.AddEdge(e.Address, e.Src, e.Dst); err != nil {
			return nil, err
		}
	}

	return g, nil
}
