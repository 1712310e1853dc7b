// File: equals.go
// Role: Structural graph equality, grounded on the teacher's CloneEmpty/Clone
// pattern of rebuilding comparable snapshots rather than comparing live maps
// under lock (which would risk deadlock between two graphs' mutexes).
package graphstore

// Equals reports whether g and other contain exactly the same nodes and the
// same edges (same address, same Src, same Dst). Modification history and
// counter values are irrelevant.
// Complexity: O(V + E).
func (g *Graph) Equals(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g == other {
		return true
	}

	gNodes := g.Nodes("")
	oNodes := other.Nodes("")
	if len(gNodes) != len(oNodes) {
		return false
	}
	for i := range gNodes {
		if gNodes[i] != oNodes[i] {
			return false
		}
	}

	gEdges := g.Edges("", "", "")
	oEdges := other.Edges("", "", "")
	if len(gEdges) != len(oEdges) {
		return false
	}
	for i := range gEdges {
		ge, _ := g.Edge(gEdges[i])
		oe, _ := other.Edge(oEdges[i])
		if ge != oe {
			return false
		}
	}

	return true
}
