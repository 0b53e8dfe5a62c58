// File: lookup.go
// Role: Directed half-edge lookup through per-vertex out-edge sets.
// Complexity:
//   - O(valence of from); the out-edge sets exist so this never scans all half-edges.

package core

// lookupIn scans from's out-edge set for a half-edge ending at to.
func lookupIn(vertices []Vertex, edges []HalfEdge, from, to VertexRef) EdgeRef {
	for _, e := range vertices[from].OutEdges {
		if edges[e].Vertex == to {
			return e
		}
	}

	return NoEdge
}

// lookupHalfEdge is lookupIn over the mesh's live arenas.
func (m *Mesh) lookupHalfEdge(from, to VertexRef) EdgeRef {
	return lookupIn(m.vertices, m.edges, from, to)
}

// LookupHalfEdge returns the half-edge from→to, if the two vertices share an edge.
// Unknown refs report false.
// Complexity: O(valence of from).
func (v *View) LookupHalfEdge(from, to VertexRef) (EdgeRef, bool) {
	if !v.hasVertex(from) || !v.hasVertex(to) {
		return NoEdge, false
	}
	e := lookupIn(v.vertices, v.edges, from, to)

	return e, e != NoEdge
}
