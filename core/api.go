// File: api.go
// Role: Counts and whole-mesh summaries of a View.
// Policy:
//   - No algorithms beyond single linear scans.

package core

import "fmt"

// VertexCount returns the number of vertices, isolated ones included.
func (v *View) VertexCount() int { return len(v.vertices) }

// HalfEdgeCount returns the number of half-edges.
func (v *View) HalfEdgeCount() int { return len(v.edges) }

// EdgeCount returns the number of undirected edges (half-edges / 2).
func (v *View) EdgeCount() int { return len(v.edges) / 2 }

// FaceCount returns the number of faces.
func (v *View) FaceCount() int { return len(v.faces) }

// EulerCharacteristic returns V - E + F. A closed genus-0 surface yields 2,
// a disc 1.
func (v *View) EulerCharacteristic() int {
	return v.VertexCount() - v.EdgeCount() + v.FaceCount()
}

// BoundaryHalfEdges returns every half-edge without a face, in arena order.
// Complexity: O(E).
func (v *View) BoundaryHalfEdges() []EdgeRef {
	var out []EdgeRef
	for i := range v.edges {
		if v.edges[i].Face == NoFace {
			out = append(out, EdgeRef(i))
		}
	}

	return out
}

// Stats is a snapshot summary of a View.
type Stats struct {
	Vertices          int
	HalfEdges         int
	Edges             int
	Faces             int
	BoundaryHalfEdges int
	IsolatedVertices  int
	MaxValence        int
	DegenerateFaces   int // faces whose normal fell below epsilon
	Euler             int
}

// Closed reports whether the surface has no boundary.
func (s Stats) Closed() bool { return s.BoundaryHalfEdges == 0 }

// String renders the summary on one line.
func (s Stats) String() string {
	return fmt.Sprintf("V=%d E=%d F=%d half-edges=%d boundary=%d isolated=%d max-valence=%d degenerate=%d euler=%d",
		s.Vertices, s.Edges, s.Faces, s.HalfEdges, s.BoundaryHalfEdges,
		s.IsolatedVertices, s.MaxValence, s.DegenerateFaces, s.Euler)
}

// Stats returns counts, boundary size, valence extremes and degenerate faces.
// Complexity: O(V + E + F).
func (v *View) Stats() Stats {
	s := Stats{
		Vertices:  v.VertexCount(),
		HalfEdges: v.HalfEdgeCount(),
		Edges:     v.EdgeCount(),
		Faces:     v.FaceCount(),
		Euler:     v.EulerCharacteristic(),
	}
	s.BoundaryHalfEdges = len(v.BoundaryHalfEdges())
	for i := range v.vertices {
		k := len(v.vertices[i].OutEdges)
		if k == 0 {
			s.IsolatedVertices++
		}
		s.MaxValence = max(s.MaxValence, k)
	}
	for i := range v.faces {
		if v.faces[i].Normal.Len() == 0 {
			s.DegenerateFaces++
		}
	}

	return s
}
