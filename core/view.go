// File: view.go
// Role: The immutable result of Build and its entity accessors.
// Concurrency:
//   - A View is never mutated after Build returns it; any number of goroutines
//     may query it without locking.
//   - Accessors return copies, so callers cannot reach the shared arenas.

package core

import (
	"fmt"
	"slices"
)

// View is a read-only half-edge mesh. Obtain one from (*Mesh).Build.
type View struct {
	vertices []Vertex
	edges    []HalfEdge
	faces    []Face

	vertexByID map[int]VertexRef
	faceByID   map[int]FaceRef

	eps float64
}

// newView freezes the mesh arenas. The caller holds m.mu and guarantees the
// mesh is never mutated again.
func newView(m *Mesh) *View {
	return &View{
		vertices:   m.vertices,
		edges:      m.edges,
		faces:      m.faces,
		vertexByID: m.adj.vertexByID,
		faceByID:   m.adj.faceByID,
		eps:        m.eps,
	}
}

func (v *View) hasVertex(r VertexRef) bool { return r >= 0 && int(r) < len(v.vertices) }
func (v *View) hasEdge(r EdgeRef) bool     { return r >= 0 && int(r) < len(v.edges) }
func (v *View) hasFace(r FaceRef) bool     { return r >= 0 && int(r) < len(v.faces) }

// Vertex returns a copy of the vertex at ref.
// Returns ErrVertexNotFound for an unknown ref.
func (v *View) Vertex(ref VertexRef) (Vertex, error) {
	if !v.hasVertex(ref) {
		return Vertex{}, fmt.Errorf("%w: ref %d", ErrVertexNotFound, ref)
	}
	out := v.vertices[ref]
	out.OutEdges = slices.Clone(out.OutEdges)

	return out, nil
}

// HalfEdge returns a copy of the half-edge at ref.
// Returns ErrEdgeNotFound for an unknown ref.
func (v *View) HalfEdge(ref EdgeRef) (HalfEdge, error) {
	if !v.hasEdge(ref) {
		return HalfEdge{}, fmt.Errorf("%w: ref %d", ErrEdgeNotFound, ref)
	}

	return v.edges[ref], nil
}

// Face returns a copy of the face at ref.
// Returns ErrFaceNotFound for an unknown ref.
func (v *View) Face(ref FaceRef) (Face, error) {
	if !v.hasFace(ref) {
		return Face{}, fmt.Errorf("%w: ref %d", ErrFaceNotFound, ref)
	}

	return v.faces[ref], nil
}

// VertexByID resolves a caller-supplied vertex id.
func (v *View) VertexByID(id int) (VertexRef, error) {
	ref, ok := v.vertexByID[id]
	if !ok {
		return NoVertex, fmt.Errorf("%w: id %d", ErrVertexNotFound, id)
	}

	return ref, nil
}

// FaceByID resolves a caller-supplied face id.
func (v *View) FaceByID(id int) (FaceRef, error) {
	ref, ok := v.faceByID[id]
	if !ok {
		return NoFace, fmt.Errorf("%w: id %d", ErrFaceNotFound, id)
	}

	return ref, nil
}

// Origin returns the vertex a half-edge leaves from.
func (v *View) Origin(e EdgeRef) (VertexRef, error) {
	if !v.hasEdge(e) {
		return NoVertex, fmt.Errorf("%w: ref %d", ErrEdgeNotFound, e)
	}

	return v.edges[v.edges[e].Pair].Vertex, nil
}

// Epsilon returns the degenerate-normal threshold the view was built with.
func (v *View) Epsilon() float64 { return v.eps }
