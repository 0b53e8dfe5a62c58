// Package core: entity store.
//
// This file provides the insertion side of the Mesh: vertices and faces are
// appended to their arenas without any topology, and half-edges are created
// later by the topology constructor, always in pairs. Insertion is O(1)
// amortized and never validates ids; validation happens once, in Build.

package core

import "github.com/go-gl/mathgl/mgl64"

// InsertVertex appends a vertex at (x, y, z) with the caller-supplied id.
// Returns ErrMeshBuilt once Build has succeeded.
// Complexity: O(1) amortized.
func (m *Mesh) InsertVertex(x, y, z float64, id int) (VertexRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.view != nil {
		return NoVertex, ErrMeshBuilt
	}
	m.vertices = append(m.vertices, Vertex{
		ID:       id,
		Position: mgl64.Vec3{x, y, z},
		Edge:     NoEdge,
	})
	// Any previous adjacency scratch is stale now.
	m.adj = nil

	return VertexRef(len(m.vertices) - 1), nil
}

// InsertFace appends a triangle referencing three vertex ids.
// The ids are resolved by Build; unknown ids surface there as ErrDanglingVertex.
// Returns ErrMeshBuilt once Build has succeeded.
// Complexity: O(1) amortized.
func (m *Mesh) InsertFace(id, v0, v1, v2 int) (FaceRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.view != nil {
		return NoFace, ErrMeshBuilt
	}
	m.faces = append(m.faces, Face{
		ID:        id,
		VertexIDs: [3]int{v0, v1, v2},
		Edge:      NoEdge,
	})
	m.adj = nil

	return FaceRef(len(m.faces) - 1), nil
}

// insertHalfEdge appends one unlinked half-edge with a fresh id.
func (m *Mesh) insertHalfEdge() EdgeRef {
	m.edges = append(m.edges, HalfEdge{
		ID:     m.ids.Next(),
		Vertex: NoVertex,
		Pair:   NoEdge,
		Face:   NoFace,
		Next:   NoEdge,
		Prev:   NoEdge,
	})

	return EdgeRef(len(m.edges) - 1)
}

// insertEdgePair creates the half-edge from→to and its twin to→from, and
// registers each in the out-edge set of its origin. Neither side has a face yet.
func (m *Mesh) insertEdgePair(from, to VertexRef) (EdgeRef, EdgeRef) {
	e := m.insertHalfEdge()
	p := m.insertHalfEdge()

	m.edges[e].Vertex = to
	m.edges[e].Pair = p
	m.edges[p].Vertex = from
	m.edges[p].Pair = e

	m.vertices[from].OutEdges = append(m.vertices[from].OutEdges, e)
	m.vertices[to].OutEdges = append(m.vertices[to].OutEdges, p)

	return e, p
}

// origin returns the vertex a half-edge leaves from.
func (m *Mesh) origin(e EdgeRef) VertexRef {
	return m.edges[m.edges[e].Pair].Vertex
}

// resetTopology discards every half-edge and all derived state, returning the
// mesh to its post-insertion state. Used to roll back a failed Build.
func (m *Mesh) resetTopology() {
	m.edges = m.edges[:0]
	for i := range m.vertices {
		m.vertices[i].Edge = NoEdge
		m.vertices[i].OutEdges = nil
		m.vertices[i].Normal = mgl64.Vec3{}
	}
	for i := range m.faces {
		m.faces[i].Edge = NoEdge
		m.faces[i].Normal = mgl64.Vec3{}
	}
}

// VertexCount returns the number of inserted vertices.
func (m *Mesh) VertexCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.vertices)
}

// FaceCount returns the number of inserted faces.
func (m *Mesh) FaceCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.faces)
}

// HalfEdgeCount returns the number of half-edges; zero before Build.
func (m *Mesh) HalfEdgeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.edges)
}

// Built reports whether Build has succeeded.
func (m *Mesh) Built() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.view != nil
}
