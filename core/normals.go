// File: normals.go
// Role: Per-face and per-vertex normal estimation.
// Policy:
//   - A vector shorter than the mesh epsilon is left as the zero vector;
//     degenerate triangles never produce an error.

package core

import "github.com/go-gl/mathgl/mgl64"

// computeNormals fills face normals, then vertex normals from them.
// Complexity: O(F + Σ valence).
func (m *Mesh) computeNormals() error {
	for fi := range m.faces {
		if err := m.faceNormal(FaceRef(fi)); err != nil {
			return err
		}
	}
	for vi := range m.vertices {
		m.vertexNormal(VertexRef(vi))
	}

	return nil
}

// faceNormal sets f's normal to normalize((b-a)×(c-a)) for its cycle a→b→c.
func (m *Mesh) faceNormal(f FaceRef) error {
	e0 := m.faces[f].Edge
	if e0 == NoEdge {
		return &BuildError{Err: ErrInvariantViolation, Stage: StageNormals,
			FaceID: m.faces[f].ID, HasFace: true, Detail: "face has no bordering half-edge"}
	}
	e1 := m.edges[e0].Next
	// The head of e0 must be the tail of e1.
	if e1 == NoEdge || m.edges[e0].Vertex != m.edges[m.edges[e1].Pair].Vertex {
		return &BuildError{Err: ErrInvariantViolation, Stage: StageNormals,
			FaceID: m.faces[f].ID, HasFace: true, Detail: "face cycle is not oriented"}
	}

	a := m.vertices[m.origin(e0)].Position
	b := m.vertices[m.edges[e0].Vertex].Position
	c := m.vertices[m.edges[e1].Vertex].Position
	m.faces[f].Normal = unitOrZero(b.Sub(a).Cross(c.Sub(a)), m.eps)

	return nil
}

// vertexNormal averages the normals of the faces around v. Boundary
// out-edges carry no face and are skipped.
func (m *Mesh) vertexNormal(v VertexRef) {
	var sum mgl64.Vec3
	for _, e := range m.vertices[v].OutEdges {
		if f := m.edges[e].Face; f != NoFace {
			sum = sum.Add(m.faces[f].Normal)
		}
	}
	m.vertices[v].Normal = unitOrZero(sum, m.eps)
}

// unitOrZero normalizes vec, or returns zero when its length is below eps.
func unitOrZero(vec mgl64.Vec3, eps float64) mgl64.Vec3 {
	l := vec.Len()
	if l < eps {
		return mgl64.Vec3{}
	}

	return vec.Mul(1 / l)
}
