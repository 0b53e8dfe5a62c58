// File: adjacency_list.go
// Role: One-shot adjacency scratch derived from the id-based input.
// Determinism:
//   - vertexFaces lists faces in ascending FaceRef (insertion) order.
//   - faceFaces lists neighbours in ascending FaceRef order.
// Lifecycle:
//   - Built at most once per set of insertions; any insertion drops it.
//   - Dropped when Build succeeds; never consulted by View queries.

package core

import (
	"fmt"
	"slices"
)

// maxFaceNeighbours is the edge count of a triangle.
const maxFaceNeighbours = 3

// adjacency holds the scratch maps the topology constructor walks.
type adjacency struct {
	vertexByID map[int]VertexRef // vertex id → arena index
	faceByID   map[int]FaceRef   // face id → arena index

	faceVerts   [][3]VertexRef // FaceRef → its three vertices, in supplied order
	vertexFaces [][]FaceRef    // VertexRef → incident faces
	faceFaces   [][]FaceRef    // FaceRef → faces sharing exactly two vertices
}

// buildAdjacency runs the adjacency steps in order, each consuming the
// previous one. It is a no-op when the scratch is already current.
//
// Errors (all *BuildError at StageAdjacency):
//   - ErrDuplicateVertexID, ErrDuplicateFaceID
//   - ErrDanglingVertex, ErrDegenerateFace
//   - ErrNonManifold (a face with more than three neighbours)
//
// Complexity: O(V + F + Σ k²) where k is the number of faces around a vertex.
func (m *Mesh) buildAdjacency() error {
	if m.adj != nil {
		return nil
	}
	a := &adjacency{}

	// 1) Reverse lookups.
	if err := a.indexIDs(m.vertices, m.faces); err != nil {
		return err
	}
	// 2) Face → vertices.
	if err := a.resolveFaceVertices(m.faces); err != nil {
		return err
	}
	// 3) Vertex → faces.
	a.invertFaceVertices(len(m.vertices))
	// 4) Face → faces.
	if err := a.linkFaces(m.faces); err != nil {
		return err
	}

	m.adj = a

	return nil
}

// indexIDs fills vertexByID and faceByID, rejecting repeated ids.
func (a *adjacency) indexIDs(vertices []Vertex, faces []Face) error {
	a.vertexByID = make(map[int]VertexRef, len(vertices))
	for i := range vertices {
		id := vertices[i].ID
		if prev, dup := a.vertexByID[id]; dup {
			return &BuildError{
				Err:       ErrDuplicateVertexID,
				Stage:     StageAdjacency,
				VertexIDs: []int{id},
				Detail:    fmt.Sprintf("inserted at positions %d and %d", prev, i),
			}
		}
		a.vertexByID[id] = VertexRef(i)
	}

	a.faceByID = make(map[int]FaceRef, len(faces))
	for i := range faces {
		id := faces[i].ID
		if prev, dup := a.faceByID[id]; dup {
			return faceError(StageAdjacency, ErrDuplicateFaceID, id,
				fmt.Sprintf("inserted at positions %d and %d", prev, i))
		}
		a.faceByID[id] = FaceRef(i)
	}

	return nil
}

// resolveFaceVertices maps each face's vertex ids through vertexByID.
func (a *adjacency) resolveFaceVertices(faces []Face) error {
	a.faceVerts = make([][3]VertexRef, len(faces))
	for fi := range faces {
		f := &faces[fi]
		for k, vid := range f.VertexIDs {
			ref, ok := a.vertexByID[vid]
			if !ok {
				return faceError(StageAdjacency, ErrDanglingVertex, f.ID, "", vid)
			}
			a.faceVerts[fi][k] = ref
		}
		v := f.VertexIDs
		if v[0] == v[1] || v[1] == v[2] || v[2] == v[0] {
			return faceError(StageAdjacency, ErrDegenerateFace, f.ID, "", v[0], v[1], v[2])
		}
	}

	return nil
}

// invertFaceVertices builds vertexFaces from faceVerts.
func (a *adjacency) invertFaceVertices(vertexCount int) {
	a.vertexFaces = make([][]FaceRef, vertexCount)
	for fi, fv := range a.faceVerts {
		for _, v := range fv {
			a.vertexFaces[v] = append(a.vertexFaces[v], FaceRef(fi))
		}
	}
}

// linkFaces compares every pair of faces around each vertex and records the
// pairs sharing an edge. A face ending with more than three neighbours
// cannot belong to a manifold triangle mesh.
func (a *adjacency) linkFaces(faces []Face) error {
	a.faceFaces = make([][]FaceRef, len(faces))
	for _, around := range a.vertexFaces {
		for i, f1 := range around {
			for _, f2 := range around[i+1:] {
				if !sharesEdge(&faces[f1], &faces[f2]) {
					continue
				}
				// Two faces sharing an edge meet at both of its vertices;
				// only record the pair once.
				if slices.Contains(a.faceFaces[f1], f2) {
					continue
				}
				a.faceFaces[f1] = append(a.faceFaces[f1], f2)
				a.faceFaces[f2] = append(a.faceFaces[f2], f1)
			}
		}
	}

	for fi, nbrs := range a.faceFaces {
		if len(nbrs) > maxFaceNeighbours {
			ids := make([]int, 0, len(nbrs))
			for _, n := range nbrs {
				ids = append(ids, faces[n].ID)
			}
			slices.Sort(ids)
			return faceError(StageAdjacency, ErrNonManifold, faces[fi].ID,
				fmt.Sprintf("%d adjacent faces %v", len(nbrs), ids))
		}
		slices.Sort(nbrs)
	}

	return nil
}

// sharesEdge reports whether two triangles have exactly two vertex ids in common.
// Complexity: O(1).
func sharesEdge(f1, f2 *Face) bool {
	count := 0
	for _, vid := range f1.VertexIDs {
		if vid == f2.VertexIDs[0] || vid == f2.VertexIDs[1] || vid == f2.VertexIDs[2] {
			count++
		}
	}

	return count == 2
}
