// File: topology.go
// Role: Breadth-first stitching of faces into a half-edge structure.
// Determinism:
//   - BFS starts at the first inserted face and enqueues neighbours in
//     ascending FaceRef order, so half-edge ids and arena order are reproducible.
//   - The first face's vertex order fixes the orientation of the whole surface.
// Policy:
//   - Existing half-edges are always reused from the side whose face slot is empty.
//   - Rotation ambiguities are resolved by matching endpoints, never by ids.

package core

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/trimesh/bfs"
)

// StitchEvent reports one face stitched by Build. See WithStitchHook.
type StitchEvent struct {
	// FaceID is the caller-supplied id of the stitched face.
	FaceID int

	// Depth is the face's BFS distance from the first face.
	Depth int

	// Existing counts the face's edges already created by neighbours (0..3).
	Existing int

	// Created counts half-edges allocated for this face (always even).
	Created int
}

// faceGraph adapts the face adjacency to bfs.Graph.
type faceGraph struct{ adj *adjacency }

func (g faceGraph) Order() int { return len(g.adj.faceFaces) }

func (g faceGraph) Neighbors(u int) []int {
	nbrs := g.adj.faceFaces[u]
	out := make([]int, len(nbrs))
	for i, f := range nbrs {
		out[i] = int(f)
	}

	return out
}

// buildTopology visits every face once, breadth-first over the face
// adjacency, and stitches its three half-edge pairs into the mesh.
//
// Errors:
//   - ErrNonManifold, ErrNonOrientable from stitching (*BuildError).
//   - ErrDisconnected when faces remain unvisited (*BuildError).
//   - ctx.Err() on cancellation.
//
// Complexity: O(F · valence).
func (m *Mesh) buildTopology(cfg buildConfig) error {
	if len(m.faces) == 0 {
		return nil
	}
	if err := m.buildAdjacency(); err != nil {
		return err
	}

	res, err := bfs.BFS(faceGraph{adj: m.adj}, 0,
		bfs.WithContext(cfg.ctx),
		bfs.WithOnVisit(func(u, depth int) error {
			return m.stitchFace(FaceRef(u), depth, cfg.hook)
		}),
	)
	if err != nil {
		// Unwrap the bfs hook wrapper so callers see the *BuildError directly.
		var be *BuildError
		if errors.As(err, &be) {
			return be
		}
		return err
	}

	if unreached := res.Unreached(); len(unreached) > 0 {
		ids := make([]int, len(unreached))
		for i, u := range unreached {
			ids[i] = m.faces[u].ID
		}
		slices.Sort(ids)
		return &BuildError{
			Err:        ErrDisconnected,
			Stage:      StageTopology,
			Unreached:  ids,
			Components: len(m.adj.components()),
		}
	}

	return nil
}

// Bits of the existing-edge mask computed by stitchFace.
const (
	hasE0 = 1 << iota // v0→v1 exists
	hasE1             // v1→v2 exists
	hasE2             // v2→v0 exists
)

// stitchFace instantiates the half-edges bordering f, reusing those already
// created by previously stitched neighbours.
func (m *Mesh) stitchFace(f FaceRef, depth int, hook func(StitchEvent)) error {
	if m.faces[f].Edge != NoEdge {
		// Already stitched; BFS visits each face once, so this is only a guard.
		return nil
	}

	fv := m.adj.faceVerts[f]
	v0, v1, v2 := fv[0], fv[1], fv[2]
	e0 := m.lookupHalfEdge(v0, v1)
	e1 := m.lookupHalfEdge(v1, v2)
	e2 := m.lookupHalfEdge(v2, v0)

	mask := 0
	if e0 != NoEdge {
		mask |= hasE0
	}
	if e1 != NoEdge {
		mask |= hasE1
	}
	if e2 != NoEdge {
		mask |= hasE2
	}

	before := len(m.edges)
	var err error
	switch mask {
	case 0:
		m.insertTriangle(f, v0, v1, v2)
	case hasE0:
		err = m.insertAcrossEdge(f, e0, v2)
	case hasE1:
		err = m.insertAcrossEdge(f, e1, v0)
	case hasE2:
		err = m.insertAcrossEdge(f, e2, v1)
	case hasE0 | hasE1:
		err = m.insertAcrossTwoEdges(f, e0, e1)
	case hasE1 | hasE2:
		err = m.insertAcrossTwoEdges(f, e1, e2)
	case hasE0 | hasE2:
		err = m.insertAcrossTwoEdges(f, e0, e2)
	default:
		err = m.closeTriangle(f, e0, e1, e2)
	}
	if err != nil {
		return err
	}

	if hook != nil {
		hook(StitchEvent{
			FaceID:   m.faces[f].ID,
			Depth:    depth,
			Existing: popcount3(mask),
			Created:  len(m.edges) - before,
		})
	}

	return nil
}

// insertTriangle handles a face with no existing edges: three new pairs,
// v0→v1→v2→v0, six out-edge insertions.
func (m *Mesh) insertTriangle(f FaceRef, v0, v1, v2 VertexRef) {
	e0, _ := m.insertEdgePair(v0, v1)
	e1, _ := m.insertEdgePair(v1, v2)
	e2, _ := m.insertEdgePair(v2, v0)
	m.linkFace(f, e0, e1, e2)
}

// insertAcrossEdge handles a face sharing one edge with the stitched region.
// The free side of shared gives a→b; the face is closed with b→apex→a.
func (m *Mesh) insertAcrossEdge(f FaceRef, shared EdgeRef, apex VertexRef) error {
	e0, err := m.freeSide(f, shared)
	if err != nil {
		return err
	}
	a, b := m.origin(e0), m.edges[e0].Vertex

	e1, _ := m.insertEdgePair(b, apex)
	e2, _ := m.insertEdgePair(apex, a)
	m.linkFace(f, e0, e1, e2)

	return nil
}

// insertAcrossTwoEdges handles a face sharing two edges. After taking the
// free sides, the edges are ordered so that e0 ends where e1 starts; the
// single missing pair closes the triangle.
func (m *Mesh) insertAcrossTwoEdges(f FaceRef, ea, eb EdgeRef) error {
	e0, err := m.freeSide(f, ea)
	if err != nil {
		return err
	}
	e1, err := m.freeSide(f, eb)
	if err != nil {
		return err
	}

	if m.edges[e0].Vertex != m.origin(e1) {
		if m.edges[e1].Vertex != m.origin(e0) {
			return m.orientationError(f)
		}
		e0, e1 = e1, e0
	}

	v0, v2 := m.origin(e0), m.edges[e1].Vertex
	e2, _ := m.insertEdgePair(v2, v0)
	m.linkFace(f, e0, e1, e2)

	return nil
}

// closeTriangle handles a face whose three edges all exist. The free sides
// must chain head-to-tail in one of the two rotations.
func (m *Mesh) closeTriangle(f FaceRef, ea, eb, ec EdgeRef) error {
	var cycle [3]EdgeRef
	for i, e := range [3]EdgeRef{ea, eb, ec} {
		free, err := m.freeSide(f, e)
		if err != nil {
			return err
		}
		cycle[i] = free
	}
	e0, e1, e2 := cycle[0], cycle[1], cycle[2]

	if m.edges[e0].Vertex != m.origin(e1) {
		e1, e2 = e2, e1
	}
	if m.edges[e0].Vertex != m.origin(e1) ||
		m.edges[e1].Vertex != m.origin(e2) ||
		m.edges[e2].Vertex != m.origin(e0) {
		return m.orientationError(f)
	}
	m.linkFace(f, e0, e1, e2)

	return nil
}

// freeSide returns whichever of e and its pair has no face yet. Both sides
// taken means a third face claims the edge; neither side taken cannot come
// from stitching and is reported the same way.
func (m *Mesh) freeSide(f FaceRef, e EdgeRef) (EdgeRef, error) {
	p := m.edges[e].Pair
	eFace, pFace := m.edges[e].Face, m.edges[p].Face

	switch {
	case eFace == NoFace && pFace != NoFace:
		return e, nil
	case pFace == NoFace && eFace != NoFace:
		return p, nil
	}

	detail := "edge has no face on either side"
	if eFace != NoFace {
		detail = fmt.Sprintf("edge already borders faces %d and %d", m.faces[eFace].ID, m.faces[pFace].ID)
	}
	from, to := m.vertices[m.origin(e)].ID, m.vertices[m.edges[e].Vertex].ID

	return NoEdge, faceError(StageTopology, ErrNonManifold, m.faces[f].ID, detail, from, to)
}

// orientationError reports a face whose existing edges cannot be chained.
func (m *Mesh) orientationError(f FaceRef) *BuildError {
	v := m.faces[f].VertexIDs
	return faceError(StageTopology, ErrNonOrientable, m.faces[f].ID,
		"shared edges point against each other", v[0], v[1], v[2])
}

// linkFace wires e0→e1→e2→e0 around f and makes each edge the
// representative out-edge of its origin.
func (m *Mesh) linkFace(f FaceRef, e0, e1, e2 EdgeRef) {
	cycle := [3]EdgeRef{e0, e1, e2}
	for i, e := range cycle {
		m.edges[e].Next = cycle[(i+1)%3]
		m.edges[e].Prev = cycle[(i+2)%3]
		m.edges[e].Face = f
		m.vertices[m.origin(e)].Edge = e
	}
	m.faces[f].Edge = e0
}

// popcount3 counts the set bits of a 3-bit mask.
func popcount3(mask int) int {
	return mask&1 + mask>>1&1 + mask>>2&1
}
