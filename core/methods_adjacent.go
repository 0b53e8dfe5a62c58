// File: methods_adjacent.go
// Role: Neighbourhood queries over a built View.
// Determinism:
//   - Vertex rings start at the vertex's representative half-edge and turn
//     through pair(e).Next; a ring cut by the boundary is completed by sweeping
//     backwards from the start through pair(prev(e)).
//   - A vertex joining several fans (two surface sheets meeting at one point)
//     has each fan walked in turn, the next one starting at the first
//     unvisited entry of its out-edge set.
// Complexity:
//   - Vertex queries O(valence); face queries O(1).

package core

import "fmt"

// VertexOutEdges returns every half-edge leaving vertex, in ring order.
// An isolated vertex has no out-edges.
func (v *View) VertexOutEdges(vertex VertexRef) ([]EdgeRef, error) {
	if !v.hasVertex(vertex) {
		return nil, fmt.Errorf("%w: ref %d", ErrVertexNotFound, vertex)
	}

	return v.ring(vertex)
}

// VertexInEdges returns every half-edge arriving at vertex, paired with
// VertexOutEdges position by position.
func (v *View) VertexInEdges(vertex VertexRef) ([]EdgeRef, error) {
	out, err := v.VertexOutEdges(vertex)
	if err != nil {
		return nil, err
	}
	in := make([]EdgeRef, len(out))
	for i, e := range out {
		in[i] = v.edges[e].Pair
	}

	return in, nil
}

// VertexVertices returns the one-ring neighbours of vertex, in ring order.
func (v *View) VertexVertices(vertex VertexRef) ([]VertexRef, error) {
	out, err := v.VertexOutEdges(vertex)
	if err != nil {
		return nil, err
	}
	nbrs := make([]VertexRef, len(out))
	for i, e := range out {
		nbrs[i] = v.edges[e].Vertex
	}

	return nbrs, nil
}

// VertexFaces returns the faces incident to vertex, in ring order.
// Boundary out-edges contribute nothing.
func (v *View) VertexFaces(vertex VertexRef) ([]FaceRef, error) {
	out, err := v.VertexOutEdges(vertex)
	if err != nil {
		return nil, err
	}
	faces := make([]FaceRef, 0, len(out))
	for _, e := range out {
		if f := v.edges[e].Face; f != NoFace {
			faces = append(faces, f)
		}
	}

	return faces, nil
}

// FaceEdges returns the three half-edges of face, starting at its Edge.
func (v *View) FaceEdges(face FaceRef) ([]EdgeRef, error) {
	if !v.hasFace(face) {
		return nil, fmt.Errorf("%w: ref %d", ErrFaceNotFound, face)
	}
	e0 := v.faces[face].Edge
	e1 := v.edges[e0].Next

	return []EdgeRef{e0, e1, v.edges[e1].Next}, nil
}

// FaceVertices returns the face's corners a, b, c in cycle order, a being
// the origin of its Edge.
func (v *View) FaceVertices(face FaceRef) ([]VertexRef, error) {
	es, err := v.FaceEdges(face)
	if err != nil {
		return nil, err
	}

	return []VertexRef{v.edges[es[2]].Vertex, v.edges[es[0]].Vertex, v.edges[es[1]].Vertex}, nil
}

// FaceFaces returns the faces across each of the face's edges; boundary
// edges are skipped, so the result has 0 to 3 entries.
func (v *View) FaceFaces(face FaceRef) ([]FaceRef, error) {
	es, err := v.FaceEdges(face)
	if err != nil {
		return nil, err
	}
	out := make([]FaceRef, 0, len(es))
	for _, e := range es {
		if f := v.edges[v.edges[e].Pair].Face; f != NoFace {
			out = append(out, f)
		}
	}

	return out, nil
}

// IsBoundaryHalfEdge reports whether e has no incident face.
func (v *View) IsBoundaryHalfEdge(e EdgeRef) (bool, error) {
	if !v.hasEdge(e) {
		return false, fmt.Errorf("%w: ref %d", ErrEdgeNotFound, e)
	}

	return v.edges[e].Face == NoFace, nil
}

// IsBoundaryEdge reports whether either side of e's undirected edge lies on the boundary.
func (v *View) IsBoundaryEdge(e EdgeRef) (bool, error) {
	if !v.hasEdge(e) {
		return false, fmt.Errorf("%w: ref %d", ErrEdgeNotFound, e)
	}

	return v.edges[e].Face == NoFace || v.edges[v.edges[e].Pair].Face == NoFace, nil
}

// ring collects the out-edges of vertex fan by fan.
func (v *View) ring(vertex VertexRef) ([]EdgeRef, error) {
	all := v.vertices[vertex].OutEdges
	if len(all) == 0 {
		return nil, nil
	}

	seen := make(map[EdgeRef]struct{}, len(all))
	out := make([]EdgeRef, 0, len(all))
	start := v.vertices[vertex].Edge
	for len(out) < len(all) {
		if start == NoEdge {
			for _, e := range all {
				if _, ok := seen[e]; !ok {
					start = e
					break
				}
			}
		}
		var err error
		if out, err = v.walkFan(vertex, start, seen, out, len(all)); err != nil {
			return nil, err
		}
		start = NoEdge
	}

	return out, nil
}

// walkFan appends the fan containing start to out. limit bounds the number
// of out-edges the vertex can have; passing it means the links are corrupt.
func (v *View) walkFan(vertex VertexRef, start EdgeRef, seen map[EdgeRef]struct{}, out []EdgeRef, limit int) ([]EdgeRef, error) {
	visit := func(e EdgeRef) error {
		if _, dup := seen[e]; dup || len(out) >= limit {
			return fmt.Errorf("%w: ring of vertex %d revisits half-edge %d",
				ErrInvariantViolation, v.vertices[vertex].ID, e)
		}
		seen[e] = struct{}{}
		out = append(out, e)
		return nil
	}

	// Forward: turn through pair(e).Next until the ring closes or hits the boundary.
	e := start
	for {
		if err := visit(e); err != nil {
			return nil, err
		}
		e = v.edges[v.edges[e].Pair].Next
		if e == start {
			return out, nil
		}
		if e == NoEdge {
			break
		}
	}

	// Backward: the in-edge preceding start, then its pair, until the boundary.
	for in := v.edges[start].Prev; in != NoEdge; {
		o := v.edges[in].Pair
		if err := visit(o); err != nil {
			return nil, err
		}
		in = v.edges[o].Prev
	}

	return out, nil
}
