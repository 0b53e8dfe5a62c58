// File: invariants.go
// Role: Full structural audit of a View.
// Policy:
//   - Read-only; reports the first violation found, wrapped in ErrInvariantViolation.
//   - A View returned by Build always passes; the check exists for tests and
//     for callers that want proof after loading untrusted input.

package core

import "fmt"

// CheckInvariants verifies every half-edge invariant:
//   - pair(pair(e)) == e and e.ID != pair(e).ID;
//   - never both sides of an edge lack a face;
//   - Next and Prev are NoEdge exactly on boundary half-edges;
//   - each face is a closed 3-cycle in both directions;
//   - every out-edge of v leaves v, every half-edge belongs to exactly one
//     out-edge set, and the ring walk reaches all of them.
//
// Complexity: O(V + E).
func (v *View) CheckInvariants() error {
	for i := range v.edges {
		if err := v.checkHalfEdge(EdgeRef(i)); err != nil {
			return err
		}
	}
	for i := range v.faces {
		if err := v.checkFace(FaceRef(i)); err != nil {
			return err
		}
	}

	owned := 0
	for i := range v.vertices {
		n, err := v.checkVertex(VertexRef(i))
		if err != nil {
			return err
		}
		owned += n
	}
	if owned != len(v.edges) {
		return violation("out-edge sets hold %d half-edges, arena holds %d", owned, len(v.edges))
	}

	return nil
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvariantViolation}, args...)...)
}

func (v *View) checkHalfEdge(e EdgeRef) error {
	he := v.edges[e]
	if !v.hasEdge(he.Pair) || v.edges[he.Pair].Pair != e {
		return violation("half-edge %d: pair is not symmetric", e)
	}
	if he.ID == v.edges[he.Pair].ID {
		return violation("half-edge %d: shares id %d with its pair", e, he.ID)
	}
	if !v.hasVertex(he.Vertex) {
		return violation("half-edge %d: destination %d out of range", e, he.Vertex)
	}
	if he.Face == NoFace && v.edges[he.Pair].Face == NoFace {
		return violation("half-edge %d: neither side has a face", e)
	}
	if he.Face == NoFace {
		if he.Next != NoEdge || he.Prev != NoEdge {
			return violation("half-edge %d: boundary half-edge is linked", e)
		}
		return nil
	}
	if !v.hasFace(he.Face) || !v.hasEdge(he.Next) || !v.hasEdge(he.Prev) {
		return violation("half-edge %d: face, next or prev out of range", e)
	}

	return nil
}

func (v *View) checkFace(f FaceRef) error {
	e0 := v.faces[f].Edge
	if !v.hasEdge(e0) {
		return violation("face %d: no bordering half-edge", v.faces[f].ID)
	}
	e := e0
	for range 3 {
		he := v.edges[e]
		if he.Face != f {
			return violation("face %d: half-edge %d borders face %d", v.faces[f].ID, e, he.Face)
		}
		if v.edges[he.Next].Prev != e {
			return violation("face %d: next/prev mismatch at half-edge %d", v.faces[f].ID, e)
		}
		// The head of e must be the tail of next(e).
		if he.Vertex != v.edges[v.edges[he.Next].Pair].Vertex {
			return violation("face %d: half-edge %d does not chain into %d", v.faces[f].ID, e, he.Next)
		}
		e = he.Next
	}
	if e != e0 {
		return violation("face %d: cycle does not close after 3 steps", v.faces[f].ID)
	}

	return nil
}

// checkVertex returns the size of the vertex's out-edge set.
func (v *View) checkVertex(r VertexRef) (int, error) {
	vert := v.vertices[r]
	if len(vert.OutEdges) == 0 {
		if vert.Edge != NoEdge {
			return 0, violation("vertex %d: representative edge without out-edges", vert.ID)
		}
		return 0, nil
	}

	rep := false
	boundaryOut, boundaryIn := 0, 0
	for _, o := range vert.OutEdges {
		if !v.hasEdge(o) || v.edges[v.edges[o].Pair].Vertex != r {
			return 0, violation("vertex %d: out-edge %d does not leave it", vert.ID, o)
		}
		rep = rep || o == vert.Edge
		if v.edges[o].Face == NoFace {
			boundaryOut++
		}
		if v.edges[v.edges[o].Pair].Face == NoFace {
			boundaryIn++
		}
	}
	if !rep {
		return 0, violation("vertex %d: representative edge %d not among its out-edges", vert.ID, vert.Edge)
	}
	// Every boundary fan enters and leaves the vertex once.
	if boundaryOut != boundaryIn {
		return 0, violation("vertex %d: %d boundary out-edges but %d boundary in-edges", vert.ID, boundaryOut, boundaryIn)
	}
	if _, err := v.ring(r); err != nil {
		return 0, err
	}

	return len(vert.OutEdges), nil
}
