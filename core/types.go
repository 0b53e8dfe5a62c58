// File: types.go
// Role: Arena reference types, entity structs, sentinel errors, MeshOption
// and the NewMesh constructor.
//
// Errors:
//
//	ErrDuplicateVertexID  - two vertices share a caller-supplied id.
//	ErrDuplicateFaceID    - two faces share a caller-supplied id.
//	ErrDanglingVertex     - a face references a vertex id that was never inserted.
//	ErrDegenerateFace     - a face names the same vertex id more than once.
//	ErrNonManifold        - an edge is claimed by more than two faces, or a face has >3 neighbours.
//	ErrNonOrientable      - shared edges of a face cannot be chained head-to-tail.
//	ErrDisconnected       - the face-adjacency graph has more than one component.
//	ErrMeshBuilt          - insertion attempted after a successful Build.
//	ErrVertexNotFound     - query referenced a vertex that does not exist.
//	ErrEdgeNotFound       - query referenced a half-edge that does not exist.
//	ErrFaceNotFound       - query referenced a face that does not exist.
//	ErrInvariantViolation - the stitched structure broke a half-edge invariant.
//	ErrOptionViolation    - an option was given an invalid value.

package core

import (
	"errors"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Sentinel errors for mesh construction and queries.
var (
	// ErrDuplicateVertexID indicates two inserted vertices carry the same id.
	ErrDuplicateVertexID = errors.New("core: duplicate vertex id")

	// ErrDuplicateFaceID indicates two inserted faces carry the same id.
	ErrDuplicateFaceID = errors.New("core: duplicate face id")

	// ErrDanglingVertex indicates a face references a vertex id absent from the mesh.
	ErrDanglingVertex = errors.New("core: face references unknown vertex")

	// ErrDegenerateFace indicates a face repeats one of its vertex ids.
	ErrDegenerateFace = errors.New("core: face repeats a vertex")

	// ErrNonManifold indicates an edge shared by more than two faces or a face with more than three neighbours.
	ErrNonManifold = errors.New("core: non-manifold topology")

	// ErrNonOrientable indicates the existing edges of a face run against each other.
	ErrNonOrientable = errors.New("core: inconsistent face orientation")

	// ErrDisconnected indicates the faces do not form a single edge-connected component.
	ErrDisconnected = errors.New("core: mesh is not connected")

	// ErrMeshBuilt indicates an insertion after Build succeeded.
	ErrMeshBuilt = errors.New("core: mesh already built")

	// ErrVertexNotFound indicates a query referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates a query referenced a non-existent half-edge.
	ErrEdgeNotFound = errors.New("core: half-edge not found")

	// ErrFaceNotFound indicates a query referenced a non-existent face.
	ErrFaceNotFound = errors.New("core: face not found")

	// ErrInvariantViolation indicates a broken half-edge invariant (an implementation bug, not bad input).
	ErrInvariantViolation = errors.New("core: half-edge invariant violated")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("core: invalid option supplied")
)

// VertexRef is a stable index into a mesh's vertex arena.
type VertexRef int

// EdgeRef is a stable index into a mesh's half-edge arena.
type EdgeRef int

// FaceRef is a stable index into a mesh's face arena.
type FaceRef int

// Null references. A half-edge whose Face is NoFace lies on the boundary.
const (
	NoVertex VertexRef = -1
	NoEdge   EdgeRef   = -1
	NoFace   FaceRef   = -1
)

// DefaultEpsilon is the length under which a normal is treated as degenerate.
const DefaultEpsilon = 1e-5

// Vertex is a mesh vertex.
//
// OutEdges holds every half-edge emanating from the vertex, so that the
// half-edge from this vertex to a given neighbour is found in O(valence).
type Vertex struct {
	// ID is the caller-supplied identifier, unique among vertices.
	ID int

	// Position and Normal in model space. Normal is zero until Build.
	Position mgl64.Vec3
	Normal   mgl64.Vec3

	// Edge is one emanating half-edge (NoEdge for an isolated vertex).
	Edge EdgeRef

	// OutEdges lists all emanating half-edges in insertion order.
	OutEdges []EdgeRef
}

// HalfEdge is one directed side of an undirected mesh edge.
type HalfEdge struct {
	// ID is unique among half-edges sharing an IDGenerator; it differs from Pair's ID.
	ID uint64

	// Vertex is the destination vertex.
	Vertex VertexRef

	// Pair is the oppositely oriented twin.
	Pair EdgeRef

	// Face is the incident face, NoFace on the boundary.
	Face FaceRef

	// Next and Prev walk the incident face; both are NoEdge on the boundary.
	Next EdgeRef
	Prev EdgeRef
}

// Face is a triangle of the mesh.
type Face struct {
	// ID is the caller-supplied identifier, unique among faces.
	ID int

	// VertexIDs are the three vertex ids as supplied to InsertFace.
	VertexIDs [3]int

	// Edge is one bordering half-edge.
	Edge EdgeRef

	// Normal is the unit face normal, or zero for a degenerate triangle.
	Normal mgl64.Vec3
}

// MeshOption configures a Mesh before any insertion.
type MeshOption func(m *Mesh)

// WithIDGenerator shares a half-edge id counter with other meshes.
// A nil generator is ignored.
func WithIDGenerator(gen *IDGenerator) MeshOption {
	return func(m *Mesh) {
		if gen != nil {
			m.ids = gen
			m.sharedIDs = true
		}
	}
}

// WithEpsilon sets the degenerate-normal threshold. Non-positive values
// are recorded and reported as ErrOptionViolation by Build.
func WithEpsilon(eps float64) MeshOption {
	return func(m *Mesh) {
		if eps <= 0 {
			m.optErr = ErrOptionViolation
			return
		}
		m.eps = eps
	}
}

// WithCapacity preallocates the vertex and face arenas.
func WithCapacity(vertices, faces int) MeshOption {
	return func(m *Mesh) {
		if vertices > 0 {
			m.vertices = make([]Vertex, 0, vertices)
		}
		if faces > 0 {
			m.faces = make([]Face, 0, faces)
			// a closed triangle mesh has 3 half-edges per face
			m.edges = make([]HalfEdge, 0, 3*faces)
		}
	}
}

// Mesh is the build-phase container: it owns the vertex, half-edge and face
// arenas and turns inserted records into a View.
//
// mu serializes insertion and Build. A Mesh is not meant to be queried while
// building; read the View returned by Build instead.
type Mesh struct {
	mu sync.Mutex

	// Configuration
	ids       *IDGenerator // half-edge id source
	sharedIDs bool         // ids was injected and must never be rewound
	eps       float64      // degenerate-normal threshold
	optErr    error        // first invalid option, surfaced by Build

	// Storage
	vertices []Vertex
	edges    []HalfEdge
	faces    []Face

	// adj is the scratch adjacency; nil until first needed, dropped after Build.
	adj *adjacency

	// view is set once Build succeeds; insertion is rejected afterwards.
	view *View
}

// NewMesh creates an empty Mesh with a private IDGenerator.
// Complexity: O(1)
func NewMesh(opts ...MeshOption) *Mesh {
	m := &Mesh{
		ids: NewIDGenerator(),
		eps: DefaultEpsilon,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}
