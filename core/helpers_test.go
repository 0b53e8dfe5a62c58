package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trimesh/core"
)

// vert and tri are raw records as a mesh file would list them.
type vert struct {
	id      int
	x, y, z float64
}

type tri struct{ id, a, b, c int }

// Octahedron: vertex ids 10..15 at ±axes, face ids 100..107, outward winding.
// Vertex refs follow insertion order, so ref i has id 10+i.
var (
	octaVerts = []vert{
		{10, 1, 0, 0}, {11, -1, 0, 0},
		{12, 0, 1, 0}, {13, 0, -1, 0},
		{14, 0, 0, 1}, {15, 0, 0, -1},
	}
	octaFaces = []tri{
		{100, 10, 12, 14}, {101, 12, 11, 14}, {102, 11, 13, 14}, {103, 13, 10, 14},
		{104, 12, 10, 15}, {105, 11, 12, 15}, {106, 13, 11, 15}, {107, 10, 13, 15},
	}
)

// Tetrahedron with ids 0..3 and outward winding.
var (
	tetraVerts = []vert{{0, 0, 0, 0}, {1, 1, 0, 0}, {2, 0, 1, 0}, {3, 0, 0, 1}}
	tetraFaces = []tri{{0, 0, 2, 1}, {1, 0, 1, 3}, {2, 0, 3, 2}, {3, 1, 2, 3}}
)

// gridRecords lays out an open (n+1)×(n+1) vertex grid in the z=0 plane,
// two counter-clockwise triangles per cell. Vertex id r*(n+1)+c sits at (c, r).
func gridRecords(n int) ([]vert, []tri) {
	w := n + 1
	vs := make([]vert, 0, w*w)
	for r := 0; r < w; r++ {
		for c := 0; c < w; c++ {
			vs = append(vs, vert{r*w + c, float64(c), float64(r), 0})
		}
	}
	fs := make([]tri, 0, 2*n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			a := r*w + c
			fs = append(fs,
				tri{len(fs), a, a + 1, a + w + 1},
				tri{len(fs) + 1, a, a + w + 1, a + w},
			)
		}
	}

	return vs, fs
}

// Two fans meeting at vertex 0: T0..T4 form a strip that returns to 0
// without sharing an edge with T0.
var (
	fanVerts = []vert{
		{0, 0, 0, 0}, {1, 1, -1, 0}, {2, 1, 1, 0},
		{3, 0, 3, 0}, {4, -1, 1, 0}, {5, 2, 2, 0},
	}
	fanFaces = []tri{{0, 0, 1, 2}, {1, 2, 1, 5}, {2, 2, 5, 3}, {3, 3, 5, 4}, {4, 0, 3, 4}}
)

// Möbius band: six faces in a ring whose closing quad is twisted.
var (
	mobiusVerts = []vert{
		{0, 0, 1, 0}, {1, 1, 1, 0}, {2, 2, 1, 0},
		{3, 0, 0, 0}, {4, 1, 0, 0}, {5, 2, 0, 1},
	}
	mobiusFaces = []tri{
		{0, 0, 3, 4}, {1, 0, 4, 1}, {2, 1, 4, 5},
		{3, 1, 5, 2}, {4, 2, 5, 0}, {5, 2, 0, 3},
	}
)

// disjointTriangles returns n triangles sharing no vertex; face i uses
// vertex ids 3i, 3i+1, 3i+2.
func disjointTriangles(n int) ([]vert, []tri) {
	vs := make([]vert, 0, 3*n)
	fs := make([]tri, 0, n)
	for i := 0; i < n; i++ {
		x := float64(2 * i)
		vs = append(vs, vert{3 * i, x, 0, 0}, vert{3*i + 1, x + 1, 0, 0}, vert{3*i + 2, x, 1, 0})
		fs = append(fs, tri{i, 3 * i, 3*i + 1, 3*i + 2})
	}

	return vs, fs
}

// insertAll feeds the records into m in order.
func insertAll(t testing.TB, m *core.Mesh, vs []vert, fs []tri) {
	t.Helper()
	for _, v := range vs {
		_, err := m.InsertVertex(v.x, v.y, v.z, v.id)
		require.NoError(t, err)
	}
	for _, f := range fs {
		_, err := m.InsertFace(f.id, f.a, f.b, f.c)
		require.NoError(t, err)
	}
}

// newMesh returns an unbuilt mesh holding the records.
func newMesh(t testing.TB, vs []vert, fs []tri, opts ...core.MeshOption) *core.Mesh {
	t.Helper()
	m := core.NewMesh(opts...)
	insertAll(t, m, vs, fs)

	return m
}

// mustBuild builds the records and requires success.
func mustBuild(t testing.TB, vs []vert, fs []tri, opts ...core.MeshOption) *core.View {
	t.Helper()
	v, err := newMesh(t, vs, fs, opts...).Build()
	require.NoError(t, err)
	require.NoError(t, v.CheckInvariants())

	return v
}

// vertexRef resolves an id, failing the test if it is unknown.
func vertexRef(t testing.TB, v *core.View, id int) core.VertexRef {
	t.Helper()
	ref, err := v.VertexByID(id)
	require.NoError(t, err)

	return ref
}

// ids maps vertex refs back to caller ids.
func ids(t testing.TB, v *core.View, refs []core.VertexRef) []int {
	t.Helper()
	out := make([]int, len(refs))
	for i, r := range refs {
		vert, err := v.Vertex(r)
		require.NoError(t, err)
		out[i] = vert.ID
	}

	return out
}
