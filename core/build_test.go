package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/trimesh/core"
)

type BuildSuite struct {
	suite.Suite
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

func (s *BuildSuite) TestOctahedron() {
	require := require.New(s.T())
	v := mustBuild(s.T(), octaVerts, octaFaces)

	require.Equal(6, v.VertexCount())
	require.Equal(8, v.FaceCount())
	require.Equal(24, v.HalfEdgeCount())
	require.Equal(12, v.EdgeCount())
	require.Equal(2, v.EulerCharacteristic())
	require.Empty(v.BoundaryHalfEdges())

	for i := 0; i < v.VertexCount(); i++ {
		out, err := v.VertexOutEdges(core.VertexRef(i))
		require.NoError(err)
		require.Len(out, 4, "vertex ref %d", i)
		faces, err := v.VertexFaces(core.VertexRef(i))
		require.NoError(err)
		require.Len(faces, 4)
	}
}

func (s *BuildSuite) TestPairSymmetryAndCycles() {
	require := require.New(s.T())
	v := mustBuild(s.T(), octaVerts, octaFaces)

	for i := 0; i < v.HalfEdgeCount(); i++ {
		e, err := v.HalfEdge(core.EdgeRef(i))
		require.NoError(err)
		p, err := v.HalfEdge(e.Pair)
		require.NoError(err)
		require.Equal(core.EdgeRef(i), p.Pair)
		require.NotEqual(e.ID, p.ID)

		// next∘next∘next is the identity on a face, and prev undoes next.
		n1, _ := v.HalfEdge(e.Next)
		n2, _ := v.HalfEdge(n1.Next)
		require.Equal(core.EdgeRef(i), n2.Next)
		require.Equal(core.EdgeRef(i), n1.Prev)
	}
}

func (s *BuildSuite) TestOpenGridBoundary() {
	require := require.New(s.T())
	vs, fs := gridRecords(2)
	v := mustBuild(s.T(), vs, fs)

	require.Equal(9, v.VertexCount())
	require.Equal(16, v.EdgeCount())
	require.Equal(1, v.EulerCharacteristic())

	boundary := v.BoundaryHalfEdges()
	require.Len(boundary, 8)
	for _, b := range boundary {
		he, _ := v.HalfEdge(b)
		require.Equal(core.NoEdge, he.Next)
		require.Equal(core.NoEdge, he.Prev)
		pair, _ := v.HalfEdge(he.Pair)
		require.NotEqual(core.NoFace, pair.Face, "boundary half-edge %d has a boundary pair", b)
	}

	st := v.Stats()
	require.False(st.Closed())
	require.Equal(6, st.MaxValence)
	require.Equal(8, st.BoundaryHalfEdges)
}

func (s *BuildSuite) TestSingleTriangle() {
	require := require.New(s.T())
	v := mustBuild(s.T(), tetraVerts[:3], []tri{{7, 0, 1, 2}})

	require.Equal(6, v.HalfEdgeCount())
	require.Len(v.BoundaryHalfEdges(), 3)
	require.Equal(1, v.EulerCharacteristic())
}

func (s *BuildSuite) TestEmptyMesh() {
	require := require.New(s.T())
	v, err := core.NewMesh().Build()
	require.NoError(err)
	require.Zero(v.VertexCount())
	require.Zero(v.HalfEdgeCount())
	require.NoError(v.CheckInvariants())
}

func (s *BuildSuite) TestIsolatedVertex() {
	require := require.New(s.T())
	vs := append([]vert{}, tetraVerts...)
	v := mustBuild(s.T(), vs, []tri{{0, 0, 1, 2}})

	ref := vertexRef(s.T(), v, 3)
	out, err := v.VertexOutEdges(ref)
	require.NoError(err)
	require.Empty(out)

	vert, _ := v.Vertex(ref)
	require.Equal(core.NoEdge, vert.Edge)
	require.Zero(vert.Normal.Len())
	require.Equal(1, v.Stats().IsolatedVertices)
}

func (s *BuildSuite) TestBuildIsIdempotent() {
	require := require.New(s.T())
	m := newMesh(s.T(), tetraVerts, tetraFaces)

	v1, err := m.Build()
	require.NoError(err)
	v2, err := m.Build()
	require.NoError(err)
	require.Same(v1, v2)
	require.True(m.Built())

	_, err = m.InsertVertex(0, 0, 0, 42)
	require.ErrorIs(err, core.ErrMeshBuilt)
	_, err = m.InsertFace(42, 0, 1, 2)
	require.ErrorIs(err, core.ErrMeshBuilt)
}

func (s *BuildSuite) TestMalformedInput() {
	cases := []struct {
		name     string
		verts    []vert
		faces    []tri
		sentinel error
		faceID   int
		vertices []int
	}{
		{
			name:     "dangling vertex",
			verts:    tetraVerts,
			faces:    []tri{{0, 0, 1, 2}, {5, 1, 0, 9}},
			sentinel: core.ErrDanglingVertex,
			faceID:   5,
			vertices: []int{9},
		},
		{
			name:     "duplicate face id",
			verts:    tetraVerts,
			faces:    []tri{{1, 0, 1, 2}, {1, 1, 0, 3}},
			sentinel: core.ErrDuplicateFaceID,
			faceID:   1,
		},
		{
			name:     "degenerate face",
			verts:    tetraVerts,
			faces:    []tri{{3, 0, 1, 1}},
			sentinel: core.ErrDegenerateFace,
			faceID:   3,
			vertices: []int{0, 1, 1},
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			require := require.New(s.T())
			m := newMesh(s.T(), tc.verts, tc.faces)
			_, err := m.Build()
			require.ErrorIs(err, tc.sentinel)

			var be *core.BuildError
			require.True(errors.As(err, &be))
			require.Equal(core.StageAdjacency, be.Stage)
			require.True(be.HasFace)
			require.Equal(tc.faceID, be.FaceID)
			if tc.vertices != nil {
				require.Equal(tc.vertices, be.VertexIDs)
			}
			require.Zero(m.HalfEdgeCount())
			require.False(m.Built())
		})
	}
}

func (s *BuildSuite) TestDuplicateVertexID() {
	require := require.New(s.T())
	vs := append([]vert{}, tetraVerts...)
	vs = append(vs, vert{2, 5, 5, 5})
	_, err := newMesh(s.T(), vs, tetraFaces).Build()
	require.ErrorIs(err, core.ErrDuplicateVertexID)

	var be *core.BuildError
	require.ErrorAs(err, &be)
	require.Equal([]int{2}, be.VertexIDs)
	require.False(be.HasFace)
}

func (s *BuildSuite) TestDanglingThenRepaired() {
	require := require.New(s.T())
	m := newMesh(s.T(), tetraVerts[:3], []tri{{0, 0, 1, 2}, {1, 1, 0, 9}})

	_, err := m.Build()
	require.ErrorIs(err, core.ErrDanglingVertex)
	require.Zero(m.HalfEdgeCount())

	_, err = m.InsertVertex(0, -1, 0, 9)
	require.NoError(err)
	v, err := m.Build()
	require.NoError(err)
	require.Equal(10, v.HalfEdgeCount())
	require.NoError(v.CheckInvariants())
}

func (s *BuildSuite) TestDisconnected() {
	require := require.New(s.T())
	vs := []vert{{0, 0, 0, 0}, {1, 1, 0, 0}, {2, 0, 1, 0}, {3, 5, 0, 0}, {4, 6, 0, 0}, {5, 5, 1, 0}}
	m := newMesh(s.T(), vs, []tri{{20, 0, 1, 2}, {21, 3, 4, 5}})

	_, err := m.Build()
	require.ErrorIs(err, core.ErrDisconnected)
	var be *core.BuildError
	require.ErrorAs(err, &be)
	require.Equal(core.StageTopology, be.Stage)
	require.Equal([]int{21}, be.Unreached)
	require.Equal(2, be.Components)

	// Rolled back: the first triangle's half-edges are gone.
	require.Zero(m.HalfEdgeCount())

	comps, err := m.FaceComponents()
	require.NoError(err)
	require.Equal([][]int{{20}, {21}}, comps)
}

func (s *BuildSuite) TestManyDisjointTriangles() {
	require := require.New(s.T())
	const n = 5000
	vs, fs := disjointTriangles(n)
	m := newMesh(s.T(), vs, fs)

	_, err := m.Build()
	require.ErrorIs(err, core.ErrDisconnected)
	var be *core.BuildError
	require.ErrorAs(err, &be)
	require.Equal(n, be.Components)
	require.Len(be.Unreached, n-1)
	require.Equal(1, be.Unreached[0])

	comps, err := m.FaceComponents()
	require.NoError(err)
	require.Len(comps, n)
	for i, comp := range comps {
		require.Equal([]int{i}, comp)
	}
}

func (s *BuildSuite) TestRetryAfterRollbackIsDeterministic() {
	require := require.New(s.T())
	vs := []vert{{0, 0, 0, 0}, {1, 1, 0, 0}, {2, 0, 1, 0}, {3, 2, 0, 0}, {4, 1, 1, 0}}
	// 0 and 1 only touch at vertex 1.
	m := newMesh(s.T(), vs, []tri{{0, 0, 1, 2}, {1, 1, 3, 4}})
	_, err := m.Build()
	require.ErrorIs(err, core.ErrDisconnected)

	// Bridge them through the edges 1-2 and 1-4.
	_, err = m.InsertFace(2, 2, 1, 4)
	require.NoError(err)
	v, err := m.Build()
	require.NoError(err)
	require.NoError(v.CheckInvariants())

	fresh := mustBuild(s.T(), vs, []tri{{0, 0, 1, 2}, {1, 1, 3, 4}, {2, 2, 1, 4}})
	require.Equal(fresh.HalfEdgeCount(), v.HalfEdgeCount())
	for i := 0; i < v.HalfEdgeCount(); i++ {
		a, _ := v.HalfEdge(core.EdgeRef(i))
		b, _ := fresh.HalfEdge(core.EdgeRef(i))
		require.Equal(b, a)
	}
	first, _ := v.HalfEdge(0)
	require.Equal(uint64(1), first.ID)
}

func (s *BuildSuite) TestInvalidEpsilon() {
	require := require.New(s.T())
	m := newMesh(s.T(), tetraVerts, tetraFaces, core.WithEpsilon(0))
	_, err := m.Build()
	require.ErrorIs(err, core.ErrOptionViolation)

	var be *core.BuildError
	require.ErrorAs(err, &be)
	require.Equal(core.StageOptions, be.Stage)
}

func (s *BuildSuite) TestCancelledContext() {
	require := require.New(s.T())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := newMesh(s.T(), octaVerts, octaFaces)
	_, err := m.Build(core.WithContext(ctx))
	require.ErrorIs(err, context.Canceled)
	require.Zero(m.HalfEdgeCount())
	require.False(m.Built())

	_, err = m.Build()
	require.NoError(err)
}

func (s *BuildSuite) TestCapacityOption() {
	v := mustBuild(s.T(), octaVerts, octaFaces, core.WithCapacity(6, 8))
	s.Require().Equal(24, v.HalfEdgeCount())
}
