// Package core reconstructs half-edge topology for triangulated surfaces.
//
// Input is an unordered list of vertices and triangles that refer to each
// other by caller-supplied integer ids, the way mesh files store them:
//
//	m := core.NewMesh()
//	m.InsertVertex(0, 0, 0, 1)
//	m.InsertVertex(1, 0, 0, 2)
//	m.InsertVertex(0, 1, 0, 3)
//	m.InsertFace(10, 1, 2, 3)
//	view, err := m.Build()
//
// Build runs three stages:
//
//  1. Adjacency: resolve ids, reject duplicates, dangling references and
//     degenerate triangles, and link faces sharing two vertices.
//  2. Topology: walk the face graph breadth-first from the first inserted
//     face. Each face looks up its three directed edges; depending on how
//     many already exist (0 to 3) it allocates the missing half-edge pairs,
//     reusing existing ones from the side whose face slot is still empty.
//     The first face's winding fixes the orientation of the whole surface.
//  3. Normals: per-face unit normals from the cross product of two edges,
//     per-vertex normals as the normalized sum of incident face normals.
//     Vectors shorter than the epsilon (WithEpsilon) become zero.
//
// Any failure is a *BuildError wrapping one sentinel (errors.Is) and
// carrying the offending ids (errors.As). A failure during topology or
// normals rolls the mesh back, so a corrected retry starts clean.
//
// # Storage
//
// Entities live in three arenas addressed by VertexRef, EdgeRef and FaceRef.
// A boundary half-edge has Face == NoFace and no Next/Prev. Each vertex keeps
// its full out-edge set, which makes LookupHalfEdge O(valence).
//
// # Queries
//
// The *View returned by Build is immutable and safe for concurrent readers.
// It offers one-ring queries (VertexVertices, VertexFaces, VertexOutEdges,
// VertexInEdges), face queries (FaceEdges, FaceVertices, FaceFaces), boundary
// tests, id lookups, counts, the Euler characteristic and CheckInvariants.
//
// # Limits
//
// Only connected, manifold, orientable triangle meshes build. Split
// disconnected input with (*Mesh).FaceComponents first. Nothing can be
// inserted after a successful Build.
package core
