// Package builder provides deterministic triangle-mesh fixtures composed
// through functional options.
//
// A Constructor inserts vertices and faces into a core.Mesh; BuildMesh runs
// any number of them in order against one fresh mesh. Nothing is stitched
// until the caller invokes (*core.Mesh).Build, so fixtures also serve to
// provoke build failures (two constructors yield two components).
//
// Constructors:
//
//   - PlatonicSolid(name): Tetrahedron, Cube (two triangles per square),
//     Octahedron, Icosahedron. Closed, outward-wound, Euler characteristic 2.
//   - Grid(rows, cols): an open rows×cols cell grid in the z=0 plane, two
//     triangles per cell. Euler characteristic 1.
//   - Wheel(n): a disc of n triangles around a hub vertex. Euler characteristic 1.
//   - Tube(segments, rings): an open cylinder with two boundary loops.
//     Euler characteristic 0.
//
// Options:
//
//   - WithVertexIDBase, WithFaceIDBase: offset the ids handed to the mesh.
//     Ids are base + the mesh's current count, so constructors composed in
//     one BuildMesh call never collide.
//   - WithScale, WithOffset: uniform scale then translation of every position,
//     applied through an mgl64 affine matrix.
//
// Option constructors panic on meaningless values (WithScale(0)); constructors
// themselves return sentinel errors and never panic.
package builder
