// Package trimesh reconstructs half-edge topology from indexed triangle
// meshes and answers neighbourhood queries over the result.
//
// 🚀 What is trimesh?
//
//	A small, pure-Go library that turns "vertices + triangles by id" into a
//	linked half-edge structure:
//		• Core: insert records, Build once, query an immutable View
//		• Stitching: breadth-first over face adjacency, orientation follows the first face
//		• Normals: unit face normals and averaged vertex normals (mathgl)
//		• Validation: typed BuildError with stage, face id and vertex ids
//		• Traversal: index-based BFS with hooks, depth limits and filters
//		• Shortest paths: Dijkstra along mesh edges
//		• I/O: the line-oriented .m record format
//		• Fixtures: platonic solids, grids, wheels and tubes
//
// Under the hood, everything is organized under these subpackages:
//
//	core/     - Mesh, View, half-edge arenas, Build pipeline, ring queries
//	bfs/      - breadth-first search over dense int-indexed graphs
//	geodesic/ - edge-path distances over a built View
//	meshio/   - Read, Load and Write for .m files
//	builder/  - deterministic mesh fixtures with affine placement
//	examples/ - meshinfo, a command-line summary tool
//
// Quick ASCII example:
//
//	    2───3
//	    │ ╲ │      Face 1: 0 1 2      boundary loop: 0→1→3→2→0
//	    0───1      Face 2: 1 3 2      interior edge: 1–2 (two half-edges)
//
// Build pairs every edge into two half-edges, links each face's three into
// a cycle and leaves boundary half-edges faceless.
//
//	go get github.com/katalvlaran/trimesh
package trimesh
