// Package bfs provides breadth-first search over any Graph whose nodes are
// the dense integers [0, Order()), returning unweighted shortest-path
// distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: node → distance (edges) from start, Unvisited if not reached
//   - Parent: node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Arena-indexed structures (mesh faces, vertices) are walked without
//     converting them to a string-keyed graph first.
//   - The trimesh topology constructor stitches faces from OnVisit, so the
//     stitching order is exactly the BFS visit order.
//
// Determinism
//
//	Neighbors are enqueued in the order Graph.Neighbors returns them; a graph
//	returning sorted neighbours yields a fully reproducible visit sequence.
//
// Complexity (V = Order(), E = Σ len(Neighbors))
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, Depth, Parent, visited)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(u, depth int) error { return nil }),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // ErrNeighbors, ctx.Err(), or a wrapped OnVisit error
//	}
//	unreached := res.Unreached()
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if start is outside [0, Order()).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if Neighbors returns an out-of-range index.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
