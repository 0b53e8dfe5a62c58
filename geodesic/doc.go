// Package geodesic computes edge-path shortest distances over a built
// half-edge mesh with Dijkstra's algorithm.
//
// Overview:
//
//   - Paths follow mesh edges; each edge costs its Euclidean length
//     (mgl64 vector difference), or 1 under WithHopWeights.
//   - Neighbours come from the View's one-ring walk, so boundary and
//     multi-fan vertices are handled exactly as core does.
//   - A min-heap with lazy decrease-key expands the next-closest vertex.
//
// Options:
//
//   - WithMaxDistance(d): vertices farther than d stay unreached.
//   - WithTarget(t): stop as soon as t's distance is final.
//   - WithHopWeights(): count edges instead of measuring them.
//   - WithEdgeFilter(fn): skip half-edges for which fn returns false.
//
// Errors (sentinel):
//
//   - ErrNilView          if the view is nil.
//   - ErrVertexNotFound   if the source (or target) is not a vertex of the view.
//   - ErrOptionViolation  if an option received a meaningless value.
//   - ErrNoPath           from Result.PathTo when the destination was not reached.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (heap entries under lazy decrease-key)
//
// Thread safety:
//
//   - ShortestPaths only reads the View, so any number of calls may share one.
package geodesic
