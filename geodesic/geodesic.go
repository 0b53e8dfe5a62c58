// Package geodesic implements Dijkstra's algorithm over mesh edges.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improved distances push a new heap entry; stale
//     entries are skipped when popped.
//   - Ties in distance pop the lower VertexRef first, so the predecessor
//     tree is deterministic.
//   - Exploration stops once the smallest queued distance exceeds MaxDistance,
//     or once Target is settled; vertices left unsettled are reported unreached.
package geodesic

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/trimesh/core"
)

// ShortestPaths computes distances from source to every vertex of v reachable
// along mesh edges.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. v must be non-nil (ErrNilView).
//  3. source, and Target if set, must be vertices of v (ErrVertexNotFound).
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPaths(v *core.View, source core.VertexRef, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if v == nil {
		return nil, ErrNilView
	}

	n := v.VertexCount()
	if source < 0 || int(source) >= n {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}
	if cfg.Target != core.NoVertex && (cfg.Target < 0 || int(cfg.Target) >= n) {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, cfg.Target)
	}

	r := &runner{
		view:    v,
		options: cfg,
		res: &Result{
			Source: source,
			Dist:   make([]float64, n),
			Prev:   make([]core.VertexRef, n),
		},
		visited: make([]bool, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}
	r.dropUnsettled()

	return r.res, nil
}

// runner holds the mutable state of one ShortestPaths call.
type runner struct {
	view    *core.View
	options Options
	res     *Result
	visited []bool
	pq      nodePQ
}

// init sets every distance to +Inf and queues the source at 0.
func (r *runner) init() {
	for i := range r.res.Dist {
		r.res.Dist[i] = math.Inf(1)
		r.res.Prev[i] = core.NoVertex
	}
	r.res.Dist[r.res.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{v: r.res.Source, dist: 0})
}

// process settles vertices in increasing distance order.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.v] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.v] = true
		if item.v == r.options.Target {
			break
		}
		if err := r.relax(item.v); err != nil {
			return err
		}
	}

	return nil
}

// relax walks u's out-edges and improves each neighbour's distance.
func (r *runner) relax(u core.VertexRef) error {
	out, err := r.view.VertexOutEdges(u)
	if err != nil {
		return fmt.Errorf("geodesic: ring of %d: %w", u, err)
	}
	from, err := r.view.Vertex(u)
	if err != nil {
		return err
	}

	for _, e := range out {
		if r.options.EdgeFilter != nil && !r.options.EdgeFilter(e) {
			continue
		}
		he, err := r.view.HalfEdge(e)
		if err != nil {
			return err
		}
		w := 1.0
		if !r.options.HopWeights {
			to, err := r.view.Vertex(he.Vertex)
			if err != nil {
				return err
			}
			w = to.Position.Sub(from.Position).Len()
		}

		nd := r.res.Dist[u] + w
		if nd > r.options.MaxDistance || nd >= r.res.Dist[he.Vertex] {
			continue
		}
		r.res.Dist[he.Vertex] = nd
		r.res.Prev[he.Vertex] = u
		heap.Push(&r.pq, &nodeItem{v: he.Vertex, dist: nd})
	}

	return nil
}

// dropUnsettled clears the tentative distance and predecessor of every vertex
// the search relaxed but never settled, which only happens after an early
// stop at Target. Settled vertices only point at settled predecessors.
func (r *runner) dropUnsettled() {
	for i, done := range r.visited {
		if !done {
			r.res.Dist[i] = math.Inf(1)
			r.res.Prev[i] = core.NoVertex
		}
	}
}

// nodeItem is a queued vertex with its tentative distance.
type nodeItem struct {
	v    core.VertexRef
	dist float64
}

// nodePQ is a min-heap of *nodeItem by (dist, v).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].v < pq[j].v
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
