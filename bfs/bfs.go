// Package bfs provides breadth-first search over an index-addressed Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a node with its BFS depth and its parent.
type queueItem struct {
	u      int
	depth  int
	parent int // Unvisited for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for out-of-range
// neighbours, or any user-supplied hook error.
//
// On a hook error or cancellation the partial result is returned along
// with the error.
func BFS(g Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start node
	n := g.Order()
	if start < 0 || start >= n {
		return nil, ErrStartVertexNotFound
	}

	// Prepare walker
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unvisited
		w.res.Parent[i] = Unvisited
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, Unvisited)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks u visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(u int, d int, parent int) {
	w.visited[u] = true
	w.res.Depth[u] = d
	w.res.Parent[u] = parent
	w.opts.OnEnqueue(u, d)
	w.queue = append(w.queue, queueItem{u: u, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.u, item.depth)
	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.u)
	if err := w.opts.OnVisit(item.u, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.u, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor. Returns ErrNeighbors when the graph reports an invalid index.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range w.graph.Neighbors(item.u) {
		if nbr < 0 || nbr >= len(w.visited) {
			return fmt.Errorf("%w: %d reports neighbor %d", ErrNeighbors, item.u, nbr)
		}
		if !w.opts.FilterNeighbor(item.u, nbr) {
			continue
		}
		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.u)
		}
	}
	return nil
}
