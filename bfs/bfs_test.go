package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/trimesh/bfs"
)

// adjList is a plain adjacency-list Graph for tests.
type adjList [][]int

func (a adjList) Order() int            { return len(a) }
func (a adjList) Neighbors(u int) []int { return a[u] }

// undirected builds an adjList with n nodes from an edge list.
func undirected(n int, edges ...[2]int) adjList {
	g := make(adjList, n)
	for _, e := range edges {
		g[e[0]] = append(g[e[0]], e[1])
		g[e[1]] = append(g[e[1]], e[0])
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start out of range
	g := undirected(2, [2]int{0, 1})
	if _, err := bfs.BFS(g, 5); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, -1); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("negative start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	// neighbour outside the node range
	bad := adjList{{1}, {7}}
	if _, err := bfs.BFS(bad, 0); !errors.Is(err, bfs.ErrNeighbors) {
		t.Errorf("bad neighbour: want ErrNeighbors, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-node graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	res, err := bfs.BFS(adjList{nil}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[0]; d != 0 {
		t.Errorf("Depth[0] = %d; want 0", d)
	}
	if p := res.Parent[0]; p != bfs.Unvisited {
		t.Errorf("Parent[0] = %d; want Unvisited", p)
	}
}

// TestCycleAndDepths covers a simple 4-cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// 0–1–2–3–0
	g := undirected(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for u, want := range []int{0, 1, 2, 1} {
		if got := res.Depth[u]; got != want {
			t.Errorf("Depth[%d] = %d; want %d", u, got, want)
		}
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start node.
func TestBFS_Disconnected(t *testing.T) {
	g := undirected(4, [2]int{0, 1}, [2]int{2, 3})

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("From 0: got %v; want [0 1]", res.Order)
	}
	if got := res.Unreached(); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Errorf("Unreached = %v; want [2 3]", got)
	}
	if res.Reached(2) || !res.Reached(1) {
		t.Errorf("Reached mismatch: 1=%v 2=%v", res.Reached(1), res.Reached(2))
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := undirected(3, [2]int{0, 1}, [2]int{1, 2})
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("MaxDepth=1: got %v; want [0 1]", res.Order)
	}
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=0: got %v; want [0 1 2]", res.Order)
	}
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=10: got %v; want [0 1 2]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := undirected(3, [2]int{0, 1}, [2]int{1, 2})
	res, _ := bfs.BFS(g, 0,
		bfs.WithFilterNeighbor(func(curr, nbr int) bool {
			return !(curr == 1 && nbr == 2)
		}),
	)
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_DuplicateNeighbours ensures repeated neighbour entries do not enqueue twice.
func TestBFS_DuplicateNeighbours(t *testing.T) {
	g := adjList{{0, 1, 1}, {0}}
	res, _ := bfs.BFS(g, 0)
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("duplicates: got %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := undirected(3, [2]int{0, 1}, [2]int{1, 2})

	var enq, deq, vis []string
	makeEntry := func(prefix string, u, d int) string {
		return prefix + ":" + strconv.Itoa(u) + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS(
		g, 0,
		bfs.WithOnEnqueue(func(u, d int) { enq = append(enq, makeEntry("e", u, d)) }),
		bfs.WithOnDequeue(func(u, d int) { deq = append(deq, makeEntry("d", u, d)) }),
		bfs.WithOnVisit(func(u, d int) error { vis = append(vis, makeEntry("v", u, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	wantDepths := []string{"0@0", "1@1", "2@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestBFS_OnVisitError checks that a hook error aborts and stays matchable.
func TestBFS_OnVisitError(t *testing.T) {
	g := undirected(3, [2]int{0, 1}, [2]int{1, 2})
	stop := errors.New("stop here")

	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(u, _ int) error {
		if u == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("partial Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_ContextCancel ensures a cancelled context stops the walk.
func TestBFS_ContextCancel(t *testing.T) {
	g := undirected(3, [2]int{0, 1}, [2]int{1, 2})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestBFS_PathTo covers trivial, multi-hop and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := undirected(5, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 3})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}

	if p, err := res.PathTo(0); err != nil || !reflect.DeepEqual(p, []int{0}) {
		t.Errorf("PathTo(0) = %v, %v; want [0]", p, err)
	}
	if p, err := res.PathTo(2); err != nil || !reflect.DeepEqual(p, []int{0, 1, 2}) {
		t.Errorf("PathTo(2) = %v, %v; want [0 1 2]", p, err)
	}
	if _, err := res.PathTo(4); err == nil {
		t.Error("PathTo(4): expected error for unreachable node")
	}
}
