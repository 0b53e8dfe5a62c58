// Package geodesic defines options, sentinel errors and the Result type.
package geodesic

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/trimesh/core"
)

// Sentinel errors returned by ShortestPaths and Result.
var (
	// ErrNilView indicates that a nil *core.View was passed.
	ErrNilView = errors.New("geodesic: view is nil")

	// ErrVertexNotFound indicates a source or target outside the view.
	ErrVertexNotFound = errors.New("geodesic: vertex not found in view")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("geodesic: invalid option supplied")

	// ErrNoPath indicates the destination was not reached.
	ErrNoPath = errors.New("geodesic: no path to vertex")
)

// Options configures ShortestPaths.
type Options struct {
	// MaxDistance caps exploration; +Inf by default.
	MaxDistance float64

	// Target, when not core.NoVertex, stops the search once its distance is final.
	Target core.VertexRef

	// HopWeights makes every edge cost 1.
	HopWeights bool

	// EdgeFilter, when set, skips half-edges for which it returns false.
	EdgeFilter func(e core.EdgeRef) bool

	// first invalid option, surfaced by ShortestPaths
	err error
}

// Option represents a functional option for ShortestPaths.
type Option func(*Options)

// DefaultOptions returns the defaults: no distance cap, no target,
// Euclidean weights, no filter.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
		Target:      core.NoVertex,
	}
}

// WithMaxDistance leaves vertices farther than d unreached.
// Negative or NaN values surface as ErrOptionViolation.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 || math.IsNaN(d) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%v)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithTarget stops the search as soon as t is settled. Vertices not settled
// by then are reported unreached.
func WithTarget(t core.VertexRef) Option {
	return func(o *Options) {
		o.Target = t
	}
}

// WithHopWeights counts edges instead of measuring their length.
func WithHopWeights() Option {
	return func(o *Options) {
		o.HopWeights = true
	}
}

// WithEdgeFilter skips every half-edge for which fn returns false.
// A nil fn is ignored.
func WithEdgeFilter(fn func(e core.EdgeRef) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.EdgeFilter = fn
		}
	}
}

// Result holds distances and a shortest-path tree from Source.
//
// Only settled vertices are reported: Dist[v] is +Inf and Prev[v] is
// core.NoVertex for every vertex the search did not finalize, including those
// left pending by WithTarget. Prev[Source] is core.NoVertex too.
type Result struct {
	Source core.VertexRef
	Dist   []float64
	Prev   []core.VertexRef
}

// Reached reports whether dst's distance is final.
func (r *Result) Reached(dst core.VertexRef) bool {
	return dst >= 0 && int(dst) < len(r.Dist) && !math.IsInf(r.Dist[dst], 1)
}

// PathTo rebuilds the vertex sequence Source → dst.
// Returns ErrNoPath if dst was not reached.
func (r *Result) PathTo(dst core.VertexRef) ([]core.VertexRef, error) {
	if !r.Reached(dst) {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dst)
	}
	path := []core.VertexRef{}
	for cur := dst; cur != core.NoVertex; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
