// File: ids.go
// Role: Half-edge identifier generation.
// Concurrency:
//   - IDGenerator is safe for use by many meshes built on different goroutines.

package core

import "sync/atomic"

// IDGenerator issues monotonically increasing half-edge ids.
//
// Every Mesh owns one unless WithIDGenerator injects a shared instance; a
// shared generator keeps ids unique across meshes built concurrently.
// The zero value is ready to use; the first id issued is 1.
type IDGenerator struct {
	last atomic.Uint64
}

// NewIDGenerator returns a generator whose first id is 1.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// NewIDGeneratorFrom returns a generator whose first id is start+1.
// Useful to continue a sequence persisted elsewhere.
func NewIDGeneratorFrom(start uint64) *IDGenerator {
	g := &IDGenerator{}
	g.last.Store(start)

	return g
}

// Next returns a fresh id. Complexity: O(1).
func (g *IDGenerator) Next() uint64 {
	return g.last.Add(1)
}

// Last returns the most recently issued id, or the start value if none was issued.
func (g *IDGenerator) Last() uint64 {
	return g.last.Load()
}

// rewind resets the counter so the next id is last+1. Only valid for a
// generator no other mesh can see.
func (g *IDGenerator) rewind(last uint64) {
	g.last.Store(last)
}
