// File: build.go
// Role: The Build pipeline: adjacency, topology, normals, then an immutable View.
// Policy:
//   - Adjacency failures happen before any half-edge exists.
//   - Topology or normal failures roll the mesh back to its post-insertion
//     state, so a corrected retry starts from scratch.
//   - A successful Build freezes the Mesh; later calls return the same View.

package core

import "context"

// BuildOption configures one Build call.
type BuildOption func(*buildConfig)

// buildConfig holds per-call Build parameters.
type buildConfig struct {
	ctx  context.Context
	hook func(StitchEvent)
}

// WithContext lets a caller cancel Build on very large inputs. The context
// is checked once per stitched face. A nil context is ignored.
func WithContext(ctx context.Context) BuildOption {
	return func(c *buildConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithStitchHook registers fn to observe every face as it is stitched.
// fn runs synchronously on the Build goroutine.
func WithStitchHook(fn func(StitchEvent)) BuildOption {
	return func(c *buildConfig) {
		c.hook = fn
	}
}

// Build validates the inserted records, stitches the half-edge topology,
// estimates normals and returns the resulting View.
//
// Errors:
//   - *BuildError wrapping ErrOptionViolation, ErrDuplicateVertexID,
//     ErrDuplicateFaceID, ErrDanglingVertex, ErrDegenerateFace,
//     ErrNonManifold, ErrNonOrientable, ErrDisconnected or ErrInvariantViolation.
//   - ctx.Err() when the context passed through WithContext is done.
//
// Complexity: O(V + F·valence) time, O(V + F) extra memory for the scratch.
func (m *Mesh) Build(opts ...BuildOption) (*View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.view != nil {
		return m.view, nil
	}
	if m.optErr != nil {
		return nil, &BuildError{Err: m.optErr, Stage: StageOptions,
			Detail: "epsilon must be positive"}
	}

	cfg := buildConfig{ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := m.buildAdjacency(); err != nil {
		return nil, err
	}

	idMark := m.ids.Last()
	if err := m.buildTopology(cfg); err != nil {
		m.rollback(idMark)
		return nil, err
	}
	if err := m.computeNormals(); err != nil {
		m.rollback(idMark)
		return nil, err
	}

	m.view = newView(m)
	// The scratch is never consulted again.
	m.adj = nil

	return m.view, nil
}

// rollback undoes a partial Build. A private id generator is rewound too, so
// the retry issues the same half-edge ids it would have on a first attempt.
func (m *Mesh) rollback(idMark uint64) {
	m.resetTopology()
	if !m.sharedIDs {
		m.ids.rewind(idMark)
	}
}
