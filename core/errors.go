// File: errors.go
// Role: Structured build failures.
// Policy:
//   - Every failure of Build is a *BuildError wrapping exactly one sentinel from types.go.
//   - Callers branch with errors.Is(err, ErrX) and read offending ids with errors.As.

package core

import (
	"fmt"
	"strings"
)

// Stage names the build phase that produced a BuildError.
type Stage string

// Build stages, in execution order.
const (
	StageOptions   Stage = "options"
	StageAdjacency Stage = "adjacency"
	StageTopology  Stage = "topology"
	StageNormals   Stage = "normals"
)

// maxReportedUnreached caps the face ids listed in an ErrDisconnected message.
const maxReportedUnreached = 8

// BuildError describes why Build rejected the mesh.
type BuildError struct {
	// Err is the sentinel (ErrDanglingVertex, ErrNonManifold, ...).
	Err error

	// Stage is the phase that failed.
	Stage Stage

	// FaceID is the offending face, when one is known.
	FaceID  int
	HasFace bool

	// VertexIDs are the offending vertex ids (dangling id, edge endpoints, ...).
	VertexIDs []int

	// Unreached lists every face id the BFS could not reach (ErrDisconnected only).
	Unreached []int

	// Components is the number of face components (ErrDisconnected only).
	Components int

	// Detail is a short human-readable reason.
	Detail string
}

// Error implements error.
func (e *BuildError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.HasFace {
		fmt.Fprintf(&b, ": face %d", e.FaceID)
	}
	if len(e.VertexIDs) > 0 {
		fmt.Fprintf(&b, ": vertices %v", e.VertexIDs)
	}
	if len(e.Unreached) > 0 {
		shown := e.Unreached
		if len(shown) > maxReportedUnreached {
			shown = shown[:maxReportedUnreached]
		}
		fmt.Fprintf(&b, ": %d components, %d unreached faces %v", e.Components, len(e.Unreached), shown)
		if len(shown) < len(e.Unreached) {
			b.WriteString("...")
		}
	}
	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}
	b.WriteString(" [stage ")
	b.WriteString(string(e.Stage))
	b.WriteString("]")

	return b.String()
}

// Unwrap exposes the sentinel to errors.Is.
func (e *BuildError) Unwrap() error { return e.Err }

// faceError builds a BuildError tied to one face.
func faceError(stage Stage, sentinel error, faceID int, detail string, vertexIDs ...int) *BuildError {
	return &BuildError{
		Err:       sentinel,
		Stage:     stage,
		FaceID:    faceID,
		HasFace:   true,
		VertexIDs: vertexIDs,
		Detail:    detail,
	}
}
