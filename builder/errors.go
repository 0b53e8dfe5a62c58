// SPDX-License-Identifier: MIT
// Package: trimesh/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w (see builderErrorf).
//   • Option constructors panic on meaningless input; constructors never panic.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a size parameter (n, rows, cols, segments)
// below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates the mesh rejected an insertion, or a nil
// constructor was passed to BuildMesh.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an unknown enum value passed to a constructor
// (e.g. an out-of-range PlatonicName).
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf prefixes err with the constructor name and a formatted
// detail, keeping err reachable through errors.Is.
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
