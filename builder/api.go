// SPDX-License-Identifier: MIT
// Package: trimesh/builder
//
// api.go: public entry points for the builder package.
//
// Design contract:
//   • One orchestrator: BuildMesh(mopts, bopts, cons...) creates the mesh,
//     resolves cfg and runs the constructors in order.
//   • BuildView adds the final (*core.Mesh).Build step for the common case.
//   • Determinism: same options and constructor order ⇒ identical records.

package builder

import (
	"fmt"

	"github.com/katalvlaran/trimesh/core"
)

// Constructor inserts one fixture's vertices and faces into m using the
// resolved builderConfig. Constructors validate parameters before inserting
// anything and return sentinel errors; they never panic.
type Constructor func(m *core.Mesh, cfg builderConfig) error

// BuildMesh creates a core.Mesh with mesh options mopts, resolves the
// builder configuration from bopts and applies all constructors in order.
// The mesh is returned unbuilt.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped as "BuildMesh: %w".
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildMesh(mopts []core.MeshOption, bopts []BuilderOption, cons ...Constructor) (*core.Mesh, error) {
	m := core.NewMesh(mopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMesh: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMesh: %w", err)
		}
	}

	return m, nil
}

// BuildView is BuildMesh followed by (*core.Mesh).Build. Build errors keep
// their core sentinel and *core.BuildError reachable through errors.Is/As.
func BuildView(mopts []core.MeshOption, bopts []BuilderOption, cons ...Constructor) (*core.View, error) {
	m, err := BuildMesh(mopts, bopts, cons...)
	if err != nil {
		return nil, err
	}
	v, err := m.Build()
	if err != nil {
		return nil, fmt.Errorf("BuildView: %w", err)
	}

	return v, nil
}
