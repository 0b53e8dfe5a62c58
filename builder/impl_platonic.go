// SPDX-License-Identifier: MIT
// Package: trimesh/builder
//
// impl_platonic.go: implementation of the PlatonicSolid(name) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation, nothing inserted.
//   • Vertices and faces are inserted in dataset order (variants_platonic.go).
//
// Complexity:
//   • O(V+F) for the selected solid (V ≤ 12, F ≤ 20).

package builder

import "github.com/katalvlaran/trimesh/core"

// PlatonicSolid returns a Constructor that inserts the chosen closed solid.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		s, ok := platonicShapes[name]
		if !ok {
			return builderErrorf(MethodPlatonicSolid, ErrOptionViolation, "unknown solid %q", name)
		}

		return emit(MethodPlatonicSolid, m, cfg, s)
	}
}
