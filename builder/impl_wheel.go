// SPDX-License-Identifier: MIT
// Package: trimesh/builder
//
// impl_wheel.go: implementation of the Wheel(n) constructor.
//
// Canonical model:
//   • Local vertex 0 is the hub at the origin; rim vertex i+1 sits on the unit
//     circle at angle 2πi/n.
//   • Face i is (hub, rim i, rim i+1 mod n), facing +z.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • The hub is interior; every rim edge lies on the boundary.
//
// Complexity:
//   • O(n) vertices and faces.

package builder

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/trimesh/core"
)

// Wheel returns a Constructor that inserts a disc of n triangles around a hub.
func Wheel(n int) Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		if n < MinWheelRim {
			return builderErrorf(MethodWheel, ErrTooFewVertices, "n=%d < min=%d", n, MinWheelRim)
		}

		s := shape{
			positions: make([]mgl64.Vec3, 0, n+1),
			faces:     make([][3]int, 0, n),
		}
		s.positions = append(s.positions, mgl64.Vec3{})
		for i := 0; i < n; i++ {
			theta := 2 * math.Pi * float64(i) / float64(n)
			s.positions = append(s.positions, mgl64.Vec3{math.Cos(theta), math.Sin(theta), 0})
		}
		for i := 0; i < n; i++ {
			s.faces = append(s.faces, [3]int{0, i + 1, (i+1)%n + 1})
		}

		return emit(MethodWheel, m, cfg, s)
	}
}
