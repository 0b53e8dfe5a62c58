// SPDX-License-Identifier: MIT
// Package: trimesh/builder
//
// impl_tube.go: implementation of the Tube(segments, rings) constructor.
//
// Canonical model:
//   • rings+1 unit circles of `segments` vertices stacked at z = 0..rings;
//     local index k*segments+s sits at angle 2πs/segments on circle k.
//   • Each band quad is split into two outward-facing triangles.
//
// Contract:
//   • segments ≥ 3 and rings ≥ 1 (else ErrTooFewVertices).
//   • The result is an open cylinder: two boundary loops of `segments` edges.
//
// Complexity:
//   • O(segments*rings) vertices and faces.

package builder

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/trimesh/core"
)

// Tube returns a Constructor that inserts an open cylinder along +z.
func Tube(segments, rings int) Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		if segments < MinTubeSegments || rings < MinTubeRings {
			return builderErrorf(MethodTube, ErrTooFewVertices,
				"segments=%d (min %d), rings=%d (min %d)", segments, MinTubeSegments, rings, MinTubeRings)
		}

		s := shape{
			positions: make([]mgl64.Vec3, 0, segments*(rings+1)),
			faces:     make([][3]int, 0, 2*segments*rings),
		}
		for k := 0; k <= rings; k++ {
			for i := 0; i < segments; i++ {
				theta := 2 * math.Pi * float64(i) / float64(segments)
				s.positions = append(s.positions, mgl64.Vec3{math.Cos(theta), math.Sin(theta), float64(k)})
			}
		}
		for k := 0; k < rings; k++ {
			for i := 0; i < segments; i++ {
				a := k*segments + i
				b := k*segments + (i+1)%segments
				q := quad(a, b, b+segments, a+segments)
				s.faces = append(s.faces, q[0], q[1])
			}
		}

		return emit(MethodTube, m, cfg, s)
	}
}
