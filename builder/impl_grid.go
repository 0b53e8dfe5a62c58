// SPDX-License-Identifier: MIT
// Package: trimesh/builder
//
// impl_grid.go: implementation of the Grid(rows, cols) constructor.
//
// Canonical model:
//   • (rows+1)×(cols+1) vertices in the z=0 plane; local index r*(cols+1)+c
//     sits at (c, r, 0).
//   • Each cell a=(r,c) b=(r,c+1) c=(r+1,c+1) d=(r+1,c) is split along a-c
//     into (a,b,c) and (a,c,d), both facing +z.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cells are emitted row-major; two faces per cell.
//
// Complexity:
//   • O(rows*cols) vertices and faces.

package builder

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/trimesh/core"
)

// Grid returns a Constructor that inserts an open rows×cols cell grid.
func Grid(rows, cols int) Constructor {
	return func(m *core.Mesh, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return builderErrorf(MethodGrid, ErrTooFewVertices,
				"rows=%d, cols=%d (each must be ≥ %d)", rows, cols, MinGridDim)
		}

		w := cols + 1
		s := shape{
			positions: make([]mgl64.Vec3, 0, (rows+1)*w),
			faces:     make([][3]int, 0, 2*rows*cols),
		}
		for r := 0; r <= rows; r++ {
			for c := 0; c <= cols; c++ {
				s.positions = append(s.positions, mgl64.Vec3{float64(c), float64(r), 0})
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				a := r*w + c
				q := quad(a, a+1, a+w+1, a+w)
				s.faces = append(s.faces, q[0], q[1])
			}
		}

		return emit(MethodGrid, m, cfg, s)
	}
}
