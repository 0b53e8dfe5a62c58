// SPDX-License-Identifier: MIT
// Package: trimesh/builder
//
// variants_platonic.go: canonical data for the triangulated Platonic solids.
//
// Design:
//   • Single source of truth for positions and outward-wound faces.
//   • Datasets are immutable package data; PlatonicSolid copies nothing but
//     reads them in index order.
//
// Determinism:
//   • Face order is part of the contract: the first face fixes the winding
//     Build propagates, and BFS order follows face order.

package builder

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PlatonicName enumerates the triangulated Platonic solids.
type PlatonicName int

// String provides a readable identifier for errors and logs.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron PlatonicName = iota // V=4,  F=4
	Cube                            // V=8,  F=12 (two triangles per square)
	Octahedron                      // V=6,  F=8
	Icosahedron                     // V=12, F=20
)

// phi is the golden ratio; the icosahedron's vertices lie on (0, ±1, ±phi)
// and its cyclic permutations.
var phi = (1 + math.Sqrt(5)) / 2

// platonicShapes maps each PlatonicName to its canonical shape.
var platonicShapes = map[PlatonicName]shape{
	// Corner of the unit cube plus the three unit axes.
	Tetrahedron: {
		positions: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		faces:     [][3]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}},
	},

	// Vertex i sits at (±1, ±1, ±1) with bit 0 → x, bit 1 → y, bit 2 → z.
	Cube: {
		positions: cubeCorners(),
		faces: concatQuads(
			quad(0, 2, 3, 1), // -z
			quad(4, 5, 7, 6), // +z
			quad(0, 1, 5, 4), // -y
			quad(2, 6, 7, 3), // +y
			quad(0, 4, 6, 2), // -x
			quad(1, 3, 7, 5), // +x
		),
	},

	// ±x, ±y, ±z; faces 0-3 around +z, 4-7 around -z.
	Octahedron: {
		positions: []mgl64.Vec3{
			{1, 0, 0}, {-1, 0, 0},
			{0, 1, 0}, {0, -1, 0},
			{0, 0, 1}, {0, 0, -1},
		},
		faces: [][3]int{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		},
	},

	// Three orthogonal golden rectangles.
	Icosahedron: {
		positions: []mgl64.Vec3{
			{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
			{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
			{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
		},
		faces: [][3]int{
			// five faces around vertex 0
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
			// adjacent band
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
			// five faces around vertex 3
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
			// adjacent band
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
		},
	},
}

// cubeCorners lists the eight (±1, ±1, ±1) corners in bit order.
func cubeCorners() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 8)
	for i := range out {
		out[i] = mgl64.Vec3{sign(i & 1), sign(i & 2), sign(i & 4)}
	}

	return out
}

func sign(bit int) float64 {
	if bit != 0 {
		return 1
	}
	return -1
}

// concatQuads flattens split quads into one face list, preserving order.
func concatQuads(quads ...[2][3]int) [][3]int {
	out := make([][3]int, 0, 2*len(quads))
	for _, q := range quads {
		out = append(out, q[0], q[1])
	}

	return out
}
