// SPDX-License-Identifier: MIT
// Package: trimesh/builder
//
// constants.go: method tags and size minima shared by constructors.

package builder

// Method tags prefix constructor errors.
const (
	MethodPlatonicSolid = "PlatonicSolid"
	MethodGrid          = "Grid"
	MethodWheel         = "Wheel"
	MethodTube          = "Tube"
)

// MinGridDim is the smallest row or column count of a Grid.
const MinGridDim = 1

// MinWheelRim is the smallest rim of a Wheel: three triangles around the hub.
const MinWheelRim = 3

// MinTubeSegments is the smallest cross-section of a Tube.
const MinTubeSegments = 3

// MinTubeRings is the smallest number of triangle bands along a Tube.
const MinTubeRings = 1
