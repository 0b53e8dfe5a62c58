// SPDX-License-Identifier: MIT
// Package: trimesh/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     constructors themselves never panic.

package builder

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BuilderOption customizes a constructor by mutating builderConfig before
// any insertion happens.
type BuilderOption func(*builderConfig)

// WithVertexIDBase shifts every vertex id by base. Any value is accepted.
func WithVertexIDBase(base int) BuilderOption {
	return func(c *builderConfig) {
		c.vertexIDBase = base
	}
}

// WithFaceIDBase shifts every face id by base. Any value is accepted.
func WithFaceIDBase(base int) BuilderOption {
	return func(c *builderConfig) {
		c.faceIDBase = base
	}
}

// WithScale multiplies every canonical position by s.
// Panics unless s is positive and finite.
func WithScale(s float64) BuilderOption {
	if s <= 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		panic("builder: WithScale(s<=0 or non-finite)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithOffset translates every position by (x, y, z) after scaling.
// Panics on NaN or infinite components.
func WithOffset(x, y, z float64) BuilderOption {
	for _, v := range [3]float64{x, y, z} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			panic("builder: WithOffset(non-finite)")
		}
	}
	return func(c *builderConfig) {
		c.offset = mgl64.Vec3{x, y, z}
	}
}
