// SPDX-License-Identifier: MIT
// Package: trimesh/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • vertexIDBase = 0
//   • faceIDBase   = 0
//   • scale        = 1
//   • offset       = (0, 0, 0)

package builder

import "github.com/go-gl/mathgl/mgl64"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	vertexIDBase int
	faceIDBase   int

	scale  float64
	offset mgl64.Vec3
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultVertexIDBase = 0
	defaultFaceIDBase   = 0
	defaultScale        = 1.0
)

// newBuilderConfig applies all options in order over the defaults
// (later options override earlier ones).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		vertexIDBase: defaultVertexIDBase,
		faceIDBase:   defaultFaceIDBase,
		scale:        defaultScale,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// transform returns the affine matrix mapping canonical fixture coordinates
// to output positions: scale first, then translate.
func (c builderConfig) transform() mgl64.Mat4 {
	return mgl64.Translate3D(c.offset.X(), c.offset.Y(), c.offset.Z()).
		Mul4(mgl64.Scale3D(c.scale, c.scale, c.scale))
}
