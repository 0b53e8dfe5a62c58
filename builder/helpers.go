// SPDX-License-Identifier: MIT
// Package: trimesh/builder
//
// helpers.go: shared emission of canonical shapes into a mesh.

package builder

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/trimesh/core"
)

// shape is a canonical fixture: model-space positions and faces by local
// vertex index, wound counter-clockwise seen from outside.
type shape struct {
	positions []mgl64.Vec3
	faces     [][3]int
}

// emit inserts s into m. Local vertex i receives id
// vertexIDBase + (vertices already in m) + i; faces follow the same scheme.
//
// Complexity: O(len(positions) + len(faces)).
func emit(method string, m *core.Mesh, cfg builderConfig, s shape) error {
	vbase := cfg.vertexIDBase + m.VertexCount()
	fbase := cfg.faceIDBase + m.FaceCount()
	xf := cfg.transform()

	for i, p := range s.positions {
		q := mgl64.TransformCoordinate(p, xf)
		if _, err := m.InsertVertex(q.X(), q.Y(), q.Z(), vbase+i); err != nil {
			return fmt.Errorf("%s: InsertVertex(%d): %w: %w", method, vbase+i, ErrConstructFailed, err)
		}
	}
	for i, f := range s.faces {
		if _, err := m.InsertFace(fbase+i, vbase+f[0], vbase+f[1], vbase+f[2]); err != nil {
			return fmt.Errorf("%s: InsertFace(%d): %w: %w", method, fbase+i, ErrConstructFailed, err)
		}
	}

	return nil
}

// quad splits the counter-clockwise quad a-b-c-d along a-c.
func quad(a, b, c, d int) [2][3]int {
	return [2][3]int{{a, b, c}, {a, c, d}}
}
