package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/trimesh/core"
)

// Write serializes v as .m records: every vertex in arena order, then every
// face with its vertices in stitched orientation. Coordinates use the
// shortest representation that round-trips.
func Write(w io.Writer, v *core.View, opts ...Option) error {
	if v == nil {
		return ErrNilView
	}
	o := resolve(opts)
	bw := bufio.NewWriter(w)

	for r := 0; r < v.VertexCount(); r++ {
		vx, err := v.Vertex(core.VertexRef(r))
		if err != nil {
			return err
		}
		bw.WriteString(KindVertex)
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(vx.ID))
		bw.WriteByte(' ')
		bw.WriteString(formatVec(vx.Position))
		if o.Normals {
			fmt.Fprintf(bw, " {normal=(%s)}", formatVec(vx.Normal))
		}
		bw.WriteByte('\n')
	}

	for f := 0; f < v.FaceCount(); f++ {
		face, err := v.Face(core.FaceRef(f))
		if err != nil {
			return err
		}
		refs, err := v.FaceVertices(core.FaceRef(f))
		if err != nil {
			return err
		}
		bw.WriteString(KindFace)
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(face.ID))
		for _, ref := range refs {
			vx, err := v.Vertex(ref)
			if err != nil {
				return err
			}
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(vx.ID))
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("meshio: write: %w", err)
	}

	return nil
}

// formatVec renders p as "x y z".
func formatVec(p mgl64.Vec3) string {
	return strconv.FormatFloat(p[0], 'g', -1, 64) + " " +
		strconv.FormatFloat(p[1], 'g', -1, 64) + " " +
		strconv.FormatFloat(p[2], 'g', -1, 64)
}
