package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/trimesh/core"
)

// maxLine bounds a single record, attribute block included.
const maxLine = 1 << 20

// Read parses every record from r.
//
// Errors:
//   - *ParseError wrapping ErrSyntax for a Vertex or Face line without exactly
//     four numeric fields.
//   - *ParseError wrapping ErrUnknownRecord under WithStrict.
//   - The underlying read error, wrapped.
func Read(r io.Reader, opts ...Option) (*Document, error) {
	o := resolve(opts)
	doc := &Document{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if err := doc.parseLine(line, text, o); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("meshio: read after line %d: %w", line, err)
	}

	return doc, nil
}

// parseLine appends the record on one line, if any.
func (d *Document) parseLine(line int, text string, o Options) error {
	body := strings.TrimSpace(text)
	if body == "" || body[0] == '#' {
		return nil
	}
	if i := strings.IndexByte(body, '{'); i >= 0 {
		body = body[:i]
	}

	fields := strings.Fields(body)
	if len(fields) == 0 {
		return nil
	}
	syntax := func(format string, args ...any) error {
		return &ParseError{Line: line, Text: text,
			Err: fmt.Errorf("%w: "+format, append([]any{ErrSyntax}, args...)...)}
	}

	switch fields[0] {
	case KindVertex:
		if len(fields) != 5 {
			return syntax("want id and 3 coordinates, got %d fields", len(fields)-1)
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return syntax("vertex id %q", fields[1])
		}
		var p mgl64.Vec3
		for k := range p {
			if p[k], err = strconv.ParseFloat(fields[2+k], 64); err != nil {
				return syntax("coordinate %q", fields[2+k])
			}
		}
		d.Vertices = append(d.Vertices, VertexRecord{ID: id, Position: p})

	case KindFace:
		if len(fields) != 5 {
			return syntax("want id and 3 vertex ids, got %d fields", len(fields)-1)
		}
		var ints [4]int
		for k := range ints {
			v, err := strconv.Atoi(fields[1+k])
			if err != nil {
				return syntax("integer %q", fields[1+k])
			}
			ints[k] = v
		}
		d.Faces = append(d.Faces, FaceRecord{ID: ints[0], VertexIDs: [3]int{ints[1], ints[2], ints[3]}})

	default:
		if o.Strict {
			return &ParseError{Line: line, Text: text, Err: ErrUnknownRecord}
		}
		if o.OnUnknown != nil {
			o.OnUnknown(line, text)
		}
	}

	return nil
}

// Insert appends every record of d to m, vertices first.
func (d *Document) Insert(m *core.Mesh) error {
	for _, v := range d.Vertices {
		if _, err := m.InsertVertex(v.Position.X(), v.Position.Y(), v.Position.Z(), v.ID); err != nil {
			return err
		}
	}
	for _, f := range d.Faces {
		if _, err := m.InsertFace(f.ID, f.VertexIDs[0], f.VertexIDs[1], f.VertexIDs[2]); err != nil {
			return err
		}
	}

	return nil
}

// Load reads r and inserts its records into a new mesh created with mopts.
// The mesh is returned unbuilt; id and topology errors surface from Build.
func Load(r io.Reader, mopts []core.MeshOption, opts ...Option) (*core.Mesh, error) {
	doc, err := Read(r, opts...)
	if err != nil {
		return nil, err
	}
	m := core.NewMesh(append([]core.MeshOption{
		core.WithCapacity(len(doc.Vertices), len(doc.Faces)),
	}, mopts...)...)
	if err := doc.Insert(m); err != nil {
		return nil, err
	}

	return m, nil
}
