package meshio

import "github.com/go-gl/mathgl/mgl64"

// Record kinds.
const (
	KindVertex = "Vertex"
	KindFace   = "Face"
)

// VertexRecord is one parsed Vertex line.
type VertexRecord struct {
	ID       int
	Position mgl64.Vec3
}

// FaceRecord is one parsed Face line; VertexIDs keep the file's order.
type FaceRecord struct {
	ID        int
	VertexIDs [3]int
}

// Document holds the records of one file in file order.
type Document struct {
	Vertices []VertexRecord
	Faces    []FaceRecord
}

// Options configures Read, Load and Write.
type Options struct {
	// Strict rejects unknown record kinds with ErrUnknownRecord.
	Strict bool

	// OnUnknown observes skipped lines when Strict is off.
	OnUnknown func(line int, text string)

	// Normals makes Write append {normal=(x y z)} to every Vertex line.
	Normals bool
}

// Option is a functional option for this package.
type Option func(*Options)

// WithStrict rejects unknown record kinds instead of skipping them.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// WithOnUnknown registers fn for every skipped line with an unknown kind.
func WithOnUnknown(fn func(line int, text string)) Option {
	return func(o *Options) { o.OnUnknown = fn }
}

// WithNormals makes Write emit vertex normals as attribute blocks.
func WithNormals() Option {
	return func(o *Options) { o.Normals = true }
}

func resolve(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
