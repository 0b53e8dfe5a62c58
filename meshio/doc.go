// Package meshio reads and writes the line-oriented .m mesh format.
//
// Format:
//
//	# comment
//	Vertex 1  0.5 1.0 -2.0 {normal=(0 0 1)}
//	Face   1  1 2 3
//
// Each record is one line: a kind keyword, an integer id and either three
// coordinates (Vertex) or three vertex ids (Face). A trailing {...} attribute
// block is ignored. Blank lines and lines starting with '#' are skipped.
// Other kinds (Edge, Corner, ...) are skipped and reported through
// WithOnUnknown, or rejected under WithStrict.
//
// Read returns the raw records; Load inserts them into a new core.Mesh, which
// the caller then builds. Write serializes a built core.View, listing each
// face in its stitched orientation.
//
// Errors:
//
//   - *ParseError wrapping ErrSyntax or ErrUnknownRecord, carrying the line number.
//   - ErrNilView from Write.
//   - Reader and writer I/O errors are returned wrapped.
package meshio
