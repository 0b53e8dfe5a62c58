package meshio

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates a record with missing or malformed fields.
	ErrSyntax = errors.New("meshio: malformed record")

	// ErrUnknownRecord indicates an unrecognized record kind under WithStrict.
	ErrUnknownRecord = errors.New("meshio: unknown record kind")

	// ErrNilView indicates Write was given a nil view.
	ErrNilView = errors.New("meshio: view is nil")
)

// ParseError locates a rejected line. Line is 1-based.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }
