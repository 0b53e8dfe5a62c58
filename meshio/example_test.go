package meshio_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/trimesh/meshio"
)

// ExampleLoad reads a two-triangle square, builds it and writes it back.
func ExampleLoad() {
	src := `# unit square
Vertex 1 0 0 0
Vertex 2 1 0 0
Vertex 3 1 1 0
Vertex 4 0 1 0
Face 1 1 2 3
Face 2 1 3 4
`
	m, err := meshio.Load(strings.NewReader(src), nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	v, err := m.Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v.Stats())
	_ = meshio.Write(os.Stdout, v)

	// Output:
	// V=4 E=5 F=2 half-edges=10 boundary=4 isolated=0 max-valence=3 degenerate=0 euler=1
	// Vertex 1 0 0 0
	// Vertex 2 1 0 0
	// Vertex 3 1 1 0
	// Vertex 4 0 1 0
	// Face 1 1 2 3
	// Face 2 1 3 4
}
