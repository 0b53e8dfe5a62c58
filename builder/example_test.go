package builder_test

import (
	"fmt"

	"github.com/katalvlaran/trimesh/builder"
)

// ExampleBuildView builds an icosahedron and prints its counts.
func ExampleBuildView() {
	v, err := builder.BuildView(nil, nil, builder.PlatonicSolid(builder.Icosahedron))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v.VertexCount(), v.EdgeCount(), v.FaceCount(), v.EulerCharacteristic())

	// Output:
	// 12 30 20 2
}

// ExampleTube shows an open cylinder: two boundary loops, Euler characteristic 0.
func ExampleTube() {
	v, _ := builder.BuildView(nil, nil, builder.Tube(6, 1))
	st := v.Stats()
	fmt.Println(st.Faces, st.BoundaryHalfEdges, st.Euler, st.Closed())

	// Output:
	// 12 12 0 false
}
