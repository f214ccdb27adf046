package core_test

import (
	"fmt"

	"github.com/katalvlaran/hamviz/core"
)

// ExampleGraph demonstrates the editor workflow: build a square, delete a
// vertex, and observe the insertion-ordered enumeration that later fixes
// dense indices for the search.
//
//	1───2
//	│   │
//	4───3
func ExampleGraph() {
	g := core.NewGraph()
	for _, e := range []core.Edge{
		{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 1},
	} {
		_ = g.AddEdge(e.U, e.V)
	}

	fmt.Println("vertices:", g.Vertices())
	fmt.Println("edges:", g.EdgeCount())

	// The editor deletes vertex 3; its two incident edges go with it.
	_ = g.RemoveVertex(3)
	fmt.Println("vertices:", g.Vertices())
	fmt.Println("edges:", g.EdgeCount())

	// Output:
	// vertices: [1 2 3 4]
	// edges: 4
	// vertices: [1 2 4]
	// edges: 2
}
