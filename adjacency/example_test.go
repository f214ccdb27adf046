package adjacency_test

import (
	"fmt"

	"github.com/katalvlaran/hamviz/adjacency"
	"github.com/katalvlaran/hamviz/core"
)

// ExampleBuild shows how editor-assigned, non-contiguous vertex ids map
// onto the dense 0-based indices the search engine works with.
func ExampleBuild() {
	g := core.NewGraph()
	// Vertices 100, 200, 300 in insertion order; a path 100—200—300.
	_ = g.AddEdge(100, 200)
	_ = g.AddEdge(200, 300)

	m, _ := adjacency.Build(g)

	fmt.Println("N =", m.N())
	fmt.Println("root id:", m.IDOf(0))
	fmt.Println("100—300 adjacent:", m.Has(0, 2))
	fmt.Println("200—300 adjacent:", m.Has(1, 2))

	// Output:
	// N = 3
	// root id: 100
	// 100—300 adjacent: false
	// 200—300 adjacent: true
}
