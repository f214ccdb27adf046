package builder_test

import (
	"fmt"

	"github.com/katalvlaran/hamviz/builder"
	"github.com/katalvlaran/hamviz/hamilton"
)

// ExampleBuildGraph builds the wheel W_5 with editor-like sparse ids and
// hands it straight to the search engine.
//
//	    20──30
//	   ╱ ╲  ╱ ╲
//	  50──10──40   (10 is the hub; rim ring 20-30-40-50)
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.Option{builder.WithIDOffset(10), builder.WithIDStride(10)},
		builder.Wheel(5),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, _ := hamilton.Search(g)
	fmt.Println(res.Outcome)
	fmt.Println(res.Path)

	// Output:
	// cycle found
	// [10 20 30 40 50]
}
