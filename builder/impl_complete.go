// SPDX-License-Identifier: MIT
// Package: hamviz/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order 0..n-1.
//   • Emits each unordered pair {i,j}, i<j, exactly once, lexicographic
//     by (i,j).
//
// Complexity:
//   • Time O(n) vertices + O(n²) edges; Space O(n) extra for the id slice.
package builder

import (
	"fmt"

	"github.com/katalvlaran/hamviz/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
// Under the ascending tie-break the engine finds 0,1,...,n-1 on its very
// first descent: the zero-backtrack golden fixture.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := make([]core.VertexID, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			g.AddVertex(ids[i])
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%d—%d): %w", methodComplete, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}
