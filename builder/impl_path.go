// SPDX-License-Identifier: MIT
// Package: hamviz/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order 0..n-1.
//   • Emits edges in stable order i — i+1 for i=0..n-2.
//
// Complexity:
//   • Time O(n) vertices + O(n-1) edges; Space O(1) extra.
package builder

import (
	"fmt"

	"github.com/katalvlaran/hamviz/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n. P_n has
// Hamiltonian paths but never a Hamiltonian cycle — a clean NoCycle
// fixture with very short traces.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}

		for i := 0; i < n-1; i++ {
			u, v := cfg.idFn(i), cfg.idFn(i+1)
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d—%d): %w", methodPath, u, v, err)
			}
		}

		return nil
	}
}
