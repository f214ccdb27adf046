// SPDX-License-Identifier: MIT
// Package: hamviz/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Center is index 0; leaves are indices 1..n-1.
//   • Emits spokes in stable order center — i for i=1..n-1.
//
// Complexity:
//   • Time O(n) vertices + O(n-1) edges; Space O(1) extra.
package builder

import (
	"fmt"

	"github.com/katalvlaran/hamviz/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star: one center, n-1 leaves.
// For n ≥ 4 every descent dies after one hop, making the engine's
// backtracking visible immediately.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}

		center := cfg.idFn(0)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddEdge(center, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%d—%d): %w", methodStar, center, leaf, err)
			}
		}

		return nil
	}
}
