// SPDX-License-Identifier: MIT
// Package: hamviz/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order 0..n-1.
//   • Emits edges in stable order i — (i+1)%n for i=0..n-1.
//
// Determinism:
//   • Deterministic ids via cfg.idFn; deterministic edge order by i.
//
// Complexity:
//   • Time O(n) vertices + O(n) edges; Space O(1) extra.
package builder

import (
	"fmt"

	"github.com/katalvlaran/hamviz/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the n-vertex ring C_n — the
// canonical graph whose only Hamiltonian cycle is itself.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// Pin enumeration order before any edge creates vertices.
		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}

		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d—%d): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}
