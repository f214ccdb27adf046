// SPDX-License-Identifier: MIT
// Package: hamviz/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Hub is index 0; the rim ring is indices 1..n-1.
//   • Emits rim edges i — i+1 (and the closing rim edge) first, then
//     spokes hub — i for i=1..n-1, all in ascending index order.
//
// Complexity:
//   • Time O(n) vertices + O(2n-2) edges; Space O(1) extra.
package builder

import (
	"fmt"

	"github.com/katalvlaran/hamviz/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel W_n: a hub joined to
// every vertex of an (n-1)-ring. Wheels are always Hamiltonian, but the
// hub-first enumeration forces the engine through instructive detours
// before it closes a cycle.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}

		// Rim ring over indices 1..n-1.
		rim := n - 1
		for i := 1; i <= rim; i++ {
			u := cfg.idFn(i)
			v := cfg.idFn(i%rim + 1)
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d—%d): %w", methodWheel, u, v, err)
			}
		}

		// Spokes from the hub.
		hub := cfg.idFn(0)
		for i := 1; i <= rim; i++ {
			v := cfg.idFn(i)
			if err := g.AddEdge(hub, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d—%d): %w", methodWheel, hub, v, err)
			}
		}

		return nil
	}
}
