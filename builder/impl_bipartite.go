// SPDX-License-Identifier: MIT
// Package: hamviz/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left partition occupies indices 0..n1-1, right partition
//     n1..n1+n2-1, all via cfg.idFn in ascending index order.
//   • Emits every cross pair L_i — R_j, lexicographic by (i,j).
//
// Complexity:
//   • Time O(n1+n2) vertices + O(n1·n2) edges; Space O(n1+n2) extra.
package builder

import (
	"fmt"

	"github.com/katalvlaran/hamviz/core"
)

const (
	methodBipartite   = "CompleteBipartite"
	minPartitionNodes = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
// K_{m,n} is Hamiltonian iff m == n, so unbalanced partitions (the
// classroom staple K_{2,3}) exhaust the whole search tree and showcase
// deterministic backtracking end to end.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionNodes || n2 < minPartitionNodes {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodBipartite, n1, n2, minPartitionNodes, ErrTooFewVertices)
		}

		left := make([]core.VertexID, n1)
		for i := 0; i < n1; i++ {
			left[i] = cfg.idFn(i)
			g.AddVertex(left[i])
		}
		right := make([]core.VertexID, n2)
		for j := 0; j < n2; j++ {
			right[j] = cfg.idFn(n1 + j)
			g.AddVertex(right[j])
		}

		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := g.AddEdge(left[i], right[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%d—%d): %w", methodBipartite, left[i], right[j], err)
				}
			}
		}

		return nil
	}
}
