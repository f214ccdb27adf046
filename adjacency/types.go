// SPDX-License-Identifier: MIT
// Package: hamviz/adjacency
//
// types.go — the Matrix value and its read-only accessors.
//
// Contract:
//   • Matrix is immutable after construction; accessors take no locks.
//   • Cells are stored row-major in a single []bool of length n*n.
//   • Symmetry invariant: Has(i,j) == Has(j,i) for all i,j < n.
//
// Complexity:
//   • All accessors O(1) except Degree (O(n)).
package adjacency

import (
	"errors"

	"github.com/katalvlaran/hamviz/core"
)

// Sentinel errors for adjacency construction.
var (
	// ErrNilGraph is returned when Build receives a nil *core.Graph.
	ErrNilGraph = errors.New("adjacency: graph is nil")

	// ErrDuplicateVertex is returned when FromEdgeList receives the same
	// vertex id twice; id uniqueness is the caller's invariant.
	ErrDuplicateVertex = errors.New("adjacency: duplicate vertex id")
)

// Matrix is a dense symmetric boolean adjacency matrix over the dense
// indices 0..N()-1, together with the index↔id translation tables the
// engine uses to report events in caller-visible vertex ids.
type Matrix struct {
	n         int
	cells     []bool // row-major, n*n
	indexToID []core.VertexID
	idToIndex map[core.VertexID]int
}

// N returns the number of vertices (matrix dimension).
func (m *Matrix) N() int { return m.n }

// Has reports whether the edge between dense indices i and j exists.
// Out-of-range indices are a programmer error and will panic.
func (m *Matrix) Has(i, j int) bool { return m.cells[i*m.n+j] }

// IDOf translates dense index i back to the caller-visible vertex id.
func (m *Matrix) IDOf(i int) core.VertexID { return m.indexToID[i] }

// IndexOf translates a vertex id to its dense index; ok is false when the
// id was not part of the snapshot.
func (m *Matrix) IndexOf(id core.VertexID) (int, bool) {
	i, ok := m.idToIndex[id]

	return i, ok
}

// Degree returns the number of neighbors of dense index i.
func (m *Matrix) Degree(i int) int {
	deg := 0
	for j := 0; j < m.n; j++ {
		if m.cells[i*m.n+j] {
			deg++
		}
	}

	return deg
}
