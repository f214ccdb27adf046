// SPDX-License-Identifier: MIT
// Package: hamviz/adjacency
//
// build.go — construction of Matrix from a core.Graph or raw editor lists.
//
// Contract:
//   • Dense index i ⇔ i-th vertex of the enumeration (insertion order).
//   • Both symmetric cells are set for every accepted edge.
//   • FromEdgeList: dangling-endpoint edges and self-loops are skipped
//     silently; duplicate vertex ids ⇒ ErrDuplicateVertex.
//   • No input mutation; returned structures are fresh.
//
// Determinism:
//   • Output depends only on the vertex enumeration and edge set.
//
// Complexity:
//   • Time O(V² ) dominated by the V×V cell allocation; Space O(V²).
package adjacency

import "github.com/katalvlaran/hamviz/core"

// Build snapshots g into a dense Matrix.
//
// Vertex enumeration order (core insertion order) fixes the dense index
// assignment; an empty graph yields a valid N()==0 matrix.
// Returns ErrNilGraph if g is nil.
func Build(g *core.Graph) (*Matrix, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2. Allocate the matrix skeleton from the stable enumeration.
	m := newMatrix(g.Vertices())

	// 3. Set both symmetric cells per edge. Edges() only reports edges
	//    between live vertices, so no filtering is needed on this path.
	var ok1, ok2 bool
	var ui, vi int
	for _, e := range g.Edges() {
		ui, ok1 = m.idToIndex[e.U]
		vi, ok2 = m.idToIndex[e.V]
		if !ok1 || !ok2 {
			continue
		}
		m.cells[ui*m.n+vi] = true
		m.cells[vi*m.n+ui] = true
	}

	return m, nil
}

// FromEdgeList builds a Matrix from raw vertex and edge lists, the shape
// an editor typically holds. The vertices slice order is the enumeration
// order. Edges referencing ids absent from vertices are dropped, as are
// self-loops. Returns ErrDuplicateVertex on a repeated vertex id.
func FromEdgeList(vertices []core.VertexID, edges []core.Edge) (*Matrix, error) {
	// 1. Allocate and detect duplicate ids while indexing.
	m := newMatrix(vertices)
	if len(m.idToIndex) != len(vertices) {
		return nil, ErrDuplicateVertex
	}

	// 2. Ingest edges defensively.
	var ok1, ok2 bool
	var ui, vi int
	for _, e := range edges {
		if e.U == e.V {
			continue // self-loop: never part of a Hamiltonian cycle
		}
		ui, ok1 = m.idToIndex[e.U]
		vi, ok2 = m.idToIndex[e.V]
		if !ok1 || !ok2 {
			continue // dangling endpoint: stale editor edge, skip
		}
		m.cells[ui*m.n+vi] = true
		m.cells[vi*m.n+ui] = true
	}

	return m, nil
}

// newMatrix allocates the cells and both translation tables for the given
// enumeration. Duplicate ids collapse in idToIndex; callers that forbid
// duplicates compare table sizes.
func newMatrix(vertices []core.VertexID) *Matrix {
	n := len(vertices)
	m := &Matrix{
		n:         n,
		cells:     make([]bool, n*n),
		indexToID: make([]core.VertexID, n),
		idToIndex: make(map[core.VertexID]int, n),
	}
	for i, id := range vertices {
		m.indexToID[i] = id
		if _, seen := m.idToIndex[id]; !seen {
			m.idToIndex[id] = i
		}
	}

	return m
}
