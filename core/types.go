// This file declares VertexID, Edge, Graph, sentinel errors, and the
// NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; loops can never
	// participate in a Hamiltonian cycle and are rejected outright.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge was attempted.
	ErrDuplicateEdge = errors.New("core: edge already present")
)

// VertexID uniquely identifies a vertex within its Graph.
//
// Ids are opaque: an editor assigns them once and never reuses them, so
// after deletions the live set is typically sparse and non-contiguous.
type VertexID int64

// Edge is an unordered pair of distinct vertex ids.
//
// The graph is undirected; an Edge reported by Edges() carries as U the
// endpoint that was inserted into the graph first.
type Edge struct {
	// U is the earlier-inserted endpoint.
	U VertexID

	// V is the later-inserted endpoint.
	V VertexID
}

// Graph is a simple undirected graph with deterministic insertion-order
// vertex enumeration. The zero value is not usable; call NewGraph.
type Graph struct {
	mu sync.RWMutex

	// position maps each vertex id to its slot in order.
	position map[VertexID]int

	// order lists vertex ids in insertion order (compacted on removal).
	order []VertexID

	// adjacent holds the symmetric neighbor sets.
	adjacent map[VertexID]map[VertexID]bool

	// edgeCount tracks the number of undirected edges.
	edgeCount int
}

// NewGraph returns an empty, ready-to-use Graph.
func NewGraph() *Graph {
	return &Graph{
		position: make(map[VertexID]int),
		order:    make([]VertexID, 0),
		adjacent: make(map[VertexID]map[VertexID]bool),
	}
}
