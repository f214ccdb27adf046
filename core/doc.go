// Package core defines the editable undirected graph consumed by the
// hamviz search pipeline: Vertex identifiers, Edges, and a thread-safe
// Graph with deterministic, insertion-ordered vertex enumeration.
//
// What:
//
//   - Graph: a simple undirected graph (no self-loops, no parallel edges)
//     keyed by opaque int64 vertex ids. Ids need not be contiguous or
//     zero-based — an editor may delete vertices at any time, leaving holes.
//   - Vertex enumeration: Vertices() returns ids in insertion order,
//     compacted after removals with relative order preserved. This order
//     is the contract the adjacency package relies on to assign dense
//     indices, so it also decides the search root and the neighbor
//     tie-break of the Hamiltonian engine.
//   - Mutations: AddVertex (idempotent), AddEdge (creates missing
//     endpoints), RemoveVertex (drops incident edges), RemoveEdge.
//
// Why:
//   - Back an interactive graph editor with predictable semantics
//   - Provide a stable, caller-controlled enumeration surface so that
//     repeated searches over an unchanged graph replay identical traces
//
// Concurrency:
//
//	All methods are safe for concurrent use via an internal RWMutex.
//	A Graph must not be mutated while a search runs against a matrix
//	built from it; build the matrix, then leave the graph alone until
//	the run terminates (the adjacency snapshot is private to the run).
//
// Errors:
//
//   - ErrVertexNotFound   operation referenced a missing vertex
//   - ErrEdgeNotFound     operation referenced a missing edge
//   - ErrLoopNotAllowed   self-loop attempted (never meaningful here)
//   - ErrDuplicateEdge    parallel edge attempted
package core
