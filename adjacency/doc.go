// SPDX-License-Identifier: MIT

// Package adjacency converts a sparse, possibly non-contiguous-id graph
// into the dense structure the Hamiltonian search engine runs against:
// an N×N symmetric boolean matrix plus bidirectional index↔id mappings.
//
// What:
//
//   - Build(g): snapshot a core.Graph. Dense index i is assigned to
//     g.Vertices()[i] (insertion order), so index 0 — the fixed search
//     root — and the ascending-index neighbor tie-break are both decided
//     by the caller's enumeration order, never by this package.
//   - FromEdgeList(vertices, edges): ingestion path for callers holding
//     raw editor state. Edges naming absent endpoints are silently
//     dropped (defensive filtering, not an error); duplicate vertex ids
//     are a caller bug and are rejected.
//
// Lifecycle:
//
//	A Matrix is built once per run, is immutable afterwards, and is
//	discarded when the run ends. Rebuild whenever the graph changes.
//
// Edge cases:
//
//   - Empty vertex set ⇒ N()==0 and an empty matrix. That is a valid
//     value; the engine turns it into its EmptyGraph verdict.
//
// Errors:
//
//   - ErrNilGraph         Build received a nil graph
//   - ErrDuplicateVertex  FromEdgeList received a repeated vertex id
package adjacency
