// SPDX-License-Identifier: MIT

// Package builder provides deterministic topology constructors for core
// graphs: canonical fixtures for tests, examples, and the demo CLI's
// --preset flag.
//
// What:
//
//   - BuildGraph(opts, cons...): creates a graph and applies constructors
//     in order. Same inputs ⇒ identical graph, always.
//   - Constructors: Cycle (C_n), Path (P_n), Star, Wheel (W_n),
//     Complete (K_n), CompleteBipartite (K_{m,n}).
//   - Id policy: vertex ids are offset + stride·index (defaults 0 and 1),
//     so fixtures can exercise sparse, non-contiguous, non-zero-based id
//     spaces — exactly what an editor leaves behind after deletions.
//
// Why:
//   - The Hamiltonian engine's trace is a function of vertex insertion
//     order; fixtures must pin that order down to be worth asserting on.
//   - C_n and K_n find cycles on the first descent, Star and K_{m,n}
//     (m≠n) exhaust without one — a compact pedagogical spread.
//
// Determinism:
//
//   - Vertices are inserted in ascending index order 0..n-1, so dense
//     index i == constructor index i for a freshly built graph.
//   - Edge emission order is stable and documented per constructor.
//
// Errors:
//
//   - ErrTooFewVertices   parameter below the topology's minimum
//   - ErrConstructFailed  nil constructor passed to BuildGraph
package builder
