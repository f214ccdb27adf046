// Package hamviz is an interactive teaching toolkit for the
// Hamiltonian-cycle backtracking algorithm on small, editable,
// undirected graphs.
//
// 🚀 What is hamviz?
//
//	A small, deterministic library (plus a terminal front-end) built around
//	one hard problem: a depth-first backtracking search that can be driven
//	step-by-step, paused and resumed at arbitrary points, and cancelled
//	mid-search — while emitting a replayable trace of every decision.
//
// ✨ Why hamviz?
//
//   - Classroom-grade clarity — every explore/visit/backtrack is an event
//   - Deterministic traces — same graph in, same event stream out, always
//   - Interruptible by design — the search is an explicit frame stack,
//     so pause, single-step and cancel are data, not control-flow tricks
//   - Pure Go library core — the TUI is an optional, separate consumer
//
// Everything is organized under five packages and one command:
//
//	core/      — editable undirected graph: int64 vertex ids, insertion order
//	adjacency/ — dense boolean matrix + index↔id mappings (one per run)
//	hamilton/  — the interruptible search engine, control signal & recorder
//	builder/   — deterministic topology generators (C_n, K_n, K_{m,n}, ...)
//	session/   — per-run orchestration for interactive callers
//	cmd/hamviz — reference renderer: a bubbletea TUI over the event stream
//
// Quick ASCII example:
//
//	    1───2
//	    │ ╲ │
//	    4───3
//
//	K4: the engine reports the cycle 1→2→3→4 (closing edge 4→1)
//	on its first descent, with zero backtrack events.
//
// Dive into README.md for the event vocabulary, pacing/stepping semantics,
// and the full TUI keymap.
//
//	go get github.com/katalvlaran/hamviz
package hamviz
