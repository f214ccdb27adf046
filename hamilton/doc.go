// Package hamilton implements an interruptible depth-first backtracking
// search for a Hamiltonian cycle over a dense adjacency.Matrix, emitting
// a deterministic, replayable trace of every decision it takes.
//
// What:
//
//   - Engine: runs the search against a Matrix. The recursion is modeled
//     as an explicit stack of frames (active vertex, next-neighbor
//     cursor), so suspension, pause, single-step, and cancellation are
//     plain data transitions rather than control-flow tricks. Supports:
//   - A fixed search root at dense index 0
//   - Ascending-index neighbor order (the deterministic tie-break)
//   - Short-circuit on the first cycle found
//   - Cancellation via Control.Cancel or context.Context
//   - Control: the caller-owned shared signal — cancel, pause, resume,
//     single-step, and a live pacing delay — polled by the engine only at
//     suspension points, never mid-mutation.
//   - Recorder: an OnEvent sink that collects the trace for replay,
//     golden-trace tests, or a transcript view.
//
// Event stream (one suspension point after each event):
//
//   - start u           search begins at root u
//   - explore u→v       about to traverse edge u→v
//   - visit v           v newly appended to the path
//   - backtrack u→v     edge u→v being undone
//   - cycle-closed u→v  closing edge back to the root confirmed
//   - cancelled         run stopped by request (terminal, no suspension)
//
// Outcomes:
//
//   - CycleFound: Path is a permutation of all vertex ids; the closing
//     edge Path[len-1]→Path[0] is implicit, not stored.
//   - NoCycle: exhaustive backtracking found nothing.
//   - EmptyGraph: N==0 precondition, reported synchronously, zero events.
//   - Cancelled: cooperative stop; partial search state is discarded.
//
// Complexity:
//
//   - Time: O(V!) worst case — this is pedagogy, not a solver; target
//     graphs are tens of vertices where clarity dominates performance.
//   - Memory: O(V²) for the matrix snapshot, O(V) for search state.
//
// Errors:
//
//   - ErrNilMatrix     Run received a nil matrix
//   - ErrEmptyGraph    N==0 (precondition, paired with the EmptyGraph outcome)
//   - ErrSearchActive  Run called while a run is live on this engine
//   - hook errors      propagated from OnEvent
package hamilton
