// Package session orchestrates interactive search runs over an editable
// graph: it owns the core.Graph and the hamilton.Control, rebuilds the
// dense adjacency snapshot at the start of every run (the graph may have
// been edited in between), and delivers the trace on a channel while the
// engine runs on its own goroutine.
//
// What:
//
//   - New(g): wrap an editor-owned graph. Graph() hands it back for
//     mutation between runs; never mutate it while a run is live.
//   - Start(): launch one run. Returns the event channel, or ErrRunActive
//     if a run is already live — cancel and Wait first. The channel is
//     unbuffered: each event must be fully consumed before the engine
//     produces the next one, which is exactly the pacing contract a
//     renderer wants. Always drain the channel until it closes.
//   - Pause, Resume, Step, Cancel, SetDelay: forwarded to the control,
//     callable from any goroutine at any time.
//   - Wait(): block until the live run terminates and return its result.
//
// Concurrency:
//
//	The search executes on a private goroutine; the only shared state
//	across that boundary is the control signal, polled at suspension
//	points. Search state never leaves the engine.
//
// Errors:
//
//   - ErrRunActive   Start called while a run is live
//   - ErrNoRun       Wait called before any Start
package session
