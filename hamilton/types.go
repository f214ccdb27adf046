// Package hamilton: events, outcomes, sentinel errors, and functional
// options for the interruptible Hamiltonian-cycle search.
package hamilton

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/hamviz/core"
)

// Sentinel errors for the search engine.
var (
	// ErrNilMatrix is returned when Run receives a nil *adjacency.Matrix.
	ErrNilMatrix = errors.New("hamilton: matrix is nil")

	// ErrEmptyGraph is returned when the matrix has no vertices. It is a
	// precondition failure, not a NoCycle verdict: there was nothing to
	// search, and no events are emitted.
	ErrEmptyGraph = errors.New("hamilton: graph is empty")

	// ErrSearchActive is returned when Run is called while another run is
	// live on the same engine. Cancel and await termination first.
	ErrSearchActive = errors.New("hamilton: search already active")
)

// EventKind enumerates the trace event vocabulary.
type EventKind uint8

const (
	// EventStart names the root vertex; the search begins here.
	EventStart EventKind = iota

	// EventExplore announces edge U→V is about to be traversed.
	EventExplore

	// EventVisit announces vertex U was appended to the path.
	EventVisit

	// EventBacktrack announces edge U→V is being undone.
	EventBacktrack

	// EventCycleClosed confirms the closing edge U→V back to the root.
	EventCycleClosed

	// EventCancelled is the single terminal notice of a cancelled run.
	EventCancelled
)

// String returns the wire-stable kind label used in traces and the TUI.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventExplore:
		return "explore"
	case EventVisit:
		return "visit"
	case EventBacktrack:
		return "backtrack"
	case EventCycleClosed:
		return "cycle-closed"
	case EventCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Event is one entry of the ordered trace. Payload by kind:
//
//	start        U = root id
//	explore      U→V edge under test
//	visit        U = newly visited id
//	backtrack    U→V edge being undone
//	cycle-closed U = last path id, V = root id
//	cancelled    no payload
type Event struct {
	// Kind discriminates the payload.
	Kind EventKind

	// U is the primary vertex id (see kind table).
	U core.VertexID

	// V is the secondary vertex id for edge-shaped events.
	V core.VertexID
}

// String renders the event for transcripts, e.g. "explore 3→7".
func (e Event) String() string {
	switch e.Kind {
	case EventStart, EventVisit:
		return fmt.Sprintf("%s %d", e.Kind, e.U)
	case EventExplore, EventBacktrack, EventCycleClosed:
		return fmt.Sprintf("%s %d→%d", e.Kind, e.U, e.V)
	default:
		return e.Kind.String()
	}
}

// Outcome is the final verdict of one run.
type Outcome uint8

const (
	// CycleFound: a Hamiltonian cycle exists; Result.Path holds it.
	CycleFound Outcome = iota + 1

	// NoCycle: exhaustive backtracking from the root found no cycle.
	NoCycle

	// EmptyGraph: there was nothing to search (N==0 precondition).
	EmptyGraph

	// Cancelled: the run was stopped cooperatively; no result survives.
	Cancelled
)

// String returns a human-readable verdict label.
func (o Outcome) String() string {
	switch o {
	case CycleFound:
		return "cycle found"
	case NoCycle:
		return "no cycle"
	case EmptyGraph:
		return "empty graph"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result carries the verdict and, for CycleFound, the ordered vertex-id
// path. The closing edge Path[len-1]→Path[0] is implicit.
type Result struct {
	// Outcome is the final verdict.
	Outcome Outcome

	// Path is the Hamiltonian ordering when Outcome == CycleFound; nil
	// otherwise.
	Path []core.VertexID
}

// Option configures optional behavior of the engine.
// Use with NewEngine(opts...) or Search(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for a search engine.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// A done context is folded into the control's cancel flag, so it is
	// observed at the next suspension point like any other cancellation.
	Ctx context.Context

	// Control is the caller-owned shared signal. When nil, the engine
	// allocates a private one (reachable via Engine.Control).
	Control *Control

	// OnEvent, if non-nil, is invoked synchronously for every trace event
	// before the suspension point that follows it. Returning an error
	// aborts the run with that error.
	OnEvent func(Event) error

	// Delay seeds the control's pacing interval at engine construction.
	// Zero means no pacing; the control's live value wins afterwards.
	Delay time.Duration
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No control (engine allocates one)
//   - No event hook
//   - No pacing delay
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Control: nil,
		OnEvent: nil,
		Delay:   0,
	}
}

// WithContext returns an Option that sets the Context for the run.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithControl returns an Option that installs a caller-owned Control,
// letting UI code steer the run (pause, step, cancel, pacing).
func WithControl(c *Control) Option {
	return func(o *Options) {
		if c != nil {
			o.Control = c
		}
	}
}

// WithOnEvent returns an Option that installs fn as the trace sink.
// fn runs on the search goroutine; it must return before the search
// advances, which is exactly what keeps the stream ordered.
func WithOnEvent(fn func(Event) error) Option {
	return func(o *Options) {
		o.OnEvent = fn
	}
}

// WithDelay returns an Option that seeds the pacing interval.
// Negative durations are ignored.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d >= 0 {
			o.Delay = d
		}
	}
}
