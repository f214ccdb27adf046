package hamilton

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/hamviz/adjacency"
	"github.com/katalvlaran/hamviz/core"
)

// Engine executes interruptible Hamiltonian-cycle searches. One search
// may be active per engine at a time; construct with NewEngine and reuse
// across runs, or use the one-shot Search helper.
type Engine struct {
	opts Options

	mu      sync.Mutex
	running bool
}

// NewEngine builds an Engine from the given options. When no Control is
// supplied one is allocated; WithDelay seeds its pacing interval.
func NewEngine(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Control == nil {
		o.Control = NewControl()
	}
	if o.Delay > 0 {
		o.Control.SetDelay(o.Delay)
	}

	return &Engine{opts: o}
}

// Control returns the engine's control signal, for callers that let the
// engine allocate it.
func (e *Engine) Control() *Control { return e.opts.Control }

// Run executes one search over m and blocks until it terminates.
//
// The event hook (if any) observes the full ordered trace; each event is
// delivered and fully processed before the suspension point that follows
// it, so a renderer sees exactly one logical action per pacing step.
//
// Returns:
//   - Result{CycleFound, path} on the first cycle found (short-circuit).
//   - Result{NoCycle} after exhaustive backtracking.
//   - Result{EmptyGraph} with ErrEmptyGraph when m.N()==0 (synchronous,
//     zero events).
//   - Result{Cancelled} with nil error on cooperative cancellation —
//     a normal terminal outcome, not a failure.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyGraph, ErrSearchActive as preconditions.
//   - Any error returned by the OnEvent hook, wrapped.
func (e *Engine) Run(m *adjacency.Matrix) (Result, error) {
	// 1. Validate input.
	if m == nil {
		return Result{}, ErrNilMatrix
	}

	// 2. Enforce single active run per engine.
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()

		return Result{}, ErrSearchActive
	}
	e.running = true
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
	}()

	// 3. Empty graph: nothing to search, reported synchronously.
	if m.N() == 0 {
		return Result{Outcome: EmptyGraph}, ErrEmptyGraph
	}

	// 4. Fold context cancellation into the control's cancel flag so the
	//    frame loop has a single stop signal to poll.
	if done := e.opts.Ctx.Done(); done != nil {
		stop := make(chan struct{})
		defer close(stop)
		go func() {
			select {
			case <-done:
				e.opts.Control.Cancel()
			case <-stop:
			}
		}()
	}

	// 5. Fresh search state per run; nothing is shared across runs.
	s := &searcher{
		m:       m,
		n:       m.N(),
		ctl:     e.opts.Control,
		onEvent: e.opts.OnEvent,
	}
	res, err := s.run()

	// 6. Cancellation terminates with one top-level notice, never from
	//    within frame processing, and with no suspension after it.
	if errors.Is(err, errCancelled) {
		if hookErr := s.emit(Event{Kind: EventCancelled}); hookErr != nil {
			return Result{Outcome: Cancelled}, hookErr
		}

		return Result{Outcome: Cancelled}, nil
	}
	if err != nil {
		return Result{}, err // OnEvent hook abort
	}

	return res, nil
}

// Search is the one-shot convenience: build the dense adjacency snapshot
// of g and run a fresh engine over it.
func Search(g *core.Graph, opts ...Option) (Result, error) {
	m, err := adjacency.Build(g)
	if err != nil {
		return Result{}, err
	}

	return NewEngine(opts...).Run(m)
}

// frame is one suspended level of the search: the active vertex and the
// cursor of the next neighbor to try. Frames are data, not goroutine
// stack, so pause, step, and cancel unwinding are plain slice operations.
type frame struct {
	u    int // dense index of the active vertex
	next int // next neighbor candidate, ascending dense index
}

// searcher holds the per-run state; it lives exactly as long as one run.
type searcher struct {
	m       *adjacency.Matrix
	n       int
	ctl     *Control
	onEvent func(Event) error

	frames  []frame
	path    []int // dense indices; len(path) == recursion depth
	visited []bool
}

// emit delivers ev to the hook, if any. Hook errors abort the run.
func (s *searcher) emit(ev Event) error {
	if s.onEvent == nil {
		return nil
	}
	if err := s.onEvent(ev); err != nil {
		return fmt.Errorf("hamilton: OnEvent hook for %q: %w", ev.String(), err)
	}

	return nil
}

// emitAndSuspend pairs an event with the suspension point that follows it.
func (s *searcher) emitAndSuspend(ev Event) error {
	if err := s.emit(ev); err != nil {
		return err
	}

	return s.ctl.await()
}

// run drives the explicit-stack depth-first backtracking from dense
// index 0. Invariant at every suspension point: visited[i] == true iff i
// appears in path, and frames[k].u == path[k] for all k.
func (s *searcher) run() (Result, error) {
	const root = 0

	s.visited = make([]bool, s.n)
	s.path = make([]int, 0, s.n)
	s.frames = make([]frame, 0, s.n)

	// Fix the root: mark, push, announce.
	s.visited[root] = true
	s.path = append(s.path, root)
	s.frames = append(s.frames, frame{u: root})
	if err := s.emitAndSuspend(Event{Kind: EventStart, U: s.m.IDOf(root)}); err != nil {
		return Result{}, err
	}

	// failed carries the dense index of a child frame that just reported
	// failure; the parent undoes that extension before scanning on.
	failed := -1
	for len(s.frames) > 0 {
		f := &s.frames[len(s.frames)-1]

		if failed >= 0 {
			// Undo the failed child's extension: announce, pop, unmark.
			if err := s.emit(Event{Kind: EventBacktrack, U: s.m.IDOf(f.u), V: s.m.IDOf(failed)}); err != nil {
				return Result{}, err
			}
			s.path = s.path[:len(s.path)-1]
			s.visited[failed] = false
			if err := s.ctl.await(); err != nil {
				return Result{}, err
			}
			failed = -1
		}

		// Full depth: the only question left is the closing edge to root.
		if len(s.path) == s.n {
			if s.m.Has(f.u, root) {
				ev := Event{Kind: EventCycleClosed, U: s.m.IDOf(f.u), V: s.m.IDOf(root)}
				if err := s.emitAndSuspend(ev); err != nil {
					return Result{}, err
				}

				return Result{Outcome: CycleFound, Path: s.idPath()}, nil
			}
			// No closing edge: plain backtrack, no event from this frame.
			failed = f.u
			s.frames = s.frames[:len(s.frames)-1]

			continue
		}

		// Ascending-index neighbor scan from the saved cursor — the
		// tie-break rule that makes traces reproducible.
		v := -1
		for f.next < s.n {
			w := f.next
			f.next++
			if s.m.Has(f.u, w) && !s.visited[w] {
				v = w

				break
			}
		}
		if v < 0 {
			// Neighbors exhausted: report failure upward.
			failed = f.u
			s.frames = s.frames[:len(s.frames)-1]

			continue
		}

		// Tentatively extend the path into v and descend.
		if err := s.emitAndSuspend(Event{Kind: EventExplore, U: s.m.IDOf(f.u), V: s.m.IDOf(v)}); err != nil {
			return Result{}, err
		}
		s.visited[v] = true
		s.path = append(s.path, v)
		if err := s.emitAndSuspend(Event{Kind: EventVisit, U: s.m.IDOf(v)}); err != nil {
			return Result{}, err
		}
		s.frames = append(s.frames, frame{u: v})
	}

	// Recursion unwound completely from the root without success.
	return Result{Outcome: NoCycle}, nil
}

// idPath translates the dense-index path into caller-visible vertex ids.
func (s *searcher) idPath() []core.VertexID {
	out := make([]core.VertexID, len(s.path))
	for i, idx := range s.path {
		out[i] = s.m.IDOf(idx)
	}

	return out
}
