package session

import (
	"errors"
	"sync"
	"time"

	"github.com/katalvlaran/hamviz/adjacency"
	"github.com/katalvlaran/hamviz/core"
	"github.com/katalvlaran/hamviz/hamilton"
)

// Sentinel errors for run orchestration.
var (
	// ErrRunActive is returned by Start while a previous run is live.
	// Cancel it and Wait for termination first.
	ErrRunActive = errors.New("session: search already active")

	// ErrNoRun is returned by Wait when no run was ever started.
	ErrNoRun = errors.New("session: no run started")
)

// Session owns one editable graph and serializes search runs over it.
// Safe for concurrent use; the control passthroughs may be called from
// UI code at any moment.
type Session struct {
	graph *core.Graph
	ctl   *hamilton.Control

	mu      sync.Mutex
	running bool
	done    chan struct{}
	res     hamilton.Result
	err     error
}

// New wraps g (a fresh empty graph when nil) into a Session.
func New(g *core.Graph) *Session {
	if g == nil {
		g = core.NewGraph()
	}

	return &Session{graph: g, ctl: hamilton.NewControl()}
}

// Graph returns the editor-owned graph for mutation between runs.
// Mutating it while a run is live is a caller error: the live run keeps
// its private snapshot, but the next trace would be against a moving
// target.
func (s *Session) Graph() *core.Graph { return s.graph }

// Start launches one search run.
//
// The graph is snapshotted into a fresh dense adjacency matrix (rebuilt
// every run, since the graph may have changed), the control's cancel,
// pause, and step flags are cleared (the pacing delay survives), and the
// engine starts on a private goroutine.
//
// The returned channel is unbuffered and closed at termination; consume
// every event and drain until close. Returns ErrRunActive if a run is
// already live.
func (s *Session) Start() (<-chan hamilton.Event, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()

		return nil, ErrRunActive
	}

	m, err := adjacency.Build(s.graph)
	if err != nil {
		s.mu.Unlock()

		return nil, err
	}

	s.ctl.Reset()
	events := make(chan hamilton.Event)
	done := make(chan struct{})
	s.running = true
	s.done = done
	s.mu.Unlock()

	eng := hamilton.NewEngine(
		hamilton.WithControl(s.ctl),
		hamilton.WithOnEvent(func(ev hamilton.Event) error {
			events <- ev

			return nil
		}),
	)

	go func() {
		res, runErr := eng.Run(m)

		s.mu.Lock()
		s.res = res
		s.err = runErr
		s.running = false
		s.mu.Unlock()

		close(events)
		close(done)
	}()

	return events, nil
}

// Active reports whether a run is currently live.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// Wait blocks until the current run terminates (immediately if it
// already has) and returns its result. ErrNoRun before any Start.
func (s *Session) Wait() (hamilton.Result, error) {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done == nil {
		return hamilton.Result{}, ErrNoRun
	}
	<-done

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.res, s.err
}

// Pause blocks the run at its next suspension point.
func (s *Session) Pause() { s.ctl.Pause() }

// Resume lifts a pause.
func (s *Session) Resume() { s.ctl.Resume() }

// Step advances a paused run by exactly one suspension point.
func (s *Session) Step() { s.ctl.Step() }

// Cancel requests cooperative termination of the live run.
func (s *Session) Cancel() { s.ctl.Cancel() }

// SetDelay updates the pacing interval; effective from the next step,
// mid-run included.
func (s *Session) SetDelay(d time.Duration) { s.ctl.SetDelay(d) }

// Delay returns the current pacing interval.
func (s *Session) Delay() time.Duration { return s.ctl.Delay() }
