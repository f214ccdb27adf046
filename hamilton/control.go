package hamilton

import (
	"errors"
	"sync"
	"time"
)

// errCancelled unwinds the frame loop when cancellation is observed at a
// suspension point. It never escapes Run; callers see Outcome Cancelled.
var errCancelled = errors.New("hamilton: run cancelled")

// Control is the shared signal through which a caller steers a running
// search: a cancellation flag, a pause flag, a single-step grant, and a
// live pacing delay.
//
// The engine reads Control only at suspension points, between complete
// state mutations, so callers may flip flags at any moment from any
// goroutine without racing the search state. All methods are safe for
// concurrent use.
type Control struct {
	mu        sync.Mutex
	cond      *sync.Cond
	cancelled bool
	paused    bool
	step      bool
	delay     time.Duration
}

// NewControl returns a Control with no flags set and zero pacing delay.
func NewControl() *Control {
	c := &Control{}
	c.cond = sync.NewCond(&c.mu)

	return c
}

// Cancel requests cooperative termination. The engine observes it within
// one suspension interval, regardless of recursion depth; a paused run is
// woken and terminates immediately.
func (c *Control) Cancel() {
	c.mu.Lock()
	c.cancelled = true
	c.mu.Unlock()
	c.cond.Broadcast()
}

// Cancelled reports whether cancellation was requested.
func (c *Control) Cancelled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cancelled
}

// Pause blocks the run at its next suspension point, indefinitely, until
// Resume, Step, or Cancel. Algorithm state is untouched.
func (c *Control) Pause() {
	c.mu.Lock()
	c.paused = true
	c.mu.Unlock()
}

// Resume lifts a pause; any unconsumed step grant is discarded.
func (c *Control) Resume() {
	c.mu.Lock()
	c.paused = false
	c.step = false
	c.mu.Unlock()
	c.cond.Broadcast()
}

// Paused reports whether the pause flag is set.
func (c *Control) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.paused
}

// Step grants passage through exactly one suspension point while paused,
// after which the run is paused again. A Step while running is a no-op;
// stepping is meaningful only against a pause.
func (c *Control) Step() {
	c.mu.Lock()
	if c.paused {
		c.step = true
	}
	c.mu.Unlock()
	c.cond.Broadcast()
}

// SetDelay updates the pacing interval between steps. The engine reads
// the current value at every suspension point, so mid-run changes take
// effect on the very next step. Negative values are ignored.
func (c *Control) SetDelay(d time.Duration) {
	if d < 0 {
		return
	}
	c.mu.Lock()
	c.delay = d
	c.mu.Unlock()
}

// Delay returns the current pacing interval.
func (c *Control) Delay() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.delay
}

// Reset clears cancel/pause/step for reuse across runs; the pacing delay
// is preserved. Never call Reset while a run is live on this control.
func (c *Control) Reset() {
	c.mu.Lock()
	c.cancelled = false
	c.paused = false
	c.step = false
	c.mu.Unlock()
}

// await is the suspension point. It returns errCancelled if cancellation
// is observed, blocks while paused (a step grant releases exactly one
// passage), and otherwise sleeps the current pacing delay. Stepped
// passages skip the delay so a paused classroom can advance crisply.
func (c *Control) await() error {
	c.mu.Lock()
	stepped := false
	for {
		if c.cancelled {
			c.mu.Unlock()

			return errCancelled
		}
		if !c.paused {
			break
		}
		if c.step {
			c.step = false
			stepped = true

			break
		}
		c.cond.Wait()
	}
	d := c.delay
	c.mu.Unlock()

	if d > 0 && !stepped {
		time.Sleep(d)
	}

	return nil
}
