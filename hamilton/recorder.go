package hamilton

import "sync"

// Recorder is an OnEvent sink that accumulates the trace of a run for
// replay, golden-trace assertions, or a transcript view. The zero value
// is ready to use; Record matches the OnEvent signature:
//
//	rec := &hamilton.Recorder{}
//	res, err := hamilton.Search(g, hamilton.WithOnEvent(rec.Record))
//
// Safe for concurrent use, though a single run delivers sequentially.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Record appends ev to the trace. It never returns an error; the type
// exists so it can slot into WithOnEvent directly.
func (r *Recorder) Record(ev Event) error {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()

	return nil
}

// Events returns a copy of the recorded trace in emission order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)

	return out
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.events)
}

// Count returns how many recorded events have the given kind.
func (r *Recorder) Count(kind EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}

	return n
}

// Reset discards the recorded trace, keeping the allocation.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = r.events[:0]
	r.mu.Unlock()
}
