package hamilton_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamviz/adjacency"
	"github.com/katalvlaran/hamviz/hamilton"
)

func TestControl_Flags(t *testing.T) {
	ctl := hamilton.NewControl()

	assert.False(t, ctl.Cancelled())
	assert.False(t, ctl.Paused())

	ctl.Pause()
	assert.True(t, ctl.Paused())

	ctl.Resume()
	assert.False(t, ctl.Paused())

	ctl.Cancel()
	assert.True(t, ctl.Cancelled())
}

func TestControl_StepWhileRunningIsNoOp(t *testing.T) {
	// A step grant issued while not paused must not carry over into a
	// later pause: stepping is meaningful only against a pause.
	ctl := hamilton.NewControl()
	ctl.Step()

	ctl.Pause()
	m, err := adjacency.Build(buildComplete(4))
	require.NoError(t, err)

	events := make(chan hamilton.Event)
	eng := hamilton.NewEngine(
		hamilton.WithControl(ctl),
		hamilton.WithOnEvent(func(ev hamilton.Event) error {
			events <- ev

			return nil
		}),
	)
	go func() { _, _ = eng.Run(m) }()

	<-events // start event; the run now parks at its first suspension

	select {
	case ev := <-events:
		t.Fatalf("run advanced without a step: %s", ev)
	case <-time.After(50 * time.Millisecond):
		// parked, as required
	}

	ctl.Cancel()
	assert.Equal(t, hamilton.EventCancelled, (<-events).Kind)
}

func TestControl_DelayLiveUpdateAndNegativeIgnored(t *testing.T) {
	ctl := hamilton.NewControl()
	assert.Equal(t, time.Duration(0), ctl.Delay())

	ctl.SetDelay(25 * time.Millisecond)
	assert.Equal(t, 25*time.Millisecond, ctl.Delay())

	ctl.SetDelay(-time.Second)
	assert.Equal(t, 25*time.Millisecond, ctl.Delay(), "negative delay must be ignored")

	ctl.SetDelay(0)
	assert.Equal(t, time.Duration(0), ctl.Delay())
}

func TestControl_ResetClearsFlagsKeepsDelay(t *testing.T) {
	ctl := hamilton.NewControl()
	ctl.SetDelay(10 * time.Millisecond)
	ctl.Pause()
	ctl.Cancel()

	ctl.Reset()

	assert.False(t, ctl.Cancelled())
	assert.False(t, ctl.Paused())
	assert.Equal(t, 10*time.Millisecond, ctl.Delay())
}

func TestControl_CancelWakesPausedRun(t *testing.T) {
	ctl := hamilton.NewControl()
	ctl.Pause()

	m, err := adjacency.Build(buildCycle(5))
	require.NoError(t, err)

	done := make(chan hamilton.Result, 1)
	eng := hamilton.NewEngine(hamilton.WithControl(ctl))
	go func() {
		res, _ := eng.Run(m)
		done <- res
	}()

	// Give the run time to park in its paused wait, then cancel: the
	// pause must not delay cancellation observance.
	time.Sleep(20 * time.Millisecond)
	ctl.Cancel()

	select {
	case res := <-done:
		assert.Equal(t, hamilton.Cancelled, res.Outcome)
	case <-time.After(time.Second):
		t.Fatal("cancel did not wake the paused run")
	}
}

func TestRecorder_CountAndReset(t *testing.T) {
	rec := &hamilton.Recorder{}
	require.NoError(t, rec.Record(hamilton.Event{Kind: hamilton.EventStart, U: 1}))
	require.NoError(t, rec.Record(hamilton.Event{Kind: hamilton.EventExplore, U: 1, V: 2}))
	require.NoError(t, rec.Record(hamilton.Event{Kind: hamilton.EventExplore, U: 2, V: 3}))

	assert.Equal(t, 3, rec.Len())
	assert.Equal(t, 2, rec.Count(hamilton.EventExplore))
	assert.Equal(t, 0, rec.Count(hamilton.EventBacktrack))

	// Events() hands out a copy; mutating it must not corrupt the trace.
	evs := rec.Events()
	evs[0].Kind = hamilton.EventCancelled
	assert.Equal(t, hamilton.EventStart, rec.Events()[0].Kind)

	rec.Reset()
	assert.Zero(t, rec.Len())
}

func TestEventAndOutcomeStrings(t *testing.T) {
	assert.Equal(t, "start 3", hamilton.Event{Kind: hamilton.EventStart, U: 3}.String())
	assert.Equal(t, "explore 3→7", hamilton.Event{Kind: hamilton.EventExplore, U: 3, V: 7}.String())
	assert.Equal(t, "visit 7", hamilton.Event{Kind: hamilton.EventVisit, U: 7}.String())
	assert.Equal(t, "backtrack 3→7", hamilton.Event{Kind: hamilton.EventBacktrack, U: 3, V: 7}.String())
	assert.Equal(t, "cycle-closed 7→3", hamilton.Event{Kind: hamilton.EventCycleClosed, U: 7, V: 3}.String())
	assert.Equal(t, "cancelled", hamilton.Event{Kind: hamilton.EventCancelled}.String())

	assert.Equal(t, "cycle found", hamilton.CycleFound.String())
	assert.Equal(t, "no cycle", hamilton.NoCycle.String())
	assert.Equal(t, "empty graph", hamilton.EmptyGraph.String())
	assert.Equal(t, "cancelled", hamilton.Cancelled.String())
}
