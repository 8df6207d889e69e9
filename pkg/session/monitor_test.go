package session

import (
	"context"
	"testing"
	"time"
)

func noopLogf(string, ...any) {}

func TestMonitorNudgeThenTerminate(t *testing.T) {
	state := newClosingState()
	b := newFakeBackend()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mon := &activityMonitor{
		state:     state,
		backend:   b,
		prompt:    20 * time.Millisecond,
		terminate: 60 * time.Millisecond,
		grace:     5 * time.Millisecond,
		nudge:     "are you still there?",
		goodbye:   "okay, bye for now",
		cancel:    cancel,
		logf:      noopLogf,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		mon.Run(ctx)
	}()

	waitFor(t, "nudge", func() bool {
		texts := b.texts()
		return len(texts) >= 1 && texts[0] == "are you still there?"
	})
	if state.IsClosing() {
		t.Error("nudge must not close the activation")
	}

	waitFor(t, "goodbye", func() bool {
		texts := b.texts()
		return len(texts) >= 2 && texts[1] == "okay, bye for now"
	})
	waitFor(t, "monitor done", func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	})

	if got := state.ClosedBy(); got != "timeout" {
		t.Errorf("ClosedBy = %q", got)
	}
	if ctx.Err() == nil {
		t.Error("monitor must cancel the activation after the grace window")
	}
}

func TestMonitorActivityDefersDeadline(t *testing.T) {
	state := newClosingState()
	b := newFakeBackend()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mon := &activityMonitor{
		state:     state,
		backend:   b,
		terminate: 50 * time.Millisecond,
		grace:     time.Millisecond,
		goodbye:   "bye",
		cancel:    cancel,
		logf:      noopLogf,
	}
	go mon.Run(ctx)

	// Keep touching well past the original deadline; the monitor must not
	// terminate while output keeps flowing.
	for i := 0; i < 10; i++ {
		time.Sleep(15 * time.Millisecond)
		state.Touch()
		if state.IsClosing() {
			t.Fatal("terminated despite ongoing activity")
		}
	}

	// Now go quiet and let it fire.
	waitFor(t, "terminate after quiet", state.IsClosing)
}

func TestMonitorCancelsAfterDetectorCloses(t *testing.T) {
	state := newClosingState()
	b := newFakeBackend()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mon := &activityMonitor{
		state:     state,
		backend:   b,
		terminate: time.Minute,
		grace:     10 * time.Millisecond,
		goodbye:   "bye",
		cancel:    cancel,
		logf:      noopLogf,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		mon.Run(ctx)
	}()

	// A closing vote lands mid-sleep, long before the terminate deadline.
	// The monitor must wake, allow the grace window, and cancel so the
	// activation cannot wait forever on a stream that stays silent.
	time.Sleep(5 * time.Millisecond)
	state.Set("classifier")

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not return after the closing vote")
	}
	if ctx.Err() == nil {
		t.Error("monitor must cancel the activation after a detector closes it")
	}
	if len(b.texts()) != 0 {
		t.Errorf("monitor must not speak over a detector close, sent %v", b.texts())
	}
}

func TestTuningOverrides(t *testing.T) {
	tuning := DefaultTuning()
	if tuning.MaxQuestions != 4 {
		t.Errorf("default max questions = %d", tuning.MaxQuestions)
	}
	if len(tuning.ClosingPhrases[ModeQA]) == 0 {
		t.Error("qa closing phrases missing")
	}
	if len(tuning.ClosingPhrases[ModeChat]) != 0 {
		t.Error("chat must have no closing phrases")
	}
}
