package session

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestClosingStateMonotonic(t *testing.T) {
	s := newClosingState()
	if s.IsClosing() {
		t.Fatal("fresh state should not be closing")
	}

	s.Set("lexical:bye")
	if !s.IsClosing() {
		t.Fatal("expected closing after Set")
	}
	if got := s.ClosedBy(); got != "lexical:bye" {
		t.Errorf("ClosedBy = %q", got)
	}

	// A later source never overrides the first.
	s.Set("timeout")
	if got := s.ClosedBy(); got != "lexical:bye" {
		t.Errorf("ClosedBy after second Set = %q", got)
	}
}

func TestClosingStateActivity(t *testing.T) {
	s := newClosingState()
	before := s.LastActivity()
	time.Sleep(5 * time.Millisecond)
	s.Touch()
	if !s.LastActivity().After(before) {
		t.Error("Touch did not advance LastActivity")
	}

	if got := s.TurnDone(); got != 1 {
		t.Errorf("first TurnDone = %d", got)
	}
	if got := s.TurnDone(); got != 2 {
		t.Errorf("second TurnDone = %d", got)
	}
}

type fakeClassifier struct {
	mu       sync.Mutex
	calls    []string
	farewell bool
	err      error
	done     chan struct{}
}

func (f *fakeClassifier) IsFarewell(ctx context.Context, text string) (bool, error) {
	f.mu.Lock()
	f.calls = append(f.calls, text)
	f.mu.Unlock()
	if f.done != nil {
		defer close(f.done)
	}
	return f.farewell, f.err
}

func (f *fakeClassifier) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestDetectorLexical(t *testing.T) {
	state := newClosingState()
	d := newClosingDetector([]string{"here we go"}, nil, state, nil)

	if d.CheckTurn(context.Background(), "Great choice! Here we go!", 2) != true {
		t.Fatal("expected lexical detection")
	}
	if got := state.ClosedBy(); got != "lexical:here we go" {
		t.Errorf("ClosedBy = %q", got)
	}
}

func TestDetectorOpeningTurnExempt(t *testing.T) {
	state := newClosingState()
	cl := &fakeClassifier{farewell: true}
	d := newClosingDetector([]string{"bye"}, cl, state, nil)

	// The scripted greeting may contain closing vocabulary; turn one never
	// triggers either signal.
	if d.CheckTurn(context.Background(), "Hi! Say bye when you're done!", 1) {
		t.Error("opening turn must be exempt")
	}
	if cl.callCount() != 0 {
		t.Error("classifier must not run on the opening turn")
	}
}

func TestDetectorBlankTurnSkipped(t *testing.T) {
	state := newClosingState()
	cl := &fakeClassifier{farewell: true}
	d := newClosingDetector(nil, cl, state, nil)

	if d.CheckTurn(context.Background(), "   ", 3) {
		t.Error("blank turn should not close")
	}
	if cl.callCount() != 0 {
		t.Error("classifier must not run on blank turns")
	}
}

func TestDetectorClassifierVote(t *testing.T) {
	state := newClosingState()
	cl := &fakeClassifier{farewell: true, done: make(chan struct{})}
	d := newClosingDetector([]string{"see you next time"}, cl, state, nil)

	// No lexical hit, so the immediate answer is "not closing".
	if d.CheckTurn(context.Background(), "Talk to you later, friend!", 2) {
		t.Error("expected no synchronous detection")
	}

	select {
	case <-cl.done:
	case <-time.After(time.Second):
		t.Fatal("classifier never ran")
	}
	// The vote lands asynchronously.
	deadline := time.Now().Add(time.Second)
	for !state.IsClosing() {
		if time.Now().After(deadline) {
			t.Fatal("classifier vote never marked closing")
		}
		time.Sleep(time.Millisecond)
	}
	if got := state.ClosedBy(); got != "classifier" {
		t.Errorf("ClosedBy = %q", got)
	}
}

func TestDetectorClassifierErrorIgnored(t *testing.T) {
	state := newClosingState()
	cl := &fakeClassifier{err: context.DeadlineExceeded, done: make(chan struct{})}
	d := newClosingDetector(nil, cl, state, nil)

	d.CheckTurn(context.Background(), "some ordinary turn", 2)
	<-cl.done
	time.Sleep(10 * time.Millisecond)
	if state.IsClosing() {
		t.Error("classifier error must not close the activation")
	}
}
