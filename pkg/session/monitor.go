package session

import (
	"context"
	"time"
)

// activityMonitor enforces the mode's inactivity thresholds. It sleeps
// until the earliest possible deadline computed from the last backend
// output, so a burst of activity simply pushes the deadline out; there is
// no fixed-interval polling.
//
// At the prompt threshold it injects one synthetic nudge instruction (at
// most once per activation). At the terminate threshold it marks the
// activation closing, instructs the backend to speak the fixed goodbye
// line, waits a grace window for that audio, then cancels the activation.
type activityMonitor struct {
	state     *closingState
	backend   Backend
	prompt    time.Duration
	terminate time.Duration
	grace     time.Duration
	nudge     string
	goodbye   string
	cancel    context.CancelFunc
	logf      func(msg string, args ...any)
}

func (m *activityMonitor) Run(ctx context.Context) {
	prompted := false
	for {
		if m.state.IsClosing() {
			// A detector fired between wakes. The backend may never produce
			// another turn after a farewell, so the monitor still drives the
			// teardown: wait the grace window for the farewell audio, then
			// cancel so the activation cannot hang on a silent stream.
			m.logf("closing observed", "closed_by", m.state.ClosedBy())
			select {
			case <-ctx.Done():
			case <-time.After(m.grace):
			}
			m.cancel()
			return
		}

		threshold := m.terminate
		if m.prompt > 0 && !prompted {
			threshold = m.prompt
		}

		remaining := threshold - time.Since(m.state.LastActivity())
		if remaining > 0 {
			timer := time.NewTimer(remaining)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-m.state.Closed():
				timer.Stop()
			case <-timer.C:
			}
			// Re-check: activity or a closing vote may have arrived while
			// we slept.
			continue
		}

		if threshold == m.prompt && !prompted {
			prompted = true
			m.logf("inactivity nudge", "after", m.prompt)
			if err := m.backend.SendText(m.nudge, true); err != nil {
				m.logf("nudge send failed", "error", err)
			}
			// Restart the clock from the nudge itself.
			m.state.Touch()
			continue
		}

		m.logf("inactivity terminate", "after", m.terminate)
		m.state.Set("timeout")
		if err := m.backend.SendText(m.goodbye, true); err != nil {
			m.logf("goodbye send failed", "error", err)
		}
		select {
		case <-ctx.Done():
		case <-time.After(m.grace):
		}
		m.cancel()
		return
	}
}
