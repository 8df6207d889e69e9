package session

import (
	"context"
	"strings"
	"sync"
	"time"
)

// closingState is the shared termination state for one activation.
// isClosing is monotonic: once set it never reverts within the activation.
type closingState struct {
	mu           sync.Mutex
	isClosing    bool
	closedBy     string
	lastActivity time.Time
	turns        int
	closedC      chan struct{}
}

func newClosingState() *closingState {
	return &closingState{
		lastActivity: time.Now(),
		closedC:      make(chan struct{}),
	}
}

// Set marks the activation as closing, recording which detector fired.
// Later calls keep the first source.
func (c *closingState) Set(source string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isClosing {
		c.isClosing = true
		c.closedBy = source
		close(c.closedC)
	}
}

// Closed returns a channel closed the moment termination begins, so the
// monitor can react without waiting out its current deadline.
func (c *closingState) Closed() <-chan struct{} {
	return c.closedC
}

// IsClosing reports whether termination has begun.
func (c *closingState) IsClosing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isClosing
}

// ClosedBy names the detector that initiated termination, or "".
func (c *closingState) ClosedBy() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closedBy
}

// Touch records backend output activity.
func (c *closingState) Touch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastActivity = time.Now()
}

// LastActivity returns the time of the most recent backend output.
func (c *closingState) LastActivity() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActivity
}

// TurnDone increments the completed-turn counter and returns the new count.
func (c *closingState) TurnDone() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns++
	return c.turns
}

// Classifier is the secondary closing signal: a short, independent oracle
// call answering whether a turn reads as a farewell.
type Classifier interface {
	IsFarewell(ctx context.Context, turnText string) (bool, error)
}

// closingDetector combines two independent signals with logical OR: a
// lexical closing-phrase test and an async classifier vote. The opening
// turn is exempt to avoid false positives from a scripted greeting.
type closingDetector struct {
	phrases    []string
	classifier Classifier
	state      *closingState
	logf       func(msg string, args ...any)
}

func newClosingDetector(phrases []string, classifier Classifier, state *closingState, logf func(string, ...any)) *closingDetector {
	lowered := make([]string, len(phrases))
	for i, p := range phrases {
		lowered[i] = strings.ToLower(p)
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &closingDetector{phrases: lowered, classifier: classifier, state: state, logf: logf}
}

// CheckTurn runs both closing tests against the accumulated text of a
// completed turn. The lexical test is synchronous; the classifier vote runs
// in the background and may mark the activation closing before a later
// turn completes. It reports whether isClosing is set after the lexical
// test (for the caller deciding turn_complete vs terminal).
func (d *closingDetector) CheckTurn(ctx context.Context, turnText string, turnNumber int) bool {
	if turnNumber <= 1 || strings.TrimSpace(turnText) == "" {
		return d.state.IsClosing()
	}

	lower := strings.ToLower(turnText)
	for _, phrase := range d.phrases {
		if strings.Contains(lower, phrase) {
			d.state.Set("lexical:" + phrase)
			d.logf("closing phrase detected", "phrase", phrase)
			return true
		}
	}

	if d.classifier != nil && !d.state.IsClosing() {
		go func(text string) {
			farewell, err := d.classifier.IsFarewell(ctx, text)
			if err != nil {
				d.logf("closing classifier error", "error", err)
				return
			}
			if farewell {
				d.state.Set("classifier")
				d.logf("closing classifier vote", "text", text)
			}
		}(turnText)
	}

	return d.state.IsClosing()
}
