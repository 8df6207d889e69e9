package session

import (
	"sync"
	"time"
)

// metricsCollector tracks per-activation latency and volume: time from a
// turn boundary to the first model audio of the next turn, plus audio
// chunk counts in both directions. Goroutine-safe; the relays update it
// from their own goroutines.
type metricsCollector struct {
	mu sync.Mutex

	turnStart  time.Time
	audioSeen  bool
	audioIn    int
	audioOut   int
	turns      int
	totalFirst time.Duration
	measured   int
}

func newMetricsCollector() *metricsCollector {
	return &metricsCollector{turnStart: time.Now()}
}

// AudioIn counts one client audio chunk forwarded to the backend.
func (c *metricsCollector) AudioIn() {
	c.mu.Lock()
	c.audioIn++
	c.mu.Unlock()
}

// AudioOut counts one model audio chunk; the first chunk after a turn
// boundary records the response latency for that turn.
func (c *metricsCollector) AudioOut() {
	c.mu.Lock()
	c.audioOut++
	if !c.audioSeen {
		c.audioSeen = true
		c.totalFirst += time.Since(c.turnStart)
		c.measured++
	}
	c.mu.Unlock()
}

// TurnDone marks a turn boundary and arms the next first-audio measurement.
func (c *metricsCollector) TurnDone() {
	c.mu.Lock()
	c.turns++
	c.turnStart = time.Now()
	c.audioSeen = false
	c.mu.Unlock()
}

// Summary reports the activation totals and the mean first-audio latency.
func (c *metricsCollector) Summary() (turns, audioIn, audioOut int, avgFirstAudio time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.measured > 0 {
		avgFirstAudio = c.totalFirst / time.Duration(c.measured)
	}
	return c.turns, c.audioIn, c.audioOut, avgFirstAudio
}
