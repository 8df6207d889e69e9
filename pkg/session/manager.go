package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/sameersinha-collab/echoproj/internal/log"
	"github.com/sameersinha-collab/echoproj/pkg/agent"
	"github.com/sameersinha-collab/echoproj/pkg/protocol"
	"github.com/sameersinha-collab/echoproj/pkg/story"
)

// Deps are the process-wide services a session draws on. One Deps value is
// shared across all connections; everything mutable lives in the Manager.
type Deps struct {
	Opener     BackendOpener
	Agents     *agent.Registry
	Stories    *story.Library
	Triggers   TriggerSource
	Classifier Classifier

	APIKey    string
	LiveModel string

	Tuning   Tuning
	Timeouts Timeouts
}

// Manager owns one client connection's orchestration state. Exactly one
// mode is active at a time; switching modes tears the current activation
// down completely before the next one starts.
//
// Concurrency contract: Run is the only goroutine that touches params and
// mode. The transport feeds it through PushAudio, HandleControl and Exit,
// all safe from other goroutines.
type Manager struct {
	id   string
	deps Deps
	sink Sink
	log  *slog.Logger

	params Params
	mode   Mode

	audioQ   chan []byte
	ctrlQ    chan *protocol.Command
	exitC    chan struct{}
	exitOnce sync.Once
}

// audioQueueDepth bounds buffered client audio. At 16kHz PCM16 and typical
// client chunking this is several seconds of speech.
const audioQueueDepth = 256

// NewManager creates the session for one connection. initial is the mode
// requested at connect time; ModeIdle waits for a command.
func NewManager(deps Deps, sink Sink, params Params, initial Mode) *Manager {
	id := uuid.NewString()
	return &Manager{
		id:     id,
		deps:   deps,
		sink:   sink,
		log:    log.With("session", id),
		params: params,
		mode:   initial,
		audioQ: make(chan []byte, audioQueueDepth),
		ctrlQ:  make(chan *protocol.Command, 8),
		exitC:  make(chan struct{}),
	}
}

// ID returns the session identifier used in logs.
func (m *Manager) ID() string { return m.id }

// PushAudio enqueues one chunk of client audio. When the queue is full the
// oldest chunk is dropped; recent speech matters more than stale speech.
func (m *Manager) PushAudio(chunk []byte) {
	select {
	case m.audioQ <- chunk:
		return
	default:
	}
	select {
	case <-m.audioQ:
	default:
	}
	select {
	case m.audioQ <- chunk:
	default:
	}
}

// HandleControl hands a parsed client command to the control loop.
func (m *Manager) HandleControl(cmd *protocol.Command) {
	select {
	case m.ctrlQ <- cmd:
	case <-m.exitC:
	}
}

// Exit requests session shutdown. Safe to call any number of times from
// any goroutine; the transport calls it when the connection drops.
func (m *Manager) Exit() {
	m.exitOnce.Do(func() { close(m.exitC) })
}

func (m *Manager) notify(v any) {
	if err := m.sink.SendJSON(v); err != nil {
		m.log.Debug("notify failed", "error", err)
	}
}

// Run is the session control loop. It blocks until the context is
// cancelled or Exit is called, running at most one activation at a time.
func (m *Manager) Run(ctx context.Context) {
	m.log.Info("session started", "mode", m.mode, "child", m.params.ChildName)
	defer m.log.Info("session ended")

	if m.mode == ModeIdle {
		m.enterIdle()
	}

	for {
		if m.mode == ModeIdle {
			select {
			case <-ctx.Done():
				return
			case <-m.exitC:
				return
			case cmd := <-m.ctrlQ:
				// A rejected command leaves the session idle without
				// re-announcing a state the client already knows.
				if m.apply(cmd) && m.mode == ModeIdle {
					m.enterIdle()
				}
			}
			continue
		}

		actCtx, cancel := context.WithCancel(ctx)
		done := make(chan Mode, 1)
		go func(mode Mode) {
			next := ModeIdle
			defer func() {
				if r := recover(); r != nil {
					m.log.Error("activation panic", "mode", mode, "panic", r)
					next = ModeIdle
				}
				done <- next
			}()
			next = m.activate(actCtx, mode)
		}(m.mode)

		select {
		case next := <-done:
			cancel()
			if next == ModeIdle {
				m.enterIdle()
			} else {
				m.mode = next
			}

		case cmd := <-m.ctrlQ:
			// Mode switch preempts: tear the activation down fully before
			// the new mode starts. If the command leaves the session idle,
			// announce it, since the interrupted activation never did.
			cancel()
			<-done
			m.mode = ModeIdle
			m.apply(cmd)
			if m.mode == ModeIdle {
				m.enterIdle()
			}

		case <-m.exitC:
			cancel()
			<-done
			return

		case <-ctx.Done():
			cancel()
			<-done
			return
		}
	}
}

// activate runs one mode to completion and returns the follow-on mode.
func (m *Manager) activate(ctx context.Context, mode Mode) Mode {
	m.drainAudio()
	m.log.Info("mode activated", "mode", mode)

	if mode == ModeTrigger {
		return m.runTrigger(ctx)
	}
	act, err := m.buildActivation(mode)
	if err != nil {
		m.log.Warn("activation rejected", "mode", mode, "error", err)
		m.notify(protocol.NewError(err.Error()))
		return ModeIdle
	}
	return m.runLive(ctx, act)
}

// apply merges one command into the session state while no activation is
// running, reporting whether it was accepted. The caller owns any idle
// announcement; a rejected command only yields an error notification.
func (m *Manager) apply(cmd *protocol.Command) bool {
	switch cmd.Command {
	case protocol.CmdSwitchMode:
		mode, err := ParseMode(cmd.Mode)
		if err != nil {
			m.log.Warn("bad switch_mode", "mode", cmd.Mode)
			m.notify(protocol.NewError(err.Error()))
			return false
		}
		m.params.Apply(cmd)
		m.mode = mode
		return true

	case protocol.CmdTrigger:
		m.params.Apply(cmd)
		m.mode = ModeTrigger
		return true
	}
	return false
}

// enterIdle announces the idle state and discards any buffered audio so a
// later activation starts from silence.
func (m *Manager) enterIdle() {
	m.drainAudio()
	m.mode = ModeIdle
	m.notify(protocol.NewConfigNotification(baseConfigData(ModeIdle)))
}

func (m *Manager) drainAudio() {
	for {
		select {
		case <-m.audioQ:
		default:
			return
		}
	}
}
