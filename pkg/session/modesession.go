package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sameersinha-collab/echoproj/pkg/gemini"
	"github.com/sameersinha-collab/echoproj/pkg/protocol"
)

// runLive executes one live mode activation end to end: open the backend,
// announce the config, run the relays until the activation terminates, and
// report the follow-on mode. The backend stream never outlives this call.
func (m *Manager) runLive(ctx context.Context, act *activation) Mode {
	profile := m.deps.Agents.VoiceProfile(m.params.VoiceProfile)
	backend, err := m.deps.Opener(ctx, gemini.Config{
		APIKey:            m.deps.APIKey,
		Model:             m.deps.LiveModel,
		SystemInstruction: act.system,
		VoiceName:         profile.VoiceName,
		LanguageCode:      profile.LanguageCode,
	})
	if err != nil {
		m.log.Error("backend open failed", "mode", act.spec.mode, "error", err)
		m.notify(protocol.NewError("could not start the conversation, please try again"))
		return ModeIdle
	}
	defer backend.Close()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	m.notify(protocol.NewConfigNotification(act.config))

	if err := backend.SendText(act.opening, true); err != nil {
		m.log.Error("opening turn send failed", "mode", act.spec.mode, "error", err)
		m.notify(protocol.NewError("could not start the conversation, please try again"))
		return ModeIdle
	}

	state := newClosingState()
	logf := func(msg string, args ...any) {
		m.log.Info(msg, append([]any{"mode", act.spec.mode}, args...)...)
	}

	// Chat has no closing vocabulary and ends by timeout alone, so it gets
	// no classifier vote either.
	var classifier Classifier
	if act.spec.complete != "" {
		classifier = m.deps.Classifier
	}
	detector := newClosingDetector(act.spec.phrases, classifier, state, logf)
	metrics := newMetricsCollector()

	var wg sync.WaitGroup

	// Inbound relay: client audio toward the backend. Chunks arriving after
	// termination begins are dropped so a goodbye is never interrupted.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-runCtx.Done():
				return
			case chunk := <-m.audioQ:
				if state.IsClosing() {
					continue
				}
				if err := backend.SendAudio(chunk); err != nil {
					m.log.Debug("audio forward failed", "error", err)
					return
				}
				metrics.AudioIn()
			}
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		monitor := &activityMonitor{
			state:     state,
			backend:   backend,
			prompt:    act.spec.prompt,
			terminate: act.spec.terminate,
			grace:     m.deps.Timeouts.Grace,
			nudge:     act.spec.nudge,
			goodbye:   act.spec.goodbye,
			cancel:    cancel,
			logf:      logf,
		}
		monitor.Run(runCtx)
	}()

	next := m.runOutbound(runCtx, act, backend, state, detector, metrics)

	cancel()
	wg.Wait()

	turns, in, out, firstAudio := metrics.Summary()
	m.log.Info("activation finished", "mode", act.spec.mode,
		"turns", turns, "audio_in", in, "audio_out", out,
		"avg_first_audio", firstAudio)
	return next
}

// runOutbound is the activation's main loop: it consumes backend events,
// forwards audio and filtered transcripts, scores Q&A answers on turn
// boundaries, and emits exactly one terminal envelope when the activation
// ends on its own terms.
func (m *Manager) runOutbound(ctx context.Context, act *activation, backend Backend, state *closingState, detector *closingDetector, metrics *metricsCollector) Mode {
	filter := newMetadataFilter(m.deps.Tuning)

	var (
		turnText    strings.Builder
		pendingUser strings.Builder
		terminal    sync.Once
		wrapupSent  bool
	)

	emitTerminal := func() {
		terminal.Do(func() {
			switch act.spec.complete {
			case "":
				m.notify(protocol.NewTurnComplete())
			case protocol.TypeQAComplete:
				score := ""
				if act.qa != nil {
					score = act.qa.Score()
				}
				m.notify(protocol.NewComplete(protocol.TypeQAComplete, score))
			default:
				m.notify(protocol.NewComplete(act.spec.complete, ""))
			}
			m.log.Info("mode complete", "mode", act.spec.mode, "closed_by", state.ClosedBy())
		})
	}

	for {
		select {
		case <-ctx.Done():
			// A timeout termination may have been cancelled before the
			// goodbye turn completed; the client still gets its terminal.
			if state.IsClosing() {
				emitTerminal()
			}
			return ModeIdle

		case ev, ok := <-backend.Events():
			if !ok {
				if state.IsClosing() {
					emitTerminal()
					return ModeIdle
				}
				if err := backend.Err(); err != nil {
					m.log.Error("backend stream failed", "mode", act.spec.mode, "error", err)
					m.notify(protocol.NewError("the conversation was interrupted"))
				}
				return ModeIdle
			}

			switch ev.Kind {
			case gemini.EventAudio:
				state.Touch()
				metrics.AudioOut()
				if err := m.sink.SendAudio(ev.Audio); err != nil {
					m.log.Debug("audio send failed", "error", err)
				}

			case gemini.EventText:
				state.Touch()
				turnText.WriteString(ev.Text)
				if filter.Allow(ev.Text) {
					m.notify(protocol.NewTranscript(ev.Text))
				}

			case gemini.EventUserText:
				state.Touch()
				pendingUser.WriteString(ev.Text)

			case gemini.EventTurnComplete:
				turn := state.TurnDone()
				metrics.TurnDone()

				// The user speech transcribed during this turn answers the
				// question asked on the previous one.
				if act.qa != nil && turn > 1 && !act.qa.Done() {
					answer := strings.TrimSpace(pendingUser.String())
					if answer != "" {
						q := act.qa.Current()
						correct := act.qa.Record(answer)
						m.log.Info("answer recorded",
							"question", q.Number, "correct", correct)
						if act.qa.Done() && !wrapupSent {
							wrapupSent = true
							wrapup := fmt.Sprintf(
								"All questions are done. Tell %s their score: %q. Then say: %q Then say goodbye warmly, ending with 'That was so much fun! Bye bye!'",
								m.params.ChildName, act.qa.Score(), act.qa.Praise())
							if err := backend.SendText(wrapup, true); err != nil {
								m.log.Error("wrapup send failed", "error", err)
							}
						}
					}
				}
				pendingUser.Reset()

				text := turnText.String()
				turnText.Reset()

				if detector.CheckTurn(ctx, text, turn) {
					emitTerminal()
					return ModeIdle
				}
				m.notify(protocol.NewTurnComplete())
			}
		}
	}
}
