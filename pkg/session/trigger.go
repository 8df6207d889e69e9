package session

import (
	"context"
	"time"

	"github.com/sameersinha-collab/echoproj/pkg/gemini"
	"github.com/sameersinha-collab/echoproj/pkg/protocol"
)

// triggerChunkSize is how much PCM16 each transport frame carries during
// trigger playback.
const triggerChunkSize = 4096

// runTrigger plays a pre-rendered greeting. There is no backend stream and
// no inbound audio: the clip streams out at roughly real-time pace, a
// turn_complete follows, and the connection drops back to idle.
func (m *Manager) runTrigger(ctx context.Context) Mode {
	name := m.params.Trigger
	message, err := m.deps.Triggers.Message(name, m.params.ChildName)
	if err != nil {
		m.log.Warn("unknown trigger", "trigger", name, "error", err)
		m.notify(protocol.NewError("unknown trigger " + name))
		return ModeIdle
	}

	profile := m.deps.Agents.VoiceProfile(m.params.VoiceProfile)
	audio, err := m.deps.Triggers.Audio(ctx, message, profile)
	if err != nil {
		m.log.Error("trigger audio failed", "trigger", name, "error", err)
		m.notify(protocol.NewError("could not play the greeting, please try again"))
		return ModeIdle
	}

	cfg := baseConfigData(ModeTrigger)
	cfg.Trigger = name
	m.notify(protocol.NewConfigNotification(cfg))

	// Pace the clip so the client buffer fills at playback speed instead of
	// all at once. 24kHz mono PCM16 is 48000 bytes per second.
	pace := time.Duration(triggerChunkSize) * time.Second / (gemini.OutputSampleRate * 2)
	ticker := time.NewTicker(pace)
	defer ticker.Stop()

	for off := 0; off < len(audio); off += triggerChunkSize {
		end := off + triggerChunkSize
		if end > len(audio) {
			end = len(audio)
		}
		if err := m.sink.SendAudio(audio[off:end]); err != nil {
			m.log.Debug("trigger audio send failed", "error", err)
			return ModeIdle
		}
		select {
		case <-ctx.Done():
			return ModeIdle
		case <-ticker.C:
		}
	}

	m.notify(protocol.NewTurnComplete())
	m.log.Info("trigger played", "trigger", name, "bytes", len(audio))
	return ModeIdle
}
