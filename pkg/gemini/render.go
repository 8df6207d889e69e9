package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// renderTimeout bounds a one-shot render so a wedged backend can't hold a
// trigger activation forever.
const renderTimeout = 30 * time.Second

// RenderSpeech performs a one-shot text-to-audio capture: it opens a live
// session instructed to repeat the message verbatim, sends the message as a
// complete turn, and collects audio until the turn completes. Used to
// pre-render trigger greetings.
func RenderSpeech(ctx context.Context, cfg Config, message string) ([]byte, error) {
	cfg.SystemInstruction = "You are a parrot. Repeat the user's text exactly. No greetings. No conversation. No changes."

	ctx, cancel := context.WithTimeout(ctx, renderTimeout)
	defer cancel()

	session, err := Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	if err := session.SendText(message, true); err != nil {
		return nil, fmt.Errorf("gemini: render send: %w", err)
	}

	var audio []byte
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case ev, ok := <-session.Events():
			if !ok {
				if err := session.Err(); err != nil {
					return nil, fmt.Errorf("gemini: render stream: %w", err)
				}
				return nil, errors.New("gemini: render stream ended before turn complete")
			}
			switch ev.Kind {
			case EventAudio:
				audio = append(audio, ev.Audio...)
			case EventTurnComplete:
				if len(audio) == 0 {
					return nil, errors.New("gemini: render produced no audio")
				}
				return audio, nil
			}
		}
	}
}
