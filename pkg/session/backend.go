package session

import (
	"context"

	"github.com/sameersinha-collab/echoproj/pkg/agent"
	"github.com/sameersinha-collab/echoproj/pkg/gemini"
)

// Backend is one bidirectional stream to the conversational oracle. A fresh
// backend is opened per mode activation and fully torn down on mode change.
// *gemini.Session satisfies this; tests substitute fakes.
type Backend interface {
	SendAudio(pcm16 []byte) error
	SendText(text string, turnComplete bool) error
	Events() <-chan gemini.Event
	Err() error
	Close() error
}

// BackendOpener opens a backend stream for one activation. Open failures
// are surfaced to the control loop and never retried within the activation.
type BackendOpener func(ctx context.Context, cfg gemini.Config) (Backend, error)

// TriggerSource resolves trigger names to greeting messages and their
// pre-rendered audio.
type TriggerSource interface {
	Message(name, childName string) (string, error)
	Audio(ctx context.Context, message string, profile agent.VoiceProfile) ([]byte, error)
}

// Sink is the transport-facing output of a connection. Implementations must
// be safe for use from the activation goroutines.
type Sink interface {
	SendAudio(chunk []byte) error
	SendJSON(v any) error
}
