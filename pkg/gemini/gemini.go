// Package gemini adapts the Gemini Live API to the session core. Each mode
// activation opens one Session carrying that mode's fully-resolved system
// instruction; the session is torn down before the next activation starts.
package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Gemini Live API WebSocket endpoint
	liveURL = "wss://generativelanguage.googleapis.com/ws/google.ai.generativelanguage.v1beta.GenerativeService.BidiGenerateContent"

	// Default model for Gemini Live
	defaultModel = "models/gemini-2.0-flash-exp"
)

// Audio sample rates across the two directions. The client sends 16kHz PCM16
// toward the backend; the backend produces 24kHz PCM16.
const (
	InputSampleRate  = 16000
	OutputSampleRate = 24000
)

// Common errors.
var (
	ErrMissingAPIKey = errors.New("gemini: missing API key")
	ErrClosed        = errors.New("gemini: session closed")
)

// Config holds everything needed to open one live session.
type Config struct {
	APIKey            string
	Model             string
	SystemInstruction string
	VoiceName         string
	LanguageCode      string
}

// EventKind discriminates the events a session produces.
type EventKind int

const (
	// EventAudio carries a chunk of 24kHz PCM16 model speech.
	EventAudio EventKind = iota
	// EventText carries a fragment of the model's turn as text.
	EventText
	// EventUserText carries a transcription of the user's speech.
	EventUserText
	// EventTurnComplete marks the end of a model turn.
	EventTurnComplete
)

// Event is one item of the session's response stream.
type Event struct {
	Kind  EventKind
	Audio []byte
	Text  string
}

// Session is one bidirectional stream to the Gemini Live API.
type Session struct {
	ws   *websocket.Conn
	wsMu sync.Mutex

	events chan Event
	done   chan struct{}

	mu     sync.Mutex
	closed bool
	err    error
}

// Open dials the Live API and configures the session. The returned session
// is ready to stream; callers must Close it on every exit path.
func Open(ctx context.Context, cfg Config) (*Session, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	url := fmt.Sprintf("%s?key=%s", liveURL, cfg.APIKey)
	ws, _, err := dialer.DialContext(ctx, url, header)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to connect: %w", err)
	}

	s := &Session{
		ws:     ws,
		events: make(chan Event, 64),
		done:   make(chan struct{}),
	}

	if err := s.sendJSON(buildSetup(model, cfg)); err != nil {
		ws.Close()
		return nil, fmt.Errorf("gemini: failed to configure session: %w", err)
	}

	go s.readLoop()
	return s, nil
}

// SendAudio forwards one chunk of 16kHz mono PCM16 to the model.
func (s *Session) SendAudio(pcm16 []byte) error {
	msg := map[string]any{
		"realtime_input": map[string]any{
			"media_chunks": []map[string]any{
				{
					"data":      base64.StdEncoding.EncodeToString(pcm16),
					"mime_type": "audio/pcm",
				},
			},
		},
	}
	return s.sendJSON(msg)
}

// SendText submits a text prompt as user content. With turnComplete the
// model begins responding immediately; session orchestration uses this for
// opening prompts and synthetic inactivity instructions.
func (s *Session) SendText(text string, turnComplete bool) error {
	msg := map[string]any{
		"client_content": map[string]any{
			"turns": []map[string]any{
				{
					"role":  "user",
					"parts": []map[string]any{{"text": text}},
				},
			},
			"turn_complete": turnComplete,
		},
	}
	return s.sendJSON(msg)
}

// Events returns the response stream. The channel closes when the session
// ends; check Err afterwards to distinguish failure from Close.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Err reports the terminal stream error, if any, after Events has closed.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close tears the session down. Safe to call from any goroutine and more
// than once.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()
	close(s.done)
	return s.ws.Close()
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) readLoop() {
	defer close(s.events)
	for {
		_, message, err := s.ws.ReadMessage()
		if err != nil {
			if !s.isClosed() {
				s.mu.Lock()
				s.err = err
				s.mu.Unlock()
			}
			return
		}

		events, err := parseServerMessage(message)
		if err != nil {
			// Unparseable frames are skipped, not fatal.
			continue
		}
		for _, ev := range events {
			select {
			case s.events <- ev:
			case <-s.done:
				// Consumer is gone; stop instead of blocking on a full
				// buffer.
				return
			}
		}
	}
}

func (s *Session) sendJSON(v any) error {
	s.wsMu.Lock()
	defer s.wsMu.Unlock()
	if s.isClosed() {
		return ErrClosed
	}
	return s.ws.WriteJSON(v)
}

// buildSetup produces the initial configuration message for a live session.
func buildSetup(model string, cfg Config) map[string]any {
	voiceName := cfg.VoiceName
	if voiceName == "" {
		voiceName = "Kore"
	}

	speechConfig := map[string]any{
		"voice_config": map[string]any{
			"prebuilt_voice_config": map[string]any{
				"voice_name": voiceName,
			},
		},
	}
	if cfg.LanguageCode != "" {
		speechConfig["language_code"] = cfg.LanguageCode
	}

	setup := map[string]any{
		"model": model,
		"generation_config": map[string]any{
			"response_modalities": []string{"AUDIO"},
			"speech_config":       speechConfig,
		},
		// Transcription of both directions; user transcriptions feed
		// answer scoring, model transcriptions feed the client captions.
		"input_audio_transcription":  map[string]any{},
		"output_audio_transcription": map[string]any{},
	}
	if cfg.SystemInstruction != "" {
		setup["system_instruction"] = map[string]any{
			"parts": []map[string]any{{"text": cfg.SystemInstruction}},
		}
	}
	return map[string]any{"setup": setup}
}

// parseServerMessage converts one server frame into zero or more events.
func parseServerMessage(data []byte) ([]Event, error) {
	var msg map[string]any
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("gemini: failed to parse message: %w", err)
	}

	// setupComplete and toolCall frames carry nothing for the relay.
	content, ok := msg["serverContent"].(map[string]any)
	if !ok {
		return nil, nil
	}

	var events []Event

	if modelTurn, ok := content["modelTurn"].(map[string]any); ok {
		if parts, ok := modelTurn["parts"].([]any); ok {
			for _, part := range parts {
				partMap, ok := part.(map[string]any)
				if !ok {
					continue
				}
				if inline, ok := partMap["inlineData"].(map[string]any); ok {
					mime, _ := inline["mimeType"].(string)
					if strings.HasPrefix(mime, "audio/pcm") {
						if data, ok := inline["data"].(string); ok {
							audio, err := base64.StdEncoding.DecodeString(data)
							if err == nil && len(audio) > 0 {
								events = append(events, Event{Kind: EventAudio, Audio: audio})
							}
						}
					}
				}
				if text, ok := partMap["text"].(string); ok && text != "" {
					events = append(events, Event{Kind: EventText, Text: text})
				}
			}
		}
	}

	if tr, ok := content["inputTranscription"].(map[string]any); ok {
		if text, ok := tr["text"].(string); ok && text != "" {
			events = append(events, Event{Kind: EventUserText, Text: text})
		}
	}

	if tr, ok := content["outputTranscription"].(map[string]any); ok {
		if text, ok := tr["text"].(string); ok && text != "" {
			events = append(events, Event{Kind: EventText, Text: text})
		}
	}

	if turnComplete, ok := content["turnComplete"].(bool); ok && turnComplete {
		events = append(events, Event{Kind: EventTurnComplete})
	}

	return events, nil
}
