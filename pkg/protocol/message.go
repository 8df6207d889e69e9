// Package protocol defines the WebSocket message types exchanged with the
// client device. Binary frames carry raw PCM16 audio; text frames carry the
// JSON envelopes defined here.
package protocol

import (
	"encoding/json"
	"fmt"
)

// MessageType identifies the type of a JSON text frame.
type MessageType string

const (
	// Server → Client messages
	TypeConfig          MessageType = "config"           // Mode activation metadata
	TypeTranscript      MessageType = "transcript"       // AI speech as text
	TypeTurnComplete    MessageType = "turn_complete"    // AI finished a turn
	TypeQAComplete      MessageType = "qa_complete"      // Q&A session finished
	TypeIntroComplete   MessageType = "intro_complete"   // Intro session finished
	TypeStoppedComplete MessageType = "stopped_complete" // Check-in session finished
	TypeError           MessageType = "error"            // Server-side failure

	// Client → Server messages
	TypeCommand MessageType = "command" // Mode switch or trigger request
)

// Command verbs accepted inside a TypeCommand frame.
const (
	CmdSwitchMode = "switch_mode"
	CmdTrigger    = "trigger"
)

// Notification is a server → client JSON frame. Only the fields relevant to
// the message type are populated.
type Notification struct {
	Type    MessageType `json:"type"`
	Data    *ConfigData `json:"data,omitempty"`
	Text    string      `json:"text,omitempty"`
	Score   string      `json:"score,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ConfigData describes a mode activation to the client. It is sent exactly
// once at the start of every activation.
type ConfigData struct {
	Mode             string `json:"mode"`
	InputSampleRate  int    `json:"input_sample_rate"`
	OutputSampleRate int    `json:"output_sample_rate"`
	Channels         int    `json:"channels"`
	SampleWidth      int    `json:"sample_width"`

	// Mode-specific metadata
	StoryName      string `json:"story_name,omitempty"`
	ChapterName    string `json:"chapter_name,omitempty"`
	TotalQuestions int    `json:"total_questions,omitempty"`
	Trigger        string `json:"trigger,omitempty"`
}

// Command is a client → server control frame. switch_mode carries a target
// mode plus optional parameter overrides; trigger carries a trigger name.
type Command struct {
	Type    MessageType `json:"type"`
	Command string      `json:"command"`

	Mode          string `json:"mode,omitempty"`
	Agent         string `json:"agent,omitempty"`
	VoiceProfile  string `json:"voice_profile,omitempty"`
	ChildName     string `json:"child_name,omitempty"`
	StoryID       string `json:"story_id,omitempty"`
	ChapterID     string `json:"chapter_id,omitempty"`
	Trigger       string `json:"trigger,omitempty"`
	IsLastChapter *bool  `json:"is_last_chapter,omitempty"`
}

// ParseCommand parses a client text frame into a Command.
// Unknown verbs and malformed JSON are errors; callers drop and log them.
func ParseCommand(data []byte) (*Command, error) {
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return nil, fmt.Errorf("protocol: malformed command frame: %w", err)
	}
	if cmd.Type != TypeCommand {
		return nil, fmt.Errorf("protocol: unexpected frame type %q", cmd.Type)
	}
	switch cmd.Command {
	case CmdSwitchMode:
		if cmd.Mode == "" {
			return nil, fmt.Errorf("protocol: switch_mode without a mode")
		}
	case CmdTrigger:
		if cmd.Trigger == "" {
			return nil, fmt.Errorf("protocol: trigger without a trigger name")
		}
	default:
		return nil, fmt.Errorf("protocol: unknown command %q", cmd.Command)
	}
	return &cmd, nil
}

// Bytes returns the JSON-encoded notification.
func (n *Notification) Bytes() ([]byte, error) {
	return json.Marshal(n)
}
