// Package session implements the per-connection orchestration core: a
// control loop that multiplexes one client connection across mutually
// exclusive interaction modes, each backed by at most one live backend
// stream at a time.
package session

import (
	"fmt"

	"github.com/sameersinha-collab/echoproj/pkg/agent"
	"github.com/sameersinha-collab/echoproj/pkg/protocol"
)

// Mode is one of the mutually-exclusive interaction behaviors.
type Mode string

const (
	ModeIdle    Mode = "idle"
	ModeChat    Mode = "chat"
	ModeQA      Mode = "qa"
	ModeIntro   Mode = "intro"
	ModeStopped Mode = "stopped"
	ModeTrigger Mode = "trigger"
)

// ParseMode validates a mode string from the client.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeIdle, ModeChat, ModeQA, ModeIntro, ModeStopped, ModeTrigger:
		return Mode(s), nil
	}
	return "", fmt.Errorf("session: unknown mode %q", s)
}

// Params are the typed connection parameters. They arrive with the initial
// connection and can be partially overridden by switch_mode commands.
type Params struct {
	Agent         string
	VoiceProfile  string
	ChildName     string
	StoryID       string
	ChapterID     string
	Trigger       string
	IsLastChapter bool
}

// DefaultParams returns the parameter defaults applied at connect time.
func DefaultParams() Params {
	return Params{
		Agent:        "default",
		VoiceProfile: agent.DefaultVoiceProfile,
		ChildName:    "friend",
		StoryID:      "cinderella",
		ChapterID:    "1",
	}
}

// Apply merges a command's parameter overlay into the params. Empty fields
// leave the existing values untouched.
func (p *Params) Apply(cmd *protocol.Command) {
	if cmd.Agent != "" {
		p.Agent = cmd.Agent
	}
	if cmd.VoiceProfile != "" {
		p.VoiceProfile = cmd.VoiceProfile
	}
	if cmd.ChildName != "" {
		p.ChildName = cmd.ChildName
	}
	if cmd.StoryID != "" {
		p.StoryID = cmd.StoryID
	}
	if cmd.ChapterID != "" {
		p.ChapterID = cmd.ChapterID
	}
	if cmd.Trigger != "" {
		p.Trigger = cmd.Trigger
	}
	if cmd.IsLastChapter != nil {
		p.IsLastChapter = *cmd.IsLastChapter
	}
}
