package session

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// Tuning holds the empirically-maintained vocabularies for closing-phrase
// detection and the metadata filter. Membership is tuning data, not an
// architectural contract: deployments override it from YAML.
type Tuning struct {
	// MetadataPrefixes drop any text chunk that begins with one of these.
	MetadataPrefixes []string `yaml:"metadata_prefixes"`

	// MetadataPhrases drop any text chunk containing one of these
	// (case-insensitive).
	MetadataPhrases []string `yaml:"metadata_phrases"`

	// ClosingPhrases per mode, matched case-insensitively against the
	// accumulated text of a turn.
	ClosingPhrases map[Mode][]string `yaml:"closing_phrases"`

	// MaxQuestions caps how many questions one Q&A activation asks.
	MaxQuestions int `yaml:"max_questions"`
}

// DefaultTuning returns the built-in vocabularies.
func DefaultTuning() Tuning {
	return Tuning{
		MetadataPrefixes: []string{"**", "("},
		MetadataPhrases: []string{
			"i will ask",
			"let me ask",
			"i'll ask",
			"next question is",
		},
		ClosingPhrases: map[Mode][]string{
			ModeQA: {
				"that was so much fun",
				"see you next time",
				"bye",
			},
			ModeIntro: {
				"here we go",
				"let's begin",
				"let's start",
			},
			ModeStopped: {
				"see you when it's done",
				"bye for now",
				"keep listening",
			},
		},
		MaxQuestions: 4,
	}
}

// LoadTuning merges a YAML file over the defaults. Lists in the file
// replace the corresponding default lists wholesale.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("session: read tuning %s: %w", path, err)
	}
	var file Tuning
	if err := yaml.Unmarshal(data, &file); err != nil {
		return t, fmt.Errorf("session: parse tuning %s: %w", path, err)
	}
	if len(file.MetadataPrefixes) > 0 {
		t.MetadataPrefixes = file.MetadataPrefixes
	}
	if len(file.MetadataPhrases) > 0 {
		t.MetadataPhrases = file.MetadataPhrases
	}
	for mode, phrases := range file.ClosingPhrases {
		t.ClosingPhrases[mode] = phrases
	}
	if file.MaxQuestions > 0 {
		t.MaxQuestions = file.MaxQuestions
	}
	return t, nil
}

// Timeouts are the per-mode inactivity thresholds. A zero Prompt disables
// the nudge stage; Terminate is always enforced for live modes.
type Timeouts struct {
	Chat             time.Duration
	QA               time.Duration
	Intro            time.Duration
	StoppedPrompt    time.Duration
	StoppedTerminate time.Duration

	// Grace is how long a timeout termination waits for the forced
	// goodbye audio before cancelling the activation.
	Grace time.Duration
}

// DefaultTimeouts returns production thresholds.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Chat:             60 * time.Second,
		QA:               20 * time.Second,
		Intro:            45 * time.Second,
		StoppedPrompt:    30 * time.Second,
		StoppedTerminate: 60 * time.Second,
		Grace:            8 * time.Second,
	}
}
