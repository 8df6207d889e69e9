// Package agent defines the conversational personas and voice profiles used
// when opening backend sessions. The built-in set can be extended or replaced
// from a YAML file at startup.
package agent

import (
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-yaml"
)

// VoiceProfile maps a friendly profile name to a Gemini voice configuration.
type VoiceProfile struct {
	VoiceName    string `yaml:"voice_name" json:"voice_name"`
	LanguageCode string `yaml:"language_code" json:"language_code"`
}

// Agent is a conversational persona with its system prompt.
type Agent struct {
	Name         string `yaml:"name" json:"name"`
	SystemPrompt string `yaml:"system_prompt" json:"system_prompt"`
}

// Default keys used when a lookup misses.
const (
	DefaultAgent        = "default"
	DefaultVoiceProfile = "indian_female"
)

// Registry holds the known agents and voice profiles.
type Registry struct {
	agents   map[string]Agent
	profiles map[string]VoiceProfile
}

// NewRegistry returns a registry populated with the built-in agents and
// voice profiles.
func NewRegistry() *Registry {
	return &Registry{
		agents:   builtinAgents(),
		profiles: builtinVoiceProfiles(),
	}
}

// registryFile is the YAML shape accepted by LoadFile.
type registryFile struct {
	Agents        map[string]Agent        `yaml:"agents"`
	VoiceProfiles map[string]VoiceProfile `yaml:"voice_profiles"`
}

// LoadFile merges agents and voice profiles from a YAML file over the
// built-in set. Entries with the same key replace the built-in ones.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("agent: read %s: %w", path, err)
	}
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("agent: parse %s: %w", path, err)
	}
	for name, a := range file.Agents {
		r.agents[name] = a
	}
	for name, p := range file.VoiceProfiles {
		r.profiles[name] = p
	}
	return nil
}

// Agent returns the agent for name, falling back to the default persona.
func (r *Registry) Agent(name string) Agent {
	if a, ok := r.agents[name]; ok {
		return a
	}
	return r.agents[DefaultAgent]
}

// VoiceProfile returns the voice profile for name, falling back to the
// default profile.
func (r *Registry) VoiceProfile(name string) VoiceProfile {
	if p, ok := r.profiles[name]; ok {
		return p
	}
	return r.profiles[DefaultVoiceProfile]
}

// Agents lists all known agent names, sorted.
func (r *Registry) Agents() []string {
	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VoiceProfiles lists all known voice profile names, sorted.
func (r *Registry) VoiceProfiles() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func builtinVoiceProfiles() map[string]VoiceProfile {
	return map[string]VoiceProfile{
		"indian_female":  {VoiceName: "Kore", LanguageCode: "en-IN"},
		"indian_male":    {VoiceName: "Puck", LanguageCode: "en-IN"},
		"hindi_female":   {VoiceName: "Kore", LanguageCode: "hi-IN"},
		"hindi_male":     {VoiceName: "Puck", LanguageCode: "hi-IN"},
		"us_female":      {VoiceName: "Kore", LanguageCode: "en-US"},
		"us_male":        {VoiceName: "Puck", LanguageCode: "en-US"},
		"british_female": {VoiceName: "Aoede", LanguageCode: "en-GB"},
		"british_male":   {VoiceName: "Charon", LanguageCode: "en-GB"},
		"deep_male":      {VoiceName: "Fenrir", LanguageCode: "en-US"},
	}
}
