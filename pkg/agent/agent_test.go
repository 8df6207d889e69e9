package agent

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRegistryFallbacks(t *testing.T) {
	r := NewRegistry()

	if got := r.Agent("default"); got.Name != "Wippi" {
		t.Errorf("default agent name = %q, want Wippi", got.Name)
	}
	if got := r.Agent("nonexistent"); got.Name != "Wippi" {
		t.Errorf("unknown agent should fall back to default, got %q", got.Name)
	}

	p := r.VoiceProfile("indian_female")
	if p.VoiceName != "Kore" || p.LanguageCode != "en-IN" {
		t.Errorf("indian_female = %+v", p)
	}
	if got := r.VoiceProfile("nonexistent"); got != p {
		t.Errorf("unknown profile should fall back to default, got %+v", got)
	}
}

func TestRegistryBuiltins(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"default", "companion", "tutor", "hindi", "story_qa", "story_qa_end"} {
		found := false
		for _, have := range r.Agents() {
			if have == name {
				found = true
			}
		}
		if !found {
			t.Errorf("builtin agent %q missing", name)
		}
	}

	if len(r.VoiceProfiles()) < 5 {
		t.Errorf("expected several builtin voice profiles, got %d", len(r.VoiceProfiles()))
	}
}

func TestLoadFile(t *testing.T) {
	yaml := `
agents:
  pirate:
    name: Captain Wippi
    system_prompt: You are a friendly pirate.
  default:
    name: Override
    system_prompt: Replaced prompt.
voice_profiles:
  pirate_voice:
    voice_name: Fenrir
    language_code: en-US
`
	path := filepath.Join(t.TempDir(), "agents.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	if err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if got := r.Agent("pirate"); got.Name != "Captain Wippi" {
		t.Errorf("pirate agent = %+v", got)
	}
	if got := r.Agent("default"); got.Name != "Override" {
		t.Errorf("expected default replaced, got %q", got.Name)
	}
	if got := r.Agent("companion"); got.Name != "Companion" {
		t.Errorf("expected builtin companion untouched, got %q", got.Name)
	}
	if got := r.VoiceProfile("pirate_voice"); got.VoiceName != "Fenrir" {
		t.Errorf("pirate_voice = %+v", got)
	}
}

func TestLoadFileMissing(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadFile("/nonexistent/agents.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
