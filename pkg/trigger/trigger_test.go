package trigger

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sameersinha-collab/echoproj/pkg/agent"
)

func TestRegistryMessage(t *testing.T) {
	r := NewRegistry()

	msg, err := r.Message("Morning Wake Up", "Asha")
	if err != nil {
		t.Fatalf("Message: %v", err)
	}
	if !strings.Contains(msg, "Asha") {
		t.Errorf("child name not substituted: %q", msg)
	}
	if strings.Contains(msg, "{child_name}") {
		t.Errorf("placeholder left in message: %q", msg)
	}

	if _, err := r.Message("Nap Time", "Asha"); err == nil {
		t.Error("expected error for unknown trigger")
	}
}

func TestRegistryAdd(t *testing.T) {
	r := NewRegistry()
	r.Add("Nap Time", "Sweet dreams, {child_name}!")

	msg, err := r.Message("Nap Time", "Ravi")
	if err != nil {
		t.Fatalf("Message: %v", err)
	}
	if msg != "Sweet dreams, Ravi!" {
		t.Errorf("message = %q", msg)
	}

	found := false
	for _, name := range r.Names() {
		if name == "Nap Time" {
			found = true
		}
	}
	if !found {
		t.Error("added trigger missing from Names")
	}
}

func TestCacheRendersOnce(t *testing.T) {
	renders := 0
	cache, err := OpenCache("", func(ctx context.Context, profile agent.VoiceProfile, message string) ([]byte, error) {
		renders++
		return []byte("pcm:" + message + ":" + profile.VoiceName), nil
	})
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	defer cache.Close()

	ctx := context.Background()
	profile := agent.VoiceProfile{VoiceName: "Kore", LanguageCode: "en-IN"}

	first, err := cache.GetOrRender(ctx, "Good morning!", profile)
	if err != nil {
		t.Fatalf("GetOrRender: %v", err)
	}
	second, err := cache.GetOrRender(ctx, "Good morning!", profile)
	if err != nil {
		t.Fatalf("GetOrRender warm: %v", err)
	}
	if string(first) != string(second) {
		t.Error("cached audio differs from rendered audio")
	}
	if renders != 1 {
		t.Errorf("expected 1 render, got %d", renders)
	}

	// A different voice is a different cache entry.
	if _, err := cache.GetOrRender(ctx, "Good morning!", agent.VoiceProfile{VoiceName: "Puck"}); err != nil {
		t.Fatalf("GetOrRender other voice: %v", err)
	}
	if renders != 2 {
		t.Errorf("expected 2 renders after voice change, got %d", renders)
	}
}

func TestCacheRenderError(t *testing.T) {
	wantErr := errors.New("backend down")
	cache, err := OpenCache("", func(ctx context.Context, profile agent.VoiceProfile, message string) ([]byte, error) {
		return nil, wantErr
	})
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	defer cache.Close()

	if _, err := cache.GetOrRender(context.Background(), "hi", agent.VoiceProfile{}); !errors.Is(err, wantErr) {
		t.Errorf("expected render error, got %v", err)
	}
}

func TestServiceWiring(t *testing.T) {
	cache, err := OpenCache("", func(ctx context.Context, profile agent.VoiceProfile, message string) ([]byte, error) {
		return []byte(message), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	svc := NewService(NewRegistry(), cache)

	msg, err := svc.Message("Story Time", "Asha")
	if err != nil {
		t.Fatalf("Message: %v", err)
	}
	audio, err := svc.Audio(context.Background(), msg, agent.VoiceProfile{VoiceName: "Kore"})
	if err != nil {
		t.Fatalf("Audio: %v", err)
	}
	if string(audio) != msg {
		t.Errorf("audio = %q, want %q", audio, msg)
	}
}
