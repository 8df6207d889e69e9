package protocol

import (
	"encoding/json"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "switch mode",
			data: `{"type":"command","command":"switch_mode","mode":"chat","child_name":"Asha"}`,
		},
		{
			name: "switch mode with story params",
			data: `{"type":"command","command":"switch_mode","mode":"qa","story_id":"cinderella","chapter_id":"2","is_last_chapter":false}`,
		},
		{
			name: "trigger",
			data: `{"type":"command","command":"trigger","trigger":"Morning Wake Up"}`,
		},
		{
			name:    "switch mode without mode",
			data:    `{"type":"command","command":"switch_mode"}`,
			wantErr: true,
		},
		{
			name:    "trigger without name",
			data:    `{"type":"command","command":"trigger"}`,
			wantErr: true,
		},
		{
			name:    "unknown command",
			data:    `{"type":"command","command":"dance"}`,
			wantErr: true,
		},
		{
			name:    "wrong frame type",
			data:    `{"type":"transcript","command":"switch_mode","mode":"chat"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			data:    `{"type":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCommand: %v", err)
			}
			if cmd.Type != TypeCommand {
				t.Errorf("type = %q", cmd.Type)
			}
		})
	}
}

func TestParseCommandIsLastChapter(t *testing.T) {
	cmd, err := ParseCommand([]byte(`{"type":"command","command":"switch_mode","mode":"stopped","is_last_chapter":true}`))
	if err != nil {
		t.Fatal(err)
	}
	if cmd.IsLastChapter == nil || !*cmd.IsLastChapter {
		t.Error("expected is_last_chapter true")
	}

	cmd, err = ParseCommand([]byte(`{"type":"command","command":"switch_mode","mode":"stopped"}`))
	if err != nil {
		t.Fatal(err)
	}
	if cmd.IsLastChapter != nil {
		t.Error("expected absent is_last_chapter to stay nil")
	}
}

func TestNotificationEncoding(t *testing.T) {
	n := NewConfigNotification(ConfigData{
		Mode:             "qa",
		InputSampleRate:  16000,
		OutputSampleRate: 24000,
		Channels:         1,
		SampleWidth:      2,
		StoryName:        "Cinderella",
		TotalQuestions:   4,
	})
	data, err := n.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got["type"] != "config" {
		t.Errorf("type = %v", got["type"])
	}
	inner, ok := got["data"].(map[string]any)
	if !ok {
		t.Fatal("missing data object")
	}
	if inner["mode"] != "qa" {
		t.Errorf("mode = %v", inner["mode"])
	}
	if inner["total_questions"] != float64(4) {
		t.Errorf("total_questions = %v", inner["total_questions"])
	}

	// Omitted fields must not leak into unrelated notifications.
	data, err = NewTurnComplete().Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"type":"turn_complete"}` {
		t.Errorf("turn_complete encoding = %s", data)
	}

	data, err = NewComplete(TypeQAComplete, "3 out of 4 (75%)").Bytes()
	if err != nil {
		t.Fatal(err)
	}
	var qa map[string]any
	if err := json.Unmarshal(data, &qa); err != nil {
		t.Fatal(err)
	}
	if qa["score"] != "3 out of 4 (75%)" {
		t.Errorf("score = %v", qa["score"])
	}
}
