package flow

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultFlow(t *testing.T) {
	f := Default()

	if f.Len() != 7 {
		t.Fatalf("expected 7 steps, got %d", f.Len())
	}
	if f.Step(0).ID != StepObjective {
		t.Fatalf("expected first step %q, got %q", StepObjective, f.Step(0).ID)
	}
	if !f.IsTrigger(f.Len() - 1) {
		t.Fatalf("expected last step to be the generation trigger")
	}
	if f.IsTrigger(0) {
		t.Fatalf("first step must not be a trigger")
	}

	tone := f.Step(3)
	if tone.ID != StepTone || !tone.MultiSelect {
		t.Fatalf("expected multi-select tone step at index 3, got %+v", tone)
	}

	additional := f.Step(5)
	found := false
	for _, opt := range additional.Options {
		if opt == SkipSentinel {
			found = true
		}
	}
	if !found {
		t.Fatalf("additional step must offer the skip option")
	}
}

func TestLoadOverride(t *testing.T) {
	doc := `steps:
  - id: objective
    type: ai
    content: "Qual o objetivo?"
    options: ["A", "B"]
  - id: generate
    type: ai
    content: "Vamos gerar?"
    options: ["Gerar!"]
`
	path := filepath.Join(t.TempDir(), "flow.yml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Len() != 2 {
		t.Fatalf("expected 2 steps, got %d", f.Len())
	}
}

func TestValidateRejectsBadFlows(t *testing.T) {
	tests := []struct {
		name  string
		steps []Step
	}{
		{"empty", nil},
		{"single step", []Step{{ID: "a", Content: "x"}}},
		{"duplicate ids", []Step{{ID: "a", Content: "x"}, {ID: "a", Content: "y"}}},
		{"missing id", []Step{{Content: "x"}, {ID: "b", Content: "y"}}},
		{"two multi-selects", []Step{
			{ID: "a", Content: "x", MultiSelect: true, Options: []string{"1"}},
			{ID: "b", Content: "y", MultiSelect: true, Options: []string{"2"}},
			{ID: "c", Content: "z"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validate(tt.steps); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestDataAccessors(t *testing.T) {
	data := Data{
		StepObjective: "🎯 Vender produto/serviço",
		StepPlatform:  "📸 Instagram",
		StepAudience:  "Empreendedores",
	}

	if got := data.PlatformKey(); got != "Instagram" {
		t.Fatalf("PlatformKey = %q, want Instagram", got)
	}
	if got := data.ObjectiveKey(); got != "Vender produto/serviço" {
		t.Fatalf("ObjectiveKey = %q", got)
	}

	clone := data.Clone()
	clone[StepPlatform] = "🐦 Twitter"
	if data.PlatformKey() != "Instagram" {
		t.Fatalf("Clone must not share storage")
	}
}

func TestStripEmoji(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"📸 Instagram", "Instagram"},
		{"💼 LinkedIn", "LinkedIn"},
		{"no emoji", "no emoji"},
		{"🚀 Gerar post!", "Gerar post!"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripEmoji(tt.in); got != tt.want {
			t.Fatalf("StripEmoji(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
