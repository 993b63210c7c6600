package post

import (
	"strings"
	"testing"

	"github.com/posty-app/post-api/internal/domain/flow"
)

func sampleData() flow.Data {
	return flow.Data{
		flow.StepObjective:  "💰 Vender produto/serviço",
		flow.StepPlatform:   "📸 Instagram",
		flow.StepAudience:   "Empreendedores de 25-40 anos",
		flow.StepTone:       "Motivacional, Confiante",
		flow.StepContent:    "Lançamento do nosso curso de produtividade",
		flow.StepAdditional: "",
	}
}

func TestFallbackContentAllPlatforms(t *testing.T) {
	platforms := []string{"📸 Instagram", "👥 Facebook", "💼 LinkedIn", "🐦 Twitter"}

	seen := map[string]bool{}
	for _, platform := range platforms {
		data := sampleData()
		data[flow.StepPlatform] = platform

		content := FallbackContent(data)
		if content == "" {
			t.Fatalf("empty fallback for %s", platform)
		}
		if !strings.Contains(content, "Lançamento do nosso curso de produtividade") {
			t.Fatalf("fallback for %s must interpolate the briefing content", platform)
		}
		if strings.Contains(content, "**") || strings.Contains(content, "##") {
			t.Fatalf("fallback for %s carries markdown: %q", platform, content)
		}
		if seen[content] {
			t.Fatalf("fallback templates must differ per platform")
		}
		seen[content] = true
	}
}

func TestFallbackContentEmptyBriefing(t *testing.T) {
	content := FallbackContent(flow.Data{})
	if content == "" {
		t.Fatalf("fallback must produce content even with no answers")
	}
}

func TestFallbackImageDescription(t *testing.T) {
	desc := FallbackImageDescription(sampleData())
	if !strings.Contains(desc, "no people") {
		t.Fatalf("description must forbid people: %q", desc)
	}
	if !strings.Contains(desc, "product") {
		t.Fatalf("sales objective should surface product keywords: %q", desc)
	}

	generic := FallbackImageDescription(flow.Data{})
	if !strings.Contains(generic, "professional") {
		t.Fatalf("unknown objective should use generic keywords: %q", generic)
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleData())

	for _, want := range []string{
		"Instagram",
		"Vender produto/serviço",
		"Empreendedores de 25-40 anos",
		"Motivacional, Confiante",
		"Lançamento do nosso curso de produtividade",
		"RESPOSTA OBRIGATÓRIA EM JSON",
		`"imageDescription"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, "Instruções especiais") {
		t.Fatalf("empty additional instructions must be omitted")
	}

	data := sampleData()
	data[flow.StepAdditional] = "Mencionar o desconto de 20%"
	if !strings.Contains(BuildPrompt(data), "Mencionar o desconto de 20%") {
		t.Fatalf("additional instructions must be included when present")
	}
}

func TestResolvePlatformDefaults(t *testing.T) {
	key, spec := ResolvePlatform("Orkut")
	if key != "Instagram" {
		t.Fatalf("unknown platform should default to Instagram, got %q", key)
	}
	if spec.MaxLength == "" {
		t.Fatalf("spec must be populated")
	}
}
