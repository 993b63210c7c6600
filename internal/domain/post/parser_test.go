package post

import (
	"strings"
	"testing"
)

func TestParseGenerationStructured(t *testing.T) {
	raw := `{"content": "Post pronto! 🚀", "imageDescription": "Modern workspace with laptop", "searchKeywords": "workspace, laptop"}`

	result := ParseGeneration(raw)
	if result.Kind != GenerationStructured {
		t.Fatalf("expected structured result, got kind %d", result.Kind)
	}
	if result.Content != "Post pronto! 🚀" {
		t.Fatalf("content = %q", result.Content)
	}
	if result.ImageDescription != "Modern workspace with laptop" {
		t.Fatalf("imageDescription = %q", result.ImageDescription)
	}
	if result.SearchKeywords != "workspace, laptop" {
		t.Fatalf("searchKeywords = %q", result.SearchKeywords)
	}
}

func TestParseGenerationFencedJSON(t *testing.T) {
	raw := "Claro! Aqui está:\n```json\n{\"content\": \"Texto do post\", \"imageDescription\": \"Office desk\"}\n```"

	result := ParseGeneration(raw)
	if result.Kind != GenerationStructured {
		t.Fatalf("expected structured result from embedded JSON, got kind %d", result.Kind)
	}
	if result.Content != "Texto do post" {
		t.Fatalf("content = %q", result.Content)
	}
}

func TestParseGenerationEmbeddedObject(t *testing.T) {
	raw := `O modelo respondeu {"content": "Post extraído", "imageDescription": "Clean desk"} com sucesso.`

	result := ParseGeneration(raw)
	if result.Kind != GenerationStructured {
		t.Fatalf("expected structured result, got kind %d", result.Kind)
	}
	if result.Content != "Post extraído" {
		t.Fatalf("content = %q", result.Content)
	}
}

func TestParseGenerationMissingImageDescription(t *testing.T) {
	// Without both mandatory fields the payload is not structured.
	raw := `{"content": "Só o texto"}`

	result := ParseGeneration(raw)
	if result.Kind != GenerationPlainText {
		t.Fatalf("expected plain text salvage, got kind %d", result.Kind)
	}
	if result.Content != "Só o texto" {
		t.Fatalf("content = %q", result.Content)
	}
}

func TestParseGenerationPlainProse(t *testing.T) {
	raw := "Aqui está um post sobre produtividade para o seu Instagram!"

	result := ParseGeneration(raw)
	if result.Kind != GenerationPlainText {
		t.Fatalf("expected plain text, got kind %d", result.Kind)
	}
	if result.Content != raw {
		t.Fatalf("content = %q", result.Content)
	}
}

func TestParseGenerationSalvagesBrokenJSON(t *testing.T) {
	raw := `{"content": "Texto aproveitável", "imageDescription": "sem fechamento`

	result := ParseGeneration(raw)
	if result.Kind != GenerationPlainText {
		t.Fatalf("expected plain text salvage, got kind %d", result.Kind)
	}
	if !strings.Contains(result.Content, "Texto aproveitável") {
		t.Fatalf("salvage lost the content: %q", result.Content)
	}
	if strings.Contains(result.Content, "imageDescription") {
		t.Fatalf("salvage kept the JSON key wrapper: %q", result.Content)
	}
}

func TestFirstBalancedObjectHonorsStrings(t *testing.T) {
	s := `prefix {"a": "valor com } dentro", "b": {"c": 1}} suffix`
	got := firstBalancedObject(s)
	want := `{"a": "valor com } dentro", "b": {"c": 1}}`
	if got != want {
		t.Fatalf("firstBalancedObject = %q, want %q", got, want)
	}

	if got := firstBalancedObject("sem chaves"); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
	if got := firstBalancedObject(`{"never": "closes"`); got != "" {
		t.Fatalf("expected empty result for unclosed object, got %q", got)
	}
}
