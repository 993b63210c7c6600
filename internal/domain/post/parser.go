package post

import (
	"encoding/json"
	"regexp"
	"strings"
)

// GenerationResultKind tags how much structure was recovered from the model
// response. Resolved once at the API boundary, never re-checked downstream.
type GenerationResultKind int

const (
	// GenerationStructured means the full {content, imageDescription} pair
	// was parsed.
	GenerationStructured GenerationResultKind = iota
	// GenerationPlainText means only raw post text could be salvaged.
	GenerationPlainText
)

// GenerationResult is the tagged outcome of parsing a model response.
type GenerationResult struct {
	Kind             GenerationResultKind
	Content          string
	ImageDescription string
	SearchKeywords   string
}

type generationPayload struct {
	Content          string `json:"content"`
	ImageDescription string `json:"imageDescription"`
	SearchKeywords   string `json:"searchKeywords"`
}

var (
	jsonFenceRe      = regexp.MustCompile("```(?:json)?")
	contentPrefixRe  = regexp.MustCompile(`(?is)^\s*\{.*?"content":\s*"`)
	imageDescTrailRe = regexp.MustCompile(`(?is)",\s*"imageDescription":.*$`)
)

// ParseGeneration applies the layered extraction strategy: direct JSON parse,
// then the first balanced {...} substring, then fence/key stripping to
// salvage plain text. The caller supplies the fallback when even the salvage
// layer yields nothing.
func ParseGeneration(raw string) GenerationResult {
	trimmed := strings.TrimSpace(raw)

	if result, ok := parsePayload(trimmed); ok {
		return result
	}

	if candidate := firstBalancedObject(trimmed); candidate != "" {
		if result, ok := parsePayload(candidate); ok {
			return result
		}
		// A braced blob with a content field but broken JSON still carries
		// usable text.
		var partial generationPayload
		if err := json.Unmarshal([]byte(candidate), &partial); err == nil && partial.Content != "" {
			return GenerationResult{Kind: GenerationPlainText, Content: partial.Content}
		}
	}

	return GenerationResult{Kind: GenerationPlainText, Content: salvageText(trimmed)}
}

func parsePayload(s string) (GenerationResult, bool) {
	var payload generationPayload
	if err := json.Unmarshal([]byte(s), &payload); err != nil {
		return GenerationResult{}, false
	}
	if payload.Content == "" || payload.ImageDescription == "" {
		return GenerationResult{}, false
	}
	return GenerationResult{
		Kind:             GenerationStructured,
		Content:          payload.Content,
		ImageDescription: strings.TrimSpace(payload.ImageDescription),
		SearchKeywords:   strings.TrimSpace(payload.SearchKeywords),
	}, true
}

// firstBalancedObject returns the first balanced {...} substring, honoring
// JSON string quoting, or "" when none closes.
func firstBalancedObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// salvageText strips markdown fences and JSON key wrappers so a prose
// response still yields post text.
func salvageText(raw string) string {
	out := jsonFenceRe.ReplaceAllString(raw, "")
	out = contentPrefixRe.ReplaceAllString(out, "")
	out = imageDescTrailRe.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}
