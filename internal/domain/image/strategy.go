package image

import "strings"

// Strategy picks where the candidate fan-out should lean for a given post.
type Strategy string

const (
	// StrategyGenerate favors AI generation for abstract or futuristic topics
	// that stock libraries cover poorly.
	StrategyGenerate Strategy = "generate"
	// StrategyStock favors real photography for everyday business scenes.
	StrategyStock Strategy = "stock"
	// StrategyCombined fans out over every source.
	StrategyCombined Strategy = "combined"
)

// ContentAnalysis is the outcome of inspecting post content before a search.
type ContentAnalysis struct {
	SearchQuery string
	Strategy    Strategy
}

// Topics that benefit from generated imagery.
var generativeConcepts = []string{
	"futuro", "inovação disruptiva", "transformação digital", "revolução",
	"conceito abstrato", "visualização de dados", "inteligência artificial",
	"realidade virtual", "blockchain", "metaverso", "cripto",
}

// Topics with plenty of good stock photography.
var stockConcepts = []string{
	"escritório", "reunião", "apresentação", "equipe", "trabalho",
	"pessoas", "networking", "evento", "conferência", "treinamento",
}

var searchTerms = []string{
	"tecnologia", "negócios", "marketing", "vendas", "equipe", "liderança",
	"inovação", "crescimento", "sucesso", "produtividade", "estratégia",
	"educação", "treinamento", "desenvolvimento", "carreira", "profissional",
}

// AnalyzeContent inspects post content and decides which sources to favor.
// Empty content falls back to a combined generic business search.
func AnalyzeContent(content string) ContentAnalysis {
	if strings.TrimSpace(content) == "" {
		return ContentAnalysis{SearchQuery: "business professional", Strategy: StrategyStock}
	}

	lower := strings.ToLower(content)
	analysis := ContentAnalysis{SearchQuery: extractSearchQuery(lower), Strategy: StrategyCombined}

	for _, concept := range generativeConcepts {
		if strings.Contains(lower, concept) {
			analysis.Strategy = StrategyGenerate
			return analysis
		}
	}
	for _, concept := range stockConcepts {
		if strings.Contains(lower, concept) {
			analysis.Strategy = StrategyStock
			return analysis
		}
	}
	return analysis
}

// extractSearchQuery picks up to two known search terms mentioned in the
// content, falling back to a generic business query.
func extractSearchQuery(lower string) string {
	var found []string
	for _, term := range searchTerms {
		if strings.Contains(lower, term) {
			found = append(found, term)
			if len(found) == 2 {
				break
			}
		}
	}
	if len(found) > 0 {
		return strings.Join(found, " ")
	}
	return "business professional"
}
