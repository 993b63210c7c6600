package image

import "testing"

func TestAnalyzeContent(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		strategy  Strategy
		query     string
	}{
		{"abstract topic", "O futuro da inteligência artificial no marketing", StrategyGenerate, "marketing"},
		{"everyday scene", "Dicas para conduzir uma reunião de equipe produtiva", StrategyStock, "equipe"},
		{"mixed topic", "Como aumentei minhas vendas com estratégia", StrategyCombined, "vendas estratégia"},
		{"empty content", "", StrategyStock, "business professional"},
		{"no known terms", "Bom dia a todos!", StrategyCombined, "business professional"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := AnalyzeContent(tt.content)
			if analysis.Strategy != tt.strategy {
				t.Fatalf("strategy = %q, want %q", analysis.Strategy, tt.strategy)
			}
			if analysis.SearchQuery != tt.query {
				t.Fatalf("query = %q, want %q", analysis.SearchQuery, tt.query)
			}
		})
	}
}
