package image

import (
	"regexp"
	"strings"

	"github.com/posty-app/post-api/internal/domain/flow"
)

// descriptionMapping translates descriptive prose into a provider-friendly
// search term. The table is ordered: earlier entries win when more than two
// patterns match.
type descriptionMapping struct {
	pattern *regexp.Regexp
	term    string
}

var descriptionMappings = []descriptionMapping{
	{regexp.MustCompile(`(?i)workspace|desk|office|computer|laptop`), "workspace office"},
	{regexp.MustCompile(`(?i)modern|contemporary|clean|minimalist`), "modern workspace"},
	{regexp.MustCompile(`(?i)professional|business|corporate`), "professional business"},
	{regexp.MustCompile(`(?i)coffee|cup|mug`), "coffee workspace"},
	{regexp.MustCompile(`(?i)notebook|notes|planning`), "notebook planning"},
	{regexp.MustCompile(`(?i)plants|green|nature`), "office plants"},
	{regexp.MustCompile(`(?i)documents|papers|files`), "business documents"},
	{regexp.MustCompile(`(?i)natural lighting|window|bright`), "natural light office"},
	{regexp.MustCompile(`(?i)warm|cozy|comfortable`), "cozy workspace"},
	{regexp.MustCompile(`(?i)organized|neat|tidy`), "organized office"},
	{regexp.MustCompile(`(?i)technology|digital|screens`), "technology office"},
	{regexp.MustCompile(`(?i)smartphone|phone|mobile`), "mobile technology"},
	{regexp.MustCompile(`(?i)innovation|futuristic`), "innovation technology"},
	{regexp.MustCompile(`(?i)white|light|bright`), "bright office"},
	{regexp.MustCompile(`(?i)wood|wooden|natural`), "wooden desk office"},
	{regexp.MustCompile(`(?i)black|dark|contrast`), "modern office"},
	{regexp.MustCompile(`(?i)meeting|collaboration|team`), "business meeting"},
	{regexp.MustCompile(`(?i)presentation|display|screen`), "business presentation"},
	{regexp.MustCompile(`(?i)creative|design|art`), "creative workspace"},
	{regexp.MustCompile(`(?i)learning|education|study`), "study workspace"},
}

var stopWords = map[string]bool{
	"with": true, "and": true, "the": true, "for": true, "that": true,
	"this": true, "from": true, "they": true, "have": true, "been": true,
	"their": true, "said": true, "each": true, "which": true, "she": true,
	"how": true, "her": true, "has": true, "him": true,
}

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// DeriveQuery converts a free-text image description into 1-3 short search
// terms: ordered pattern table first, then stop-word-filtered keyword
// extraction, then a platform+objective generic fallback.
func DeriveQuery(description string, data flow.Data) string {
	description = strings.TrimSpace(description)
	if description != "" {
		if terms := matchDescriptionTerms(description); len(terms) > 0 {
			return strings.Join(terms, " ")
		}
		if keywords := extractKeywords(description); keywords != "" {
			return keywords
		}
	}
	return FallbackQuery(data)
}

func matchDescriptionTerms(description string) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, mapping := range descriptionMappings {
		if !mapping.pattern.MatchString(description) {
			continue
		}
		if seen[mapping.term] {
			continue
		}
		seen[mapping.term] = true
		terms = append(terms, mapping.term)
		if len(terms) == 2 {
			break
		}
	}
	return terms
}

func extractKeywords(description string) string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(description), "")
	var keywords []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 3 || stopWords[word] {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == 3 {
			break
		}
	}
	return strings.Join(keywords, " ")
}

var objectiveQueries = map[string]string{
	"Vender produto/serviço": "business presentation sales",
	"Aumentar engajamento":   "social media workspace",
	"Educar audiência":       "education learning office",
	"Inspirar pessoas":       "success motivation business",
	"Criar buzz":             "creative modern workspace",
}

// audienceQueries is ordered: the first audience keyword found in the answer
// wins, keeping the derived query deterministic.
var audienceQueries = []struct {
	keyword string
	query   string
}{
	{"empreendedor", "startup entrepreneur"},
	{"profissional", "business professional"},
	{"executivo", "executive office"},
	{"freelancer", "freelance workspace"},
	{"consultor", "consulting business"},
}

var platformQueries = map[string]string{
	"Instagram": "lifestyle business",
	"Facebook":  "social business",
	"LinkedIn":  "professional corporate",
	"Twitter":   "simple business",
}

// FallbackQuery derives a generic query from the conversation context when no
// usable description exists.
func FallbackQuery(data flow.Data) string {
	objective := data.ObjectiveKey()
	audience := strings.ToLower(data.Audience())

	query, ok := objectiveQueries[objective]
	if !ok {
		if len(data) == 0 {
			return "business professional"
		}
		query = "business office"
	}

	for _, entry := range audienceQueries {
		if strings.Contains(audience, entry.keyword) {
			query = entry.query + " " + query
			break
		}
	}

	platformQuery, ok := platformQueries[data.PlatformKey()]
	if !ok {
		platformQuery = "business"
	}

	return query + " " + platformQuery
}
