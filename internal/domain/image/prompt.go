package image

import (
	"regexp"
	"strings"

	"github.com/posty-app/post-api/internal/domain/flow"
)

// Provider-imposed prompt length cap for image generation.
const maxGenerationPromptLen = 1000

var platformHints = map[string]string{
	"Instagram": "square composition",
	"Facebook":  "horizontal or square format",
	"LinkedIn":  "professional business style",
	"Twitter":   "clear simple composition",
}

var (
	noTextRe   = regexp.MustCompile(`(?i)no text`)
	noLogosRe  = regexp.MustCompile(`(?i)no logos`)
	noPeopleRe = regexp.MustCompile(`(?i)no people|no faces`)
)

// PrepareGenerationPrompt adapts an image description for the generation
// provider: platform composition hint, content restrictions when missing, a
// hard length cap, and a generic workspace prompt when the description is too
// thin to be useful.
func PrepareGenerationPrompt(description string, data flow.Data) string {
	prompt := strings.TrimSpace(description)
	if prompt == "" {
		prompt = SimpleFallbackDescription(data)
	}

	platformHint, ok := platformHints[data.PlatformKey()]
	if !ok {
		platformHint = platformHints["Instagram"]
	}

	lower := strings.ToLower(prompt)
	if len(prompt) < 900 && !strings.Contains(lower, "square") && !strings.Contains(lower, "format") {
		prompt += ", " + platformHint
	}

	var restrictions []string
	if !noTextRe.MatchString(prompt) && len(prompt) < 950 {
		restrictions = append(restrictions, "no text overlay")
	}
	if !noLogosRe.MatchString(prompt) && len(prompt) < 970 {
		restrictions = append(restrictions, "no logos")
	}
	if !noPeopleRe.MatchString(prompt) && len(prompt) < 990 {
		restrictions = append(restrictions, "no people faces")
	}
	if len(restrictions) > 0 {
		prompt += ", " + strings.Join(restrictions, ", ")
	}

	if len(prompt) > maxGenerationPromptLen {
		prompt = prompt[:maxGenerationPromptLen-3] + "..."
	}

	if len(prompt) < 20 {
		prompt = "modern professional workspace with laptop computer, clean aesthetic, natural lighting, high quality photography"
	}

	return prompt
}

var fallbackDescriptions = map[string]string{
	"Vender produto/serviço": "Clean modern workspace with laptop computer on wooden desk, professional product presentation setup, natural lighting from window, organized business environment with minimalist aesthetic, neutral color palette",
	"Aumentar engajamento":   "Vibrant creative workspace featuring laptop computer, colorful design elements, inspiring atmosphere with natural light, contemporary aesthetic with dynamic composition, engaging visual elements",
	"Educar audiência":       "Organized study workspace with laptop computer, books and learning materials, focused environment with soft lighting, educational setting with warm tones, clean and structured composition",
	"Inspirar pessoas":       "Motivational workspace setup with laptop computer, success elements, bright natural lighting, uplifting atmosphere with clean modern design, aspirational environment with warm colors",
	"Criar buzz":             "Trendy modern workspace with laptop computer, cutting-edge aesthetic, dynamic composition with innovative elements, contemporary design with bold visual appeal",
}

var platformAdaptations = map[string]string{
	"Instagram": ", square format optimized for social media",
	"Facebook":  ", horizontal storytelling format",
	"LinkedIn":  ", professional corporate environment",
	"Twitter":   ", simple clear composition",
}

// SimpleFallbackDescription builds a full generation prompt from the
// objective and platform when no description is available at all.
func SimpleFallbackDescription(data flow.Data) string {
	description, ok := fallbackDescriptions[data.ObjectiveKey()]
	if !ok {
		description = "Modern professional workspace with laptop computer, clean desk setup, natural lighting, organized environment, contemporary aesthetic"
	}

	adaptation, ok := platformAdaptations[data.PlatformKey()]
	if !ok {
		adaptation = platformAdaptations["Instagram"]
	}

	return description + adaptation + ", high quality professional photography"
}
