package post

import (
	"context"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/posty-app/post-api/internal/domain/flow"
	"github.com/posty-app/post-api/internal/infrastructure/logger"
	"github.com/posty-app/post-api/internal/infrastructure/metrics"
)

const (
	generationMaxTokens   = 1500
	generationTemperature = 0.7
)

// GeneratedPost is the outcome of one completed questionnaire: cleaned post
// text plus the image description used downstream by the image resolver.
type GeneratedPost struct {
	Content          string `json:"content"`
	ImageDescription string `json:"image_description"`
	SearchKeywords   string `json:"search_keywords,omitempty"`
}

// CompletionClient is the outbound chat-completion dependency. Configured
// reports whether a credential is present; an unconfigured client is skipped
// entirely in favor of the local fallback.
type CompletionClient interface {
	Configured() bool
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error)
}

// Generator produces platform-optimized post content. It degrades to local
// templates on any provider or parsing failure and never returns an error for
// a generation request.
type Generator struct {
	client CompletionClient
	model  string
}

func NewGenerator(client CompletionClient, model string) *Generator {
	return &Generator{
		client: client,
		model:  model,
	}
}

// Generate builds the platform prompt, calls the completion endpoint and
// parses the structured response, falling back layer by layer per the
// degradation policy.
func (g *Generator) Generate(ctx context.Context, data flow.Data) (*GeneratedPost, error) {
	log := logger.GetLogger()
	platform := data.PlatformKey()
	if g.client == nil || !g.client.Configured() {
		log.Warn().Msg("[Generator] Completion provider not configured, using local templates")
		metrics.GenerationsTotal.WithLabelValues(platform, "fallback").Inc()
		return g.fallback(data), nil
	}

	prompt := BuildPrompt(data)

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   generationMaxTokens,
		Temperature: generationTemperature,
	})
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		log.Warn().Err(err).Msg("[Generator] Completion request failed, using local templates")
		metrics.GenerationsTotal.WithLabelValues(platform, "error").Inc()
		return g.fallback(data), nil
	}

	if len(resp.Choices) == 0 {
		log.Warn().Msg("[Generator] Completion response carried no choices, using local templates")
		metrics.GenerationsTotal.WithLabelValues(platform, "fallback").Inc()
		return g.fallback(data), nil
	}

	raw := resp.Choices[0].Message.Content
	result := ParseGeneration(raw)

	switch result.Kind {
	case GenerationStructured:
		metrics.GenerationsTotal.WithLabelValues(platform, "structured").Inc()
		return &GeneratedPost{
			Content:          CleanContent(result.Content),
			ImageDescription: result.ImageDescription,
			SearchKeywords:   result.SearchKeywords,
		}, nil
	default:
		content := CleanContent(result.Content)
		if strings.TrimSpace(content) == "" {
			log.Warn().Msg("[Generator] Nothing salvageable in completion response, using local templates")
			metrics.GenerationsTotal.WithLabelValues(platform, "fallback").Inc()
			return g.fallback(data), nil
		}
		log.Warn().Msg("[Generator] Completion response was not structured JSON, salvaged plain text")
		metrics.GenerationsTotal.WithLabelValues(platform, "salvaged").Inc()
		return &GeneratedPost{
			Content:          content,
			ImageDescription: FallbackImageDescription(data),
		}, nil
	}
}

func (g *Generator) fallback(data flow.Data) *GeneratedPost {
	return &GeneratedPost{
		Content:          FallbackContent(data),
		ImageDescription: FallbackImageDescription(data),
	}
}
