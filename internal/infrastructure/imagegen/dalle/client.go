package dalle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"resty.dev/v3"

	"github.com/posty-app/post-api/internal/domain/image"
	"github.com/posty-app/post-api/internal/utils/platformerrors"
)

// The generation API rejects batch sizes above four.
const maxBatchSize = 4

// Client generates images through the OpenAI images endpoint. Generation is
// paid, so an unconfigured client contributes nothing rather than degrading
// to placeholders.
type Client struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	model   string
}

func NewClient(client *resty.Client, apiKey, baseURL, model string) *Client {
	if strings.TrimSpace(model) == "" {
		model = openai.CreateImageModelDallE2
	}
	return &Client{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
	}
}

func (c *Client) Configured() bool { return strings.TrimSpace(c.apiKey) != "" }

// Generate asks for n square images from the prompt and normalizes them into
// candidates. The provider returns one URL per image; every resolution tier
// carries the same URL.
func (c *Client) Generate(ctx context.Context, prompt string, n int) ([]image.Candidate, error) {
	if !c.Configured() {
		return nil, nil
	}
	if n < 1 {
		n = 1
	}
	if n > maxBatchSize {
		n = maxBatchSize
	}

	request := openai.ImageRequest{
		Model:  c.model,
		Prompt: prompt,
		N:      n,
		Size:   openai.CreateImageSize1024x1024,
	}

	var body openai.ImageResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetBody(request).
		SetResult(&body).
		Post(c.baseURL + "/images/generations")
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeProviderUnavailable, "image generation request failed", err, "")
	}
	if resp.IsError() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeProviderRequest,
			fmt.Sprintf("image generation returned status %d: %s", resp.StatusCode(), resp.String()), nil, "")
	}

	alt := prompt
	if len(alt) > 100 {
		alt = alt[:100] + "..."
	}

	now := time.Now().UnixMilli()
	candidates := make([]image.Candidate, 0, len(body.Data))
	for i, item := range body.Data {
		candidates = append(candidates, image.Candidate{
			ID: fmt.Sprintf("dalle-%d-%d", now, i),
			URLs: image.URLSet{
				Thumb:   item.URL,
				Small:   item.URL,
				Regular: item.URL,
				Full:    item.URL,
			},
			Alt: "Imagem gerada por IA: " + alt,
			Attribution: image.Attribution{
				Name:     "DALL-E (OpenAI)",
				Username: "dalle",
				Profile:  "https://openai.com",
			},
			Source:      image.SourceDalle,
			DownloadURL: item.URL,
			PageURL:     item.URL,
			Prompt:      prompt,
		})
	}
	return candidates, nil
}
