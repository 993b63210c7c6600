package pexels

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"resty.dev/v3"

	"github.com/posty-app/post-api/internal/domain/image"
	"github.com/posty-app/post-api/internal/utils/platformerrors"
)

const defaultBaseURL = "https://api.pexels.com/v1"

// Client searches the Pexels photo API. Pexels authenticates with a plain
// API key in the Authorization header, no Bearer prefix.
type Client struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

func NewClient(client *resty.Client, apiKey, baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

func (c *Client) Source() image.Source { return image.SourcePexels }

func (c *Client) Configured() bool { return strings.TrimSpace(c.apiKey) != "" }

type photoSrc struct {
	Original string `json:"original"`
	Large    string `json:"large"`
	Medium   string `json:"medium"`
	Small    string `json:"small"`
}

type photo struct {
	ID              int64    `json:"id"`
	URL             string   `json:"url"`
	Photographer    string   `json:"photographer"`
	PhotographerURL string   `json:"photographer_url"`
	Alt             string   `json:"alt"`
	Src             photoSrc `json:"src"`
}

type searchResponse struct {
	Photos       []photo `json:"photos"`
	TotalResults int     `json:"total_results"`
}

// Search queries the search endpoint with square orientation. A missing key
// degrades to an empty result, Pexels contributes nothing without credit.
func (c *Client) Search(ctx context.Context, req image.SearchRequest) (*image.SearchResult, error) {
	if !c.Configured() {
		return emptyResult(), nil
	}

	orientation := req.Orientation
	if orientation == "" {
		orientation = "square"
	}

	var body searchResponse
	resp, err := c.prepare(ctx).
		SetQueryParams(map[string]string{
			"query":       req.Query,
			"page":        strconv.Itoa(req.Page),
			"per_page":    strconv.Itoa(req.PerPage),
			"orientation": orientation,
		}).
		SetResult(&body).
		Get(c.baseURL + "/search")
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeProviderUnavailable, "pexels search request failed", err, "")
	}
	if resp.IsError() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeProviderRequest,
			fmt.Sprintf("pexels search returned status %d", resp.StatusCode()), nil, "")
	}

	return c.toResult(body, req.PerPage, req.Query), nil
}

// Curated returns the editorial feed.
func (c *Client) Curated(ctx context.Context, page, perPage int) (*image.SearchResult, error) {
	if !c.Configured() {
		return emptyResult(), nil
	}

	var body searchResponse
	resp, err := c.prepare(ctx).
		SetQueryParams(map[string]string{
			"page":     strconv.Itoa(page),
			"per_page": strconv.Itoa(perPage),
		}).
		SetResult(&body).
		Get(c.baseURL + "/curated")
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeProviderUnavailable, "pexels curated request failed", err, "")
	}
	if resp.IsError() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeProviderRequest,
			fmt.Sprintf("pexels curated returned status %d", resp.StatusCode()), nil, "")
	}

	return c.toResult(body, perPage, "Curated image"), nil
}

func (c *Client) prepare(ctx context.Context) *resty.Request {
	return c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", c.apiKey)
}

func (c *Client) toResult(body searchResponse, perPage int, altFallback string) *image.SearchResult {
	images := make([]image.Candidate, 0, len(body.Photos))
	for _, p := range body.Photos {
		alt := p.Alt
		if alt == "" {
			alt = altFallback
		}
		images = append(images, image.Candidate{
			ID: fmt.Sprintf("pexels-%d", p.ID),
			URLs: image.URLSet{
				Thumb:   p.Src.Small,
				Small:   p.Src.Medium,
				Regular: p.Src.Large,
				Full:    p.Src.Original,
			},
			Alt: alt,
			Attribution: image.Attribution{
				Name:     p.Photographer,
				Username: p.Photographer,
				Profile:  p.PhotographerURL,
			},
			Source:      image.SourcePexels,
			DownloadURL: p.Src.Original,
			PageURL:     p.URL,
		})
	}

	totalPages := 0
	if perPage > 0 {
		totalPages = int(math.Ceil(float64(body.TotalResults) / float64(perPage)))
	}
	return &image.SearchResult{Images: images, Total: body.TotalResults, TotalPages: totalPages}
}

func emptyResult() *image.SearchResult {
	return &image.SearchResult{Images: []image.Candidate{}}
}
