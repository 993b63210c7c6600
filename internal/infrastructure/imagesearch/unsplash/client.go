package unsplash

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"resty.dev/v3"

	"github.com/posty-app/post-api/internal/domain/image"
	"github.com/posty-app/post-api/internal/infrastructure/logger"
)

const defaultBaseURL = "https://api.unsplash.com"

// Client searches the Unsplash photo API. Unlike the other providers this
// client never fails a search: a missing key or a provider error degrades to
// deterministic placeholder images so the suggestion grid stays full.
type Client struct {
	client    *resty.Client
	baseURL   string
	accessKey string
}

func NewClient(client *resty.Client, accessKey, baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		client:    client,
		baseURL:   strings.TrimRight(baseURL, "/"),
		accessKey: accessKey,
	}
}

func (c *Client) Source() image.Source { return image.SourceUnsplash }

func (c *Client) Configured() bool { return strings.TrimSpace(c.accessKey) != "" }

type photoURLs struct {
	Thumb   string `json:"thumb"`
	Small   string `json:"small"`
	Regular string `json:"regular"`
	Full    string `json:"full"`
}

type photoLinks struct {
	HTML     string `json:"html"`
	Download string `json:"download_location"`
}

type photoUser struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Links    struct {
		HTML string `json:"html"`
	} `json:"links"`
}

type photoResult struct {
	ID             string     `json:"id"`
	AltDescription string     `json:"alt_description"`
	Description    string     `json:"description"`
	URLs           photoURLs  `json:"urls"`
	Links          photoLinks `json:"links"`
	User           photoUser  `json:"user"`
}

type searchResponse struct {
	Results    []photoResult `json:"results"`
	Total      int           `json:"total"`
	TotalPages int           `json:"total_pages"`
}

// Search queries the photo search endpoint with squarish orientation ordered
// by relevance.
func (c *Client) Search(ctx context.Context, req image.SearchRequest) (*image.SearchResult, error) {
	if !c.Configured() {
		return placeholderResult(req.Query, req.PerPage), nil
	}

	orientation := req.Orientation
	if orientation == "" {
		orientation = "squarish"
	}

	var body searchResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Client-ID "+c.accessKey).
		SetQueryParams(map[string]string{
			"query":       req.Query,
			"page":        strconv.Itoa(req.Page),
			"per_page":    strconv.Itoa(req.PerPage),
			"orientation": orientation,
			"order_by":    "relevance",
		}).
		SetResult(&body).
		Get(c.baseURL + "/search/photos")
	if err != nil || resp.IsError() {
		log := logger.GetLogger()
		log.Warn().
			Err(err).
			Str("query", req.Query).
			Msg("[Unsplash] search failed, serving placeholders")
		return placeholderResult(req.Query, req.PerPage), nil
	}

	images := make([]image.Candidate, 0, len(body.Results))
	for _, p := range body.Results {
		alt := p.AltDescription
		if alt == "" {
			alt = p.Description
		}
		if alt == "" {
			alt = fmt.Sprintf("Foto relacionada a %s", req.Query)
		}
		images = append(images, image.Candidate{
			ID:   "unsplash-" + p.ID,
			URLs: image.URLSet(p.URLs),
			Alt:  alt,
			Attribution: image.Attribution{
				Name:     p.User.Name,
				Username: p.User.Username,
				Profile:  p.User.Links.HTML,
			},
			Source:      image.SourceUnsplash,
			DownloadURL: p.Links.Download,
			PageURL:     p.Links.HTML,
		})
	}

	return &image.SearchResult{Images: images, Total: body.Total, TotalPages: body.TotalPages}, nil
}

// TrackDownload pings the download endpoint, which Unsplash requires before
// an asset is used. Placeholders have no download URL and are skipped.
func (c *Client) TrackDownload(ctx context.Context, candidate image.Candidate) error {
	if !c.Configured() || candidate.DownloadURL == "" {
		return nil
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Client-ID "+c.accessKey).
		Get(candidate.DownloadURL)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("unsplash download tracking returned status %d", resp.StatusCode())
	}
	return nil
}

func placeholderResult(query string, n int) *image.SearchResult {
	if n <= 0 {
		n = 6
	}
	images := image.Placeholders(query, n)
	return &image.SearchResult{Images: images, Total: len(images), TotalPages: 1}
}
