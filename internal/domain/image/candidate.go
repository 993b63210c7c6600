package image

import "context"

// Source identifies where a candidate came from. Ranking is a fixed priority
// over sources, AI generations first.
type Source string

const (
	SourcePexels      Source = "pexels"
	SourceUnsplash    Source = "unsplash"
	SourceDalle       Source = "dalle"
	SourcePlaceholder Source = "placeholder"
)

// URLSet carries one URL per resolution tier. Sources with a single
// resolution repeat the same value in every tier.
type URLSet struct {
	Thumb   string `json:"thumb"`
	Small   string `json:"small"`
	Regular string `json:"regular"`
	Full    string `json:"full"`
}

// Attribution credits the photographer or generator behind a candidate.
type Attribution struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Profile  string `json:"profile"`
}

// Candidate is one selectable image, normalized to a uniform shape before
// ranking regardless of source.
type Candidate struct {
	ID             string      `json:"id"`
	URLs           URLSet      `json:"urls"`
	Alt            string      `json:"alt"`
	Attribution    Attribution `json:"attribution"`
	Source         Source      `json:"source"`
	RelevanceScore int         `json:"relevance_score"`
	DownloadURL    string      `json:"download_url,omitempty"`
	PageURL        string      `json:"page_url,omitempty"`
	Prompt         string      `json:"prompt,omitempty"`
}

// SearchRequest is a provider-agnostic stock photo query.
type SearchRequest struct {
	Query       string
	Page        int
	PerPage     int
	Orientation string
}

// SearchResult is a page of normalized candidates.
type SearchResult struct {
	Images     []Candidate `json:"images"`
	Total      int         `json:"total"`
	TotalPages int         `json:"total_pages"`
}

// StockClient is a stock-photo provider. An unconfigured client decides its
// own degradation: empty result or deterministic placeholders.
type StockClient interface {
	Source() Source
	Configured() bool
	Search(ctx context.Context, req SearchRequest) (*SearchResult, error)
}

// CuratedClient is implemented by stock providers with a curated feed.
type CuratedClient interface {
	Curated(ctx context.Context, page, perPage int) (*SearchResult, error)
}

// GenerationClient is the paid AI image provider. A missing credential means
// Configured reports false and the source contributes nothing.
type GenerationClient interface {
	Configured() bool
	Generate(ctx context.Context, prompt string, n int) ([]Candidate, error)
}

// DownloadTracker is implemented by providers that require a download ping
// before the full-resolution asset is used.
type DownloadTracker interface {
	TrackDownload(ctx context.Context, c Candidate) error
}

// Fetcher retrieves raw image bytes for selection.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (data []byte, contentType string, err error)
}

// Cache stores AI generation result sets by fingerprint. Implementations must
// be safe for concurrent use; last writer wins on a key collision.
type Cache interface {
	Get(key string) ([]Candidate, bool)
	Add(key string, images []Candidate)
	Purge()
}
