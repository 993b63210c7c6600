package pexels

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"resty.dev/v3"

	"github.com/posty-app/post-api/internal/domain/image"
	"github.com/posty-app/post-api/internal/utils/platformerrors"
)

const searchBody = `{
	"total_results": 21,
	"photos": [
		{
			"id": 42,
			"url": "https://www.pexels.com/photo/42",
			"photographer": "Ana Souza",
			"photographer_url": "https://www.pexels.com/@ana",
			"alt": "Equipe em reunião",
			"src": {
				"original": "https://images.pexels.com/42/original.jpg",
				"large": "https://images.pexels.com/42/large.jpg",
				"medium": "https://images.pexels.com/42/medium.jpg",
				"small": "https://images.pexels.com/42/small.jpg"
			}
		},
		{
			"id": 43,
			"url": "https://www.pexels.com/photo/43",
			"photographer": "Bruno Lima",
			"photographer_url": "https://www.pexels.com/@bruno",
			"alt": "",
			"src": {
				"original": "https://images.pexels.com/43/original.jpg",
				"large": "https://images.pexels.com/43/large.jpg",
				"medium": "https://images.pexels.com/43/medium.jpg",
				"small": "https://images.pexels.com/43/small.jpg"
			}
		}
	]
}`

func TestSearchMapsPhotos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "test-key" {
			t.Errorf("Authorization = %q, want plain api key", got)
		}
		q := r.URL.Query()
		if q.Get("query") != "office" || q.Get("orientation") != "square" {
			t.Errorf("query params = %v", q)
		}
		if q.Get("page") != "2" || q.Get("per_page") != "6" {
			t.Errorf("paging params = %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchBody)) //nolint:errcheck
	}))
	defer server.Close()

	c := NewClient(resty.New(), "test-key", server.URL)
	result, err := c.Search(context.Background(), image.SearchRequest{Query: "office", Page: 2, PerPage: 6})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(result.Images) != 2 || result.Total != 21 {
		t.Fatalf("got %d images, total %d", len(result.Images), result.Total)
	}
	if result.TotalPages != 4 {
		t.Fatalf("total pages = %d, want ceil(21/6)", result.TotalPages)
	}

	first := result.Images[0]
	if first.ID != "pexels-42" || first.Source != image.SourcePexels {
		t.Fatalf("identity: %+v", first)
	}
	if first.URLs.Thumb != "https://images.pexels.com/42/small.jpg" ||
		first.URLs.Regular != "https://images.pexels.com/42/large.jpg" ||
		first.URLs.Full != "https://images.pexels.com/42/original.jpg" {
		t.Fatalf("url tiers: %+v", first.URLs)
	}
	if first.DownloadURL != "https://images.pexels.com/42/original.jpg" {
		t.Fatalf("download url = %q", first.DownloadURL)
	}
	if first.Attribution.Name != "Ana Souza" || first.Attribution.Profile != "https://www.pexels.com/@ana" {
		t.Fatalf("attribution: %+v", first.Attribution)
	}
	if result.Images[1].Alt == "" {
		t.Fatalf("missing alt must get a fallback")
	}
}

func TestSearchWithoutKeyReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unconfigured client must not call the provider")
	}))
	defer server.Close()

	c := NewClient(resty.New(), "", server.URL)
	result, err := c.Search(context.Background(), image.SearchRequest{Query: "office", Page: 1, PerPage: 6})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(result.Images) != 0 {
		t.Fatalf("expected empty result, got %d images", len(result.Images))
	}
}

func TestSearchProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewClient(resty.New(), "test-key", server.URL)
	_, err := c.Search(context.Background(), image.SearchRequest{Query: "office", Page: 1, PerPage: 6})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeProviderRequest) {
		t.Fatalf("got %v, want provider request error", err)
	}
}

func TestCuratedUsesAltFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/curated" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_results": 1, "photos": [{"id": 7, "src": {"original": "https://images.pexels.com/7/o.jpg"}}]}`)) //nolint:errcheck
	}))
	defer server.Close()

	c := NewClient(resty.New(), "test-key", server.URL)
	result, err := c.Curated(context.Background(), 1, 9)
	if err != nil {
		t.Fatalf("Curated: %v", err)
	}
	if len(result.Images) != 1 || result.Images[0].Alt != "Curated image" {
		t.Fatalf("curated result: %+v", result.Images)
	}
}
