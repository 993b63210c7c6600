package image

import (
	"context"
	"encoding/base64"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/posty-app/post-api/internal/domain/flow"
	"github.com/posty-app/post-api/internal/infrastructure/logger"
	"github.com/posty-app/post-api/internal/infrastructure/metrics"
)

// Suggestion caps. Generation results are always kept in full; stock sources
// are trimmed so the merged set stays balanced.
const (
	maxSuggestions   = 9
	maxPexelsMerged  = 4
	maxUnsplashMerge = 3
	fanOutGeneration = 2
	searchGeneration = 3
)

var sourceScores = map[Source]int{
	SourceDalle:       100,
	SourcePexels:      80,
	SourceUnsplash:    60,
	SourcePlaceholder: 40,
}

// Selection is the outcome of picking a candidate: either inline image data
// encoded as a data URL, or a remote URL usable as-is.
type Selection struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type,omitempty"`
	Inline      bool   `json:"inline"`
}

// Resolver merges image candidates from stock search, AI generation and
// deterministic placeholders into one ranked suggestion set. Every provider
// failure is isolated: a broken or unconfigured source contributes nothing
// and never fails the whole resolution.
type Resolver struct {
	pexels    StockClient
	unsplash  StockClient
	generator GenerationClient
	fetcher   Fetcher
	cache     Cache
}

func NewResolver(pexels, unsplash StockClient, generator GenerationClient, fetcher Fetcher, cache Cache) *Resolver {
	return &Resolver{
		pexels:    pexels,
		unsplash:  unsplash,
		generator: generator,
		fetcher:   fetcher,
		cache:     cache,
	}
}

// Suggest fans out to every source in parallel and merges the survivors into
// a ranked set of at most nine candidates.
func (r *Resolver) Suggest(ctx context.Context, data flow.Data, description string) *SearchResult {
	log := logger.GetLogger()
	query := DeriveQuery(description, data)
	log.Info().Str("query", query).Msg("[Resolver] fanning out image suggestion")

	var dalle, pexels, unsplash []Candidate
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		dalle = r.generate(gctx, data, description, fanOutGeneration)
		return nil
	})
	g.Go(func() error {
		pexels = r.searchStock(gctx, r.pexels, SearchRequest{Query: query, Page: 1, PerPage: 6})
		return nil
	})
	g.Go(func() error {
		unsplash = r.searchStock(gctx, r.unsplash, SearchRequest{Query: query, Page: 1, PerPage: maxSuggestions})
		return nil
	})
	g.Wait() //nolint:errcheck // goroutines never return errors, failures degrade per source

	merged := make([]Candidate, 0, maxSuggestions)
	merged = append(merged, dalle...)
	merged = append(merged, capped(pexels, maxPexelsMerged)...)
	merged = append(merged, capped(unsplash, maxUnsplashMerge)...)
	ranked := rank(merged)
	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}

	log.Info().
		Int("dalle", len(dalle)).
		Int("pexels", len(pexels)).
		Int("unsplash", len(unsplash)).
		Int("merged", len(ranked)).
		Msg("[Resolver] suggestion fan-out complete")

	return &SearchResult{Images: ranked, Total: len(merged), TotalPages: 1}
}

// SmartSuggest analyzes the post content first and leans toward the sources
// most likely to fit it, falling back to the full fan-out for mixed topics.
func (r *Resolver) SmartSuggest(ctx context.Context, data flow.Data, content, description string) *SearchResult {
	analysis := AnalyzeContent(content)
	log := logger.GetLogger()
	log.Info().
		Str("strategy", string(analysis.Strategy)).
		Str("query", analysis.SearchQuery).
		Msg("[Resolver] smart suggestion strategy picked")

	switch analysis.Strategy {
	case StrategyGenerate:
		images := rank(r.generate(ctx, data, description, searchGeneration))
		return &SearchResult{Images: images, Total: len(images), TotalPages: 1}
	case StrategyStock:
		var pexels, unsplash []Candidate
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			pexels = r.searchStock(gctx, r.pexels, SearchRequest{Query: analysis.SearchQuery, Page: 1, PerPage: maxSuggestions})
			return nil
		})
		g.Go(func() error {
			unsplash = r.searchStock(gctx, r.unsplash, SearchRequest{Query: analysis.SearchQuery, Page: 1, PerPage: maxSuggestions})
			return nil
		})
		g.Wait() //nolint:errcheck
		merged := append(capped(pexels, 5), capped(unsplash, 4)...)
		images := rank(merged)
		return &SearchResult{Images: images, Total: len(merged), TotalPages: 1}
	default:
		return r.Suggest(ctx, data, description)
	}
}

// Search queries a single source, or all of them when source is empty or
// "all". Unknown sources behave like "all".
func (r *Resolver) Search(ctx context.Context, source Source, query string, page, perPage int, data flow.Data) *SearchResult {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > maxSuggestions {
		perPage = maxSuggestions
	}

	switch source {
	case SourceDalle:
		images := rank(r.generate(ctx, data, query, searchGeneration))
		return &SearchResult{Images: images, Total: len(images), TotalPages: 1}
	case SourcePexels:
		return r.stockResult(ctx, r.pexels, SearchRequest{Query: query, Page: page, PerPage: perPage})
	case SourceUnsplash:
		return r.stockResult(ctx, r.unsplash, SearchRequest{Query: query, Page: page, PerPage: perPage})
	default:
		return r.searchAll(ctx, query, page, perPage)
	}
}

// searchAll splits the page between the stock providers, pexels taking the
// larger half on odd sizes.
func (r *Resolver) searchAll(ctx context.Context, query string, page, perPage int) *SearchResult {
	var pexels, unsplash *SearchResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pexels = r.stockResult(gctx, r.pexels, SearchRequest{Query: query, Page: page, PerPage: (perPage + 1) / 2})
		return nil
	})
	g.Go(func() error {
		unsplash = r.stockResult(gctx, r.unsplash, SearchRequest{Query: query, Page: page, PerPage: perPage / 2})
		return nil
	})
	g.Wait() //nolint:errcheck

	merged := append(append([]Candidate{}, pexels.Images...), unsplash.Images...)
	totalPages := pexels.TotalPages
	if unsplash.TotalPages > totalPages {
		totalPages = unsplash.TotalPages
	}
	return &SearchResult{
		Images:     rank(merged),
		Total:      pexels.Total + unsplash.Total,
		TotalPages: totalPages,
	}
}

// Curated returns the editorial feed of whichever stock provider offers one.
func (r *Resolver) Curated(ctx context.Context, page, perPage int) *SearchResult {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > maxSuggestions {
		perPage = maxSuggestions
	}
	curated, ok := r.pexels.(CuratedClient)
	if !ok {
		return &SearchResult{Images: []Candidate{}, TotalPages: 1}
	}
	result, err := curated.Curated(ctx, page, perPage)
	if err != nil {
		log := logger.GetLogger()
		log.Warn().Err(err).Msg("[Resolver] curated feed unavailable")
		return &SearchResult{Images: []Candidate{}, TotalPages: 1}
	}
	result.Images = rank(result.Images)
	return result
}

// Select resolves a chosen candidate to a usable image. Stock photos that
// require a download ping are tracked and inlined as a base64 data URL;
// anything else hands back its remote URL. Failures degrade to the regular
// resolution remote URL.
func (r *Resolver) Select(ctx context.Context, c Candidate) *Selection {
	log := logger.GetLogger()

	switch c.Source {
	case SourceDalle, SourcePlaceholder:
		return &Selection{URL: c.URLs.Regular}
	case SourcePexels:
		if c.DownloadURL != "" {
			return &Selection{URL: c.DownloadURL}
		}
		return &Selection{URL: c.URLs.Regular}
	}

	if tracker, ok := r.unsplash.(DownloadTracker); ok {
		if err := tracker.TrackDownload(ctx, c); err != nil {
			log.Warn().Err(err).Str("image_id", c.ID).Msg("[Resolver] download tracking failed")
		}
	}

	target := c.URLs.Full
	if target == "" {
		target = c.URLs.Regular
	}
	data, contentType, err := r.fetcher.Fetch(ctx, target)
	if err != nil {
		log.Warn().Err(err).Str("image_id", c.ID).Msg("[Resolver] image fetch failed, using remote url")
		return &Selection{URL: c.URLs.Regular}
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	return &Selection{
		URL:         fmt.Sprintf("data:%s;base64,%s", contentType, encoded),
		ContentType: contentType,
		Inline:      true,
	}
}

// ClearCache drops every cached generation result.
func (r *Resolver) ClearCache() {
	r.cache.Purge()
	log := logger.GetLogger()
	log.Info().Msg("[Resolver] generation cache cleared")
}

// generate produces AI candidates for a description, consulting the cache
// first. An unconfigured or failing generator yields nothing.
func (r *Resolver) generate(ctx context.Context, data flow.Data, description string, n int) []Candidate {
	if r.generator == nil || !r.generator.Configured() {
		return nil
	}

	log := logger.GetLogger()

	key := Fingerprint(description, data)
	if cached, ok := r.cache.Get(key); ok {
		log.Debug().Str("key", key).Msg("[Resolver] generation cache hit")
		metrics.ImageCacheTotal.WithLabelValues("hit").Inc()
		return cached
	}
	metrics.ImageCacheTotal.WithLabelValues("miss").Inc()

	prompt := PrepareGenerationPrompt(description, data)
	start := time.Now()
	images, err := r.generator.Generate(ctx, prompt, n)
	metrics.ImageSearchDuration.WithLabelValues(string(SourceDalle)).Observe(time.Since(start).Seconds())
	if err != nil {
		log.Warn().Err(err).Msg("[Resolver] image generation failed")
		metrics.ImageSearchesTotal.WithLabelValues(string(SourceDalle), "error").Inc()
		return nil
	}
	metrics.ImageSearchesTotal.WithLabelValues(string(SourceDalle), "ok").Inc()
	for i := range images {
		images[i].Source = SourceDalle
		images[i].RelevanceScore = sourceScores[SourceDalle]
		if images[i].Prompt == "" {
			images[i].Prompt = prompt
		}
	}
	if len(images) > 0 {
		r.cache.Add(key, images)
	}
	return images
}

func (r *Resolver) searchStock(ctx context.Context, client StockClient, req SearchRequest) []Candidate {
	return r.stockResult(ctx, client, req).Images
}

func (r *Resolver) stockResult(ctx context.Context, client StockClient, req SearchRequest) *SearchResult {
	if client == nil {
		return &SearchResult{Images: []Candidate{}, TotalPages: 1}
	}
	source := string(client.Source())
	start := time.Now()
	result, err := client.Search(ctx, req)
	metrics.ImageSearchDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
	if err != nil {
		log := logger.GetLogger()
		log.Warn().
			Err(err).
			Str("source", source).
			Str("query", req.Query).
			Msg("[Resolver] stock search failed")
		metrics.ImageSearchesTotal.WithLabelValues(source, "error").Inc()
		return &SearchResult{Images: []Candidate{}, TotalPages: 1}
	}
	metrics.ImageSearchesTotal.WithLabelValues(source, "ok").Inc()
	return result
}

// rank scores candidates by source and sorts them best first. The sort is
// stable so provider ordering survives within a source.
func rank(images []Candidate) []Candidate {
	ranked := make([]Candidate, len(images))
	copy(ranked, images)
	for i := range ranked {
		if score, ok := sourceScores[ranked[i].Source]; ok {
			ranked[i].RelevanceScore = score
		} else {
			ranked[i].RelevanceScore = 50
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})
	return ranked
}

func capped(images []Candidate, n int) []Candidate {
	if len(images) > n {
		return images[:n]
	}
	return images
}
