package infrastructure

import (
	"github.com/google/wire"

	"github.com/posty-app/post-api/internal/config"
	"github.com/posty-app/post-api/internal/infrastructure/cache"
	"github.com/posty-app/post-api/internal/infrastructure/generation"
	"github.com/posty-app/post-api/internal/infrastructure/imagefetch"
	"github.com/posty-app/post-api/internal/infrastructure/imagegen/dalle"
	"github.com/posty-app/post-api/internal/infrastructure/imagesearch/pexels"
	"github.com/posty-app/post-api/internal/infrastructure/imagesearch/unsplash"
	"github.com/posty-app/post-api/internal/utils/httpclients"
)

// InfrastructureProvider wires every outbound client. Each provider gets its
// own resty client so per-provider timeouts stay independent.
var InfrastructureProvider = wire.NewSet(
	ProvideCompletionClient,
	ProvidePexelsClient,
	ProvideUnsplashClient,
	ProvideDalleClient,
	ProvideFetcher,
	ProvideGenerationCache,
)

func ProvideCompletionClient(cfg *config.Config) *generation.Client {
	client := httpclients.NewClient("chat-completions").SetTimeout(cfg.ChatCompletionTimeout)
	return generation.NewClient(client, cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
}

func ProvidePexelsClient(cfg *config.Config) *pexels.Client {
	client := httpclients.NewClient("pexels").SetTimeout(cfg.StockSearchTimeout)
	return pexels.NewClient(client, cfg.PexelsAPIKey, "")
}

func ProvideUnsplashClient(cfg *config.Config) *unsplash.Client {
	client := httpclients.NewClient("unsplash").SetTimeout(cfg.StockSearchTimeout)
	return unsplash.NewClient(client, cfg.UnsplashAccessKey, "")
}

func ProvideDalleClient(cfg *config.Config) *dalle.Client {
	client := httpclients.NewClient("dalle").SetTimeout(cfg.ImageGenerationTimeout)
	return dalle.NewClient(client, cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.ImageModel)
}

func ProvideFetcher(cfg *config.Config) *imagefetch.Fetcher {
	client := httpclients.NewClient("image-fetch").SetTimeout(cfg.ImageFetchTimeout)
	return imagefetch.NewFetcher(client)
}

func ProvideGenerationCache(cfg *config.Config) (*cache.GenerationCache, error) {
	return cache.NewGenerationCache(cfg.ImageCacheSize)
}
