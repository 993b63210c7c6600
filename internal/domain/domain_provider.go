package domain

import (
	"github.com/google/wire"

	"github.com/posty-app/post-api/internal/config"
	"github.com/posty-app/post-api/internal/domain/conversation"
	"github.com/posty-app/post-api/internal/domain/flow"
	"github.com/posty-app/post-api/internal/domain/image"
	"github.com/posty-app/post-api/internal/domain/post"
	"github.com/posty-app/post-api/internal/infrastructure/cache"
	"github.com/posty-app/post-api/internal/infrastructure/generation"
	"github.com/posty-app/post-api/internal/infrastructure/imagefetch"
	"github.com/posty-app/post-api/internal/infrastructure/imagegen/dalle"
	"github.com/posty-app/post-api/internal/infrastructure/imagesearch/pexels"
	"github.com/posty-app/post-api/internal/infrastructure/imagesearch/unsplash"
)

// ServiceProvider wires the domain services on top of the outbound clients.
var ServiceProvider = wire.NewSet(
	ProvideFlow,
	ProvideGenerator,
	ProvideResolver,
	ProvideSessionService,
)

// ProvideFlow loads the questionnaire, preferring the configured override
// file over the embedded default.
func ProvideFlow(cfg *config.Config) (*flow.Flow, error) {
	if cfg.FlowConfigFile != "" {
		return flow.Load(cfg.FlowConfigFile)
	}
	return flow.Default(), nil
}

func ProvideGenerator(cfg *config.Config, client *generation.Client) *post.Generator {
	return post.NewGenerator(client, cfg.TextModel)
}

func ProvideResolver(
	pexelsClient *pexels.Client,
	unsplashClient *unsplash.Client,
	dalleClient *dalle.Client,
	fetcher *imagefetch.Fetcher,
	generationCache *cache.GenerationCache,
) *image.Resolver {
	return image.NewResolver(pexelsClient, unsplashClient, dalleClient, fetcher, generationCache)
}

func ProvideSessionService(f *flow.Flow, generator *post.Generator) *conversation.SessionService {
	return conversation.NewSessionService(f, generator)
}
