package main

import (
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/posty-app/post-api/internal/config"
	"github.com/posty-app/post-api/internal/infrastructure/logger"
	"github.com/posty-app/post-api/internal/interfaces/httpserver"
)

type Application struct {
	httpServer *httpserver.HTTPServer
}

func (application *Application) Start() error {
	var eg errgroup.Group
	eg.Go(func() error {
		return application.httpServer.Run()
	})
	return eg.Wait()
}

func main() {
	// Missing .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log := logger.GetLogger()
		log.Fatal().Err(err).Msg("load config")
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.GetLogger()

	if !cfg.HasOpenAIKey() {
		log.Warn().Msg("OPENAI_API_KEY not set, post generation will use fallback templates")
	}

	application, err := CreateApplication(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("create application")
	}

	log.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Int("port", cfg.HTTPPort).
		Msg("starting post-api")

	if err := application.Start(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
