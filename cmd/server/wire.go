//go:build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/posty-app/post-api/internal/config"
	"github.com/posty-app/post-api/internal/domain"
	"github.com/posty-app/post-api/internal/infrastructure"
	"github.com/posty-app/post-api/internal/interfaces"
)

func CreateApplication(cfg *config.Config) (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
