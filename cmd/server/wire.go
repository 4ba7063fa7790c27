//go:build wireinject

package main

import (
	"aitoolhub-server/services/hub-api/internal/domain"
	"aitoolhub-server/services/hub-api/internal/infrastructure"
	"aitoolhub-server/services/hub-api/internal/interfaces"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/handlers"
	"aitoolhub-server/services/hub-api/internal/interfaces/httpserver/routes"

	"github.com/google/wire"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		handlers.HandlerProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}

func CreateDataInitializer() (*DataInitializer, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		wire.Struct(new(DataInitializer), "*"),
	)
	return nil, nil
}
