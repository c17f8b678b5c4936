//go:build wireinject
// +build wireinject

package main

import (
	"mannamsalon/config"
	"mannamsalon/internal/command"
	"mannamsalon/internal/cron"
	"mannamsalon/internal/database"
	"mannamsalon/internal/handler"
	"mannamsalon/internal/middleware"
	"mannamsalon/internal/router"
	"mannamsalon/internal/service"
	"mannamsalon/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			telemetry.ProviderSet,
			command.ProviderSet,
		),
	)
}
