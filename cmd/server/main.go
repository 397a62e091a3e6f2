package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/credit-risk-gateway/internal/config"
	"github.com/MKhiriev/credit-risk-gateway/internal/handler"
	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/internal/server"
	"github.com/MKhiriev/credit-risk-gateway/internal/service"
	"github.com/MKhiriev/credit-risk-gateway/internal/store"
	"github.com/MKhiriev/credit-risk-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Printf("Build: %s\n", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("credit-risk-gateway")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel, cfg.App.Debug); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.SeedIfEnabled(ctx, cfg.App); err != nil {
		log.Err(err).Msg("error seeding test user")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
