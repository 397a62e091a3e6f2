package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/credit-risk-gateway/internal/adapter"
	"github.com/MKhiriev/credit-risk-gateway/internal/client"
	"github.com/MKhiriev/credit-risk-gateway/internal/config"
	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/models"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLoggerTo(os.Stderr, "credit-risk-client")
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	app, err := client.NewApp(serverAdapter, *cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client app")
	}

	if err = app.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
