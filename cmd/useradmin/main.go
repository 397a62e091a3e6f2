package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/credit-risk-gateway/internal/admin"
	"github.com/MKhiriev/credit-risk-gateway/internal/config"
	"github.com/MKhiriev/credit-risk-gateway/internal/crypto"
	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/internal/service"
	"github.com/MKhiriev/credit-risk-gateway/internal/store"
	"github.com/rs/zerolog"
)

func main() {
	log := logger.NewLoggerTo(os.Stderr, "credit-risk-useradmin")
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	cfg, err := config.GetStructuredConfigWithoutFlags()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = admin.RequirePersistentStore(cfg.Storage); err != nil {
		log.Fatal().Err(err).Msg("unsupported credential store")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	auth, err := service.NewAuthService(storages.UserRepository, crypto.NewBcryptHasher(cfg.Auth.BcryptCost), cfg.Auth, log)
	if err != nil {
		_ = storages.Close()
		log.Fatal().Err(err).Msg("error creating auth service")
	}

	cmd := admin.NewCommand(auth, os.Stdout)
	cmd.SetArgs(os.Args[1:])
	err = cmd.ExecuteContext(log.WithContext(ctx))

	if closeErr := storages.Close(); closeErr != nil {
		log.Err(closeErr).Msg("error closing storages")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
