package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/credit-risk-gateway/internal/config"
	"github.com/MKhiriev/credit-risk-gateway/internal/crypto"
	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/internal/store"
)

type Services struct {
	AuthService    AuthService
	RiskService    RiskService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.UserRepository, crypto.NewBcryptHasher(cfg.Auth.BcryptCost), cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    authService,
		RiskService:    NewRiskService(logger),
		AppInfoService: appInfoService,
	}, nil
}

// SeedIfEnabled creates the development test user when cfg allows it.
func (s *Services) SeedIfEnabled(ctx context.Context, cfg config.App) error {
	if !cfg.ShouldSeedTestUser() {
		return nil
	}

	return SeedTestUser(ctx, s.AuthService)
}
