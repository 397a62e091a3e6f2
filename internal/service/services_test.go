package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/credit-risk-gateway/internal/config"
	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStructuredConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App:  config.App{Version: "1.0.0", Environment: config.EnvironmentDevelopment},
		Auth: testAuthConfig(),
	}
}

func newTestServices(t *testing.T, cfg config.StructuredConfig) *Services {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.Storage{}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)
	return services
}

func TestNewServices_InvalidConfig(t *testing.T) {
	storages, err := store.NewStorages(context.Background(), config.Storage{}, logger.Nop())
	require.NoError(t, err)

	cfg := testStructuredConfig()
	cfg.Auth.Algorithm = "RS256"
	_, err = NewServices(storages, cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedSigningAlgorithm)

	cfg = testStructuredConfig()
	cfg.App.Version = ""
	_, err = NewServices(storages, cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestSeedIfEnabled(t *testing.T) {
	cfg := testStructuredConfig()
	services := newTestServices(t, cfg)

	require.NoError(t, services.SeedIfEnabled(context.Background(), cfg.App))
	// seeding twice is a no-op
	require.NoError(t, services.SeedIfEnabled(context.Background(), cfg.App))

	user, err := services.AuthService.Authenticate(context.Background(), TestUsername, TestPassword)
	require.NoError(t, err)
	assert.Equal(t, TestEmail, user.Email)
	assert.Equal(t, TestFullName, user.FullName)
	assert.True(t, user.IsActive)
}

func TestSeedIfEnabled_SkippedInProduction(t *testing.T) {
	cfg := testStructuredConfig()
	cfg.App.Environment = config.EnvironmentProduction
	services := newTestServices(t, cfg)

	require.NoError(t, services.SeedIfEnabled(context.Background(), cfg.App))

	_, err := services.AuthService.Authenticate(context.Background(), TestUsername, TestPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSeedIfEnabled_Disabled(t *testing.T) {
	cfg := testStructuredConfig()
	cfg.App.DisableSeed = true
	services := newTestServices(t, cfg)

	require.NoError(t, services.SeedIfEnabled(context.Background(), cfg.App))

	_, err := services.AuthService.Authenticate(context.Background(), TestUsername, TestPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
