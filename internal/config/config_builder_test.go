package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return writeTempConfig(t, "config.json", data)
}

// isolateEnv points the .env lookup at a missing file so the developer's
// working directory cannot leak into the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv(dotEnvPathVariable, filepath.Join(t.TempDir(), "missing.env"))
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Auth: Auth{AccessTokenExpireMinutes: 5}},
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:9000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Auth.AccessTokenExpireMinutes)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "HS256", cfg.Auth.Algorithm)
	assert.Equal(t, DevelopmentSecretKey, cfg.Auth.SecretKey)
}

func TestBuild_ZeroValuesDoNotOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

// ── loadStructuredConfig ──────────────────────────────────────────────────────

func TestLoadStructuredConfig_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := loadStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, EnvironmentDevelopment, cfg.App.Environment)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL())
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.HTTPAddress)
	assert.True(t, cfg.App.ShouldSeedTestUser())
}

func TestLoadStructuredConfig_Priority(t *testing.T) {
	isolateEnv(t)
	t.Setenv("AUTH_ACCESS_TOKEN_EXPIRE_MINUTES", "10")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:7000")
	t.Setenv("APP_LOG_LEVEL", "warn")

	filePath := writeTempConfig(t, "config.yaml", []byte("app:\n  log_level: error\n"))

	cfg, err := loadStructuredConfig([]string{"-a", "127.0.0.1:7100", "-c", filePath})
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Auth.AccessTokenExpireMinutes, "env overrides defaults")
	assert.Equal(t, "127.0.0.1:7100", cfg.Server.HTTPAddress, "flags override env")
	assert.Equal(t, "error", cfg.App.LogLevel, "file overrides env")
}

func TestLoadStructuredConfig_DotEnv(t *testing.T) {
	envFile := writeTempConfig(t, ".env", []byte("AUTH_SECRET_KEY=from-dotenv\n"))
	t.Setenv(dotEnvPathVariable, envFile)
	// godotenv does not override variables that are already set, so make
	// sure the key is absent before loading and removed afterwards.
	t.Setenv("AUTH_SECRET_KEY", "")
	require.NoError(t, os.Unsetenv("AUTH_SECRET_KEY"))

	cfg, err := loadStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Auth.SecretKey)
}

func TestLoadStructuredConfig_ProductionRequiresSecret(t *testing.T) {
	isolateEnv(t)
	t.Setenv("APP_ENVIRONMENT", EnvironmentProduction)

	_, err := loadStructuredConfig(nil)
	assert.ErrorIs(t, err, ErrInsecureSecretKey)

	t.Setenv("AUTH_SECRET_KEY", "a-real-secret")
	cfg, err := loadStructuredConfig(nil)
	require.NoError(t, err)
	assert.False(t, cfg.App.ShouldSeedTestUser())
}

func TestLoadStructuredConfig_BadFlag(t *testing.T) {
	isolateEnv(t)

	_, err := loadStructuredConfig([]string{"-unknown"})
	assert.Error(t, err)
}

func TestLoadStructuredConfig_MissingFile(t *testing.T) {
	isolateEnv(t)

	_, err := loadStructuredConfig([]string{"-config", filepath.Join(t.TempDir(), "nope.json")})
	assert.Error(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "empty address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "empty secret",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.SecretKey = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "asymmetric algorithm",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.Algorithm = "RS256" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "zero lifetime",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.AccessTokenExpireMinutes = 0 },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "negative leeway",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenLeeway = -time.Second },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "placeholder secret in production",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Environment = EnvironmentProduction },
			wantErr: ErrInsecureSecretKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
