// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// credit-risk gateway. It aggregates all sub-configurations and is
// populated by merging values from defaults, a .env file, environment
// variables, command-line flags, and an optional JSON/YAML file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application identity and runtime behaviour settings.
	App App `envPrefix:"APP_"`

	// Auth holds token signing and password hashing parameters.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the credential store and its cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, timeout and request-filtering settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the other sources.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Name is the human readable service name.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version reported by the health and root
	// endpoints.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Environment names the deployment environment
	// (e.g. "development", "staging", "production").
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Debug forces the debug log level regardless of LogLevel.
	// Env: APP_DEBUG
	Debug bool `env:"DEBUG"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// DisableSeed turns off seeding of the development test user.
	// Env: APP_DISABLE_SEED
	DisableSeed bool `env:"DISABLE_SEED"`
}

// IsProduction reports whether the application runs in the production
// environment.
func (a App) IsProduction() bool {
	return a.Environment == EnvironmentProduction
}

// ShouldSeedTestUser reports whether the development test user should be
// created at startup. Seeding never happens in production.
func (a App) ShouldSeedTestUser() bool {
	return !a.IsProduction() && !a.DisableSeed
}

// Auth holds token and password hashing parameters.
type Auth struct {
	// SecretKey is the shared secret used to sign and verify tokens.
	// Must be kept confidential.
	// Env: AUTH_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// Algorithm is the JWS algorithm name used for signing ("HS256",
	// "HS384" or "HS512").
	// Env: AUTH_ALGORITHM
	Algorithm string `env:"ALGORITHM"`

	// AccessTokenExpireMinutes is the default token time-to-live in minutes.
	// Env: AUTH_ACCESS_TOKEN_EXPIRE_MINUTES
	AccessTokenExpireMinutes int `env:"ACCESS_TOKEN_EXPIRE_MINUTES"`

	// TokenLeeway is the clock skew tolerated when checking token expiry.
	// Env: AUTH_TOKEN_LEEWAY
	TokenLeeway time.Duration `env:"TOKEN_LEEWAY"`

	// BcryptCost is the bcrypt work factor used for password hashes.
	// Env: AUTH_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`
}

// TokenTTL returns the default token time-to-live.
func (a Auth) TokenTTL() time.Duration {
	return time.Duration(a.AccessTokenExpireMinutes) * time.Minute
}

// Server holds network and request-filtering settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins lists the CORS origins allowed to call the API.
	// "*" allows any origin.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// AllowedHosts lists the values accepted in the Host header.
	// "*" accepts any host.
	// Env: SERVER_ALLOWED_HOSTS (comma separated)
	AllowedHosts []string `env:"ALLOWED_HOSTS" envSeparator:","`

	// DisableMetrics removes the /metrics endpoint and request metrics.
	// Env: SERVER_DISABLE_METRICS
	DisableMetrics bool `env:"DISABLE_METRICS"`
}

// Storage groups the configuration of the credential store backends.
type Storage struct {
	// DB holds the credential store connection settings.
	DB DB `envPrefix:"DB_"`

	// Cache holds the optional user lookup cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the credential store.
type DB struct {
	// DSN selects the backend: empty or "memory" for the in-memory store,
	// "postgres://..." for PostgreSQL, "sqlite://<path>" for SQLite.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Cache holds settings for the Redis-backed user lookup cache.
type Cache struct {
	// RedisURL enables the cache when non-empty
	// (e.g. "redis://localhost:6379/0").
	// Env: STORAGE_CACHE_REDIS_URL
	RedisURL string `env:"REDIS_URL"`

	// TTL is how long a cached user record stays valid.
	// Env: STORAGE_CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources, using os.Args for command-line flags.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

// GetStructuredConfigWithoutFlags is like [GetStructuredConfig] but ignores
// the command line. It serves tools that own their own arguments.
func GetStructuredConfigWithoutFlags() (*StructuredConfig, error) {
	return loadStructuredConfig(nil)
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
