package config

import "time"

const (
	// EnvironmentDevelopment is the default deployment environment.
	EnvironmentDevelopment = "development"
	// EnvironmentProduction disables development conveniences and requires
	// a real secret key.
	EnvironmentProduction = "production"

	// DevelopmentSecretKey is the placeholder secret shipped for local
	// development. It is rejected in production.
	DevelopmentSecretKey = "your-secret-key-change-in-production"
)

// defaultConfig returns the built-in configuration that every other source
// is merged on top of.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:        "AI-Powered Credit Risk Assessment Platform",
			Version:     "1.0.0",
			Environment: EnvironmentDevelopment,
			LogLevel:    "info",
		},
		Auth: Auth{
			SecretKey:                DevelopmentSecretKey,
			Algorithm:                "HS256",
			AccessTokenExpireMinutes: 30,
			BcryptCost:               10,
		},
		Server: Server{
			HTTPAddress:     "0.0.0.0:8000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			AllowedOrigins:  []string{"http://localhost:3000", "http://localhost:8080"},
			AllowedHosts:    []string{"localhost", "127.0.0.1"},
		},
		Storage: Storage{
			Cache: Cache{
				TTL: time.Minute,
			},
		},
	}
}
