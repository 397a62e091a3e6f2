package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the gateway
	// (e.g. "http://localhost:8000").
	// Env: CLIENT_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level configuration of the command line client.
type ClientConfig struct {
	// Adapter contains the gateway address and timeouts.
	Adapter ClientAdapter `envPrefix:"CLIENT_"`
	// Token is a previously issued access token used by authenticated
	// commands when no --token flag is given.
	// Env: CLIENT_TOKEN
	Token string `env:"CLIENT_TOKEN"`
}

// GetClientConfig builds and validates the client configuration from
// built-in defaults and CLIENT_* environment variables.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "http://localhost:8000",
			RequestTimeout: 10 * time.Second,
		},
	}

	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
