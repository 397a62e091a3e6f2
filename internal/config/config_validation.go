// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// SupportedAlgorithms lists the JWS algorithms accepted for token signing.
// Only HMAC algorithms are supported since tokens are verified with the
// same shared secret they are signed with.
var SupportedAlgorithms = []string{"HS256", "HS384", "HS512"}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if cfg.Auth.SecretKey == "" {
		return fmt.Errorf("%w: empty secret key", ErrInvalidAuthConfigs)
	}
	if cfg.App.IsProduction() && cfg.Auth.SecretKey == DevelopmentSecretKey {
		return ErrInsecureSecretKey
	}
	if !slices.Contains(SupportedAlgorithms, cfg.Auth.Algorithm) {
		return fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidAuthConfigs, cfg.Auth.Algorithm)
	}
	if cfg.Auth.AccessTokenExpireMinutes <= 0 {
		return fmt.Errorf("%w: token lifetime must be positive", ErrInvalidAuthConfigs)
	}
	if cfg.Auth.TokenLeeway < 0 {
		return fmt.Errorf("%w: negative token leeway", ErrInvalidAuthConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
