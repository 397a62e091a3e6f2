package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates invalid token settings
	// (for example, an empty secret, an unsupported algorithm or a
	// non-positive token lifetime).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInsecureSecretKey is returned when the development placeholder
	// secret is used in production.
	ErrInsecureSecretKey = errors.New("secret key must be set in production")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
