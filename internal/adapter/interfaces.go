// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the command line client to
// talk to the credit-risk gateway.
//
// [ServerAdapter] hides the HTTP/JSON details. Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so that callers
// can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/credit-risk-gateway/models"
)

// ServerAdapter defines the calls the client makes against the gateway.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none has been set.
	Token() string

	// Register creates an account and returns its public projection.
	Register(ctx context.Context, user models.UserCreate) (models.UserResponse, error)

	// Login exchanges credentials for an access token. On success the token
	// is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)

	// Me returns the account the stored token belongs to.
	Me(ctx context.Context) (models.UserResponse, error)

	// Assess submits an application for an authenticated assessment.
	Assess(ctx context.Context, req models.CreditRiskRequest) (models.CreditRiskResponse, error)

	// TestAssess submits an application to the unauthenticated test endpoint.
	TestAssess(ctx context.Context, req models.CreditRiskRequest) (models.CreditRiskResponse, error)

	// Health fetches the gateway health record.
	Health(ctx context.Context) (models.HealthCheck, error)
}
