package service

import (
	"context"
	"time"

	"github.com/MKhiriev/credit-risk-gateway/models"
)

// AuthService verifies credentials, issues signed tokens and resolves
// presented tokens back to user records.
type AuthService interface {
	// Register validates the payload, hashes the password and creates an
	// active user. Returns [ErrInvalidDataProvided] or [ErrDuplicateUsername].
	Register(ctx context.Context, user models.UserCreate) (models.User, error)

	// Authenticate returns the user whose password matches. Unknown users
	// and wrong passwords both yield [ErrInvalidCredentials] and take the
	// same time. A deactivated user with a correct password yields
	// [ErrInactiveUser].
	Authenticate(ctx context.Context, username, password string) (models.User, error)

	// IssueToken signs {sub: username, exp: now+ttl}. A non-positive ttl
	// selects the configured default. The username is not looked up.
	IssueToken(ctx context.Context, username string, ttl time.Duration) (models.Token, error)

	// ValidateToken verifies tokenString and resolves its subject with
	// exactly one credential store lookup. It never mutates the record.
	ValidateToken(ctx context.Context, tokenString string) (models.User, error)

	// SetUserActive activates or deactivates username. Tokens already
	// issued to a deactivated user are rejected on their next use.
	SetUserActive(ctx context.Context, username string, active bool) (models.User, error)
}

// RiskService scores credit applications with fixed threshold rules.
type RiskService interface {
	Assess(ctx context.Context, request models.CreditRiskRequest, assessor string) (models.CreditRiskResponse, error)
}

// AppInfoService reports static application metadata.
type AppInfoService interface {
	Health(ctx context.Context) models.HealthCheck
	Root(ctx context.Context) models.RootInfo
}
