package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/models"
)

// Development test account created at startup outside production.
const (
	TestUsername = "testuser"
	TestPassword = "testpassword"
	TestEmail    = "test@example.com"
	TestFullName = "Test User"
)

// SeedTestUser registers the development test account. An existing account
// is left untouched.
func SeedTestUser(ctx context.Context, auth AuthService) error {
	_, err := auth.Register(ctx, models.UserCreate{
		Username: TestUsername,
		Email:    TestEmail,
		Password: TestPassword,
		FullName: TestFullName,
	})
	if errors.Is(err, ErrDuplicateUsername) {
		logger.FromContext(ctx).Debug().Str("username", TestUsername).Msg("test user already exists")
		return nil
	}

	return err
}
