package http

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/credit-risk-gateway/internal/config"
	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/internal/service"
	"github.com/MKhiriev/credit-risk-gateway/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fake AuthService
// ─────────────────────────────────────────────

// fakeAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type fakeAuthService struct {
	registerFn      func(ctx context.Context, user models.UserCreate) (models.User, error)
	authenticateFn  func(ctx context.Context, username, password string) (models.User, error)
	issueTokenFn    func(ctx context.Context, username string, ttl time.Duration) (models.Token, error)
	validateTokenFn func(ctx context.Context, tokenString string) (models.User, error)
	setUserActiveFn func(ctx context.Context, username string, active bool) (models.User, error)
}

func (f *fakeAuthService) Register(ctx context.Context, user models.UserCreate) (models.User, error) {
	return f.registerFn(ctx, user)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	return f.authenticateFn(ctx, username, password)
}

func (f *fakeAuthService) IssueToken(ctx context.Context, username string, ttl time.Duration) (models.Token, error) {
	return f.issueTokenFn(ctx, username, ttl)
}

func (f *fakeAuthService) ValidateToken(ctx context.Context, tokenString string) (models.User, error) {
	return f.validateTokenFn(ctx, tokenString)
}

func (f *fakeAuthService) SetUserActive(ctx context.Context, username string, active bool) (models.User, error) {
	return f.setUserActiveFn(ctx, username, active)
}

// ─────────────────────────────────────────────
// Fake RiskService
// ─────────────────────────────────────────────

type fakeRiskService struct {
	assessFn func(ctx context.Context, req models.CreditRiskRequest, assessor string) (models.CreditRiskResponse, error)
}

func (f *fakeRiskService) Assess(ctx context.Context, req models.CreditRiskRequest, assessor string) (models.CreditRiskResponse, error) {
	return f.assessFn(ctx, req, assessor)
}

// ─────────────────────────────────────────────
// Fake AppInfoService
// ─────────────────────────────────────────────

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) Health(context.Context) models.HealthCheck {
	return models.HealthCheck{Status: "healthy", Version: f.version, Environment: "test", Timestamp: testNow}
}

func (f *fakeAppInfoService) Root(context.Context) models.RootInfo {
	return models.RootInfo{Message: "root", Version: f.version, Docs: "/docs", Health: "/health"}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

var alice = models.User{
	ID:           1,
	Username:     "alice",
	Email:        "alice@example.com",
	PasswordHash: "$2a$10$secret-hash",
	IsActive:     true,
	CreatedAt:    testNow,
}

// testServerConfig accepts any host and origin and keeps metrics on.
func testServerConfig() config.Server {
	return config.Server{
		AllowedHosts:   []string{"*"},
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

// newTestHandler builds a Handler around the given fakes. Nil services are
// replaced with empty fakes that panic when called.
func newTestHandler(t *testing.T, auth service.AuthService, risk service.RiskService) *Handler {
	t.Helper()

	if auth == nil {
		auth = &fakeAuthService{}
	}
	if risk == nil {
		risk = &fakeRiskService{}
	}

	h := NewHandler(&service.Services{
		AuthService:    auth,
		RiskService:    risk,
		AppInfoService: &fakeAppInfoService{version: "test"},
	}, testServerConfig(), logger.Nop())
	h.now = func() time.Time { return testNow }
	return h
}

// validatingAs returns an auth fake that accepts exactly token for user.
func validatingAs(token string, user models.User) *fakeAuthService {
	return &fakeAuthService{
		validateTokenFn: func(_ context.Context, got string) (models.User, error) {
			if got != token {
				return models.User{}, service.ErrMalformedToken
			}
			return user, nil
		},
	}
}

func decodeJSON[T any](t *testing.T, data []byte) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}
