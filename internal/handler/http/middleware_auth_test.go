package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/credit-risk-gateway/internal/service"
	"github.com/MKhiriev/credit-risk-gateway/internal/utils"
	"github.com/MKhiriev/credit-risk-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runAuth passes a request with the given Authorization header through the
// auth middleware and reports whether the next handler ran.
func runAuth(t *testing.T, h *Handler, header string) (*httptest.ResponseRecorder, models.User, bool) {
	t.Helper()

	var (
		called bool
		user   models.User
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		user, _ = utils.GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	if header != "" {
		req.Header.Set(utils.AuthorizationHeader, header)
	}
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	return rec, user, called
}

func TestAuth_Success(t *testing.T) {
	h := newTestHandler(t, validatingAs("good-token", alice), nil)

	for _, header := range []string{"Bearer good-token", "bearer good-token", "BEARER  good-token "} {
		rec, user, called := runAuth(t, h, header)

		require.True(t, called, header)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, alice, user)
	}
}

func TestAuth_UniformUnauthorized(t *testing.T) {
	tests := []struct {
		name   string
		header string
		err    error
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic YWxpY2U6czNjcmV0"},
		{name: "scheme only", header: "Bearer"},
		{name: "malformed token", header: "Bearer x", err: service.ErrMalformedToken},
		{name: "expired token", header: "Bearer x", err: service.ErrExpiredToken},
		{name: "missing subject", header: "Bearer x", err: service.ErrMissingSubject},
		{name: "unknown user", header: "Bearer x", err: service.ErrUnknownUser},
		{name: "inactive user", header: "Bearer x", err: service.ErrInactiveUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuthService{
				validateTokenFn: func(context.Context, string) (models.User, error) {
					return models.User{}, tt.err
				},
			}
			rec, _, called := runAuth(t, newTestHandler(t, auth, nil), tt.header)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			assert.JSONEq(t, `{"error":"Could not validate credentials"}`, rec.Body.String())
		})
	}
}

func TestAuth_StoreUnavailable(t *testing.T) {
	auth := &fakeAuthService{
		validateTokenFn: func(context.Context, string) (models.User, error) {
			return models.User{}, service.ErrStoreUnavailable
		},
	}

	rec, _, called := runAuth(t, newTestHandler(t, auth, nil), "Bearer x")

	assert.False(t, called)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
}

func TestAuth_ValidatesOncePerRequest(t *testing.T) {
	calls := 0
	auth := &fakeAuthService{
		validateTokenFn: func(context.Context, string) (models.User, error) {
			calls++
			return alice, nil
		},
	}

	_, _, called := runAuth(t, newTestHandler(t, auth, nil), "Bearer x")

	assert.True(t, called)
	assert.Equal(t, 1, calls)
}
