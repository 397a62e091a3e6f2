package http

import (
	"fmt"
	"testing"

	"github.com/MKhiriev/credit-risk-gateway/internal/service"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOutcomeFromError(t *testing.T) {
	tests := map[error]string{
		service.ErrInvalidCredentials: "invalid_credentials",
		service.ErrMalformedToken:     "malformed_token",
		service.ErrExpiredToken:       "expired_token",
		service.ErrMissingSubject:     "missing_subject",
		service.ErrUnknownUser:        "unknown_user",
		service.ErrInactiveUser:       "inactive_user",
		service.ErrStoreUnavailable:   "other",
	}

	for err, want := range tests {
		assert.Equal(t, want, outcomeFromError(fmt.Errorf("wrapped: %w", err)), err.Error())
	}
}

func TestMetrics_AuthAttempt(t *testing.T) {
	m := NewMetrics()

	m.authAttempt(outcomeSuccess)
	m.authAttempt(outcomeSuccess)
	m.authAttempt(outcomeExpiredToken)

	assert.InDelta(t, 2, testutil.ToFloat64(m.authAttempts.WithLabelValues(outcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.authAttempts.WithLabelValues(outcomeExpiredToken)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.authAttempts.WithLabelValues(outcomeUnknownUser)), 0)
}
