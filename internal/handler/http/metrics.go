package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/credit-risk-gateway/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes reported by auth_attempts_total.
const (
	outcomeSuccess            = "success"
	outcomeMissingToken       = "missing_token"
	outcomeInvalidCredentials = "invalid_credentials"
	outcomeMalformedToken     = "malformed_token"
	outcomeExpiredToken       = "expired_token"
	outcomeMissingSubject     = "missing_subject"
	outcomeUnknownUser        = "unknown_user"
	outcomeInactiveUser       = "inactive_user"
	outcomeOther              = "other"
)

// unmatchedRoute labels requests no route matched, keeping the endpoint
// label bounded.
const unmatchedRoute = "unmatched"

// Metrics holds the Prometheus collectors of one handler. Each handler
// owns its registry so several handlers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	authAttempts *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "endpoint", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		authAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Authentication attempts by outcome.",
		}, []string{"outcome"}),
	}
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		endpoint := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				endpoint = pattern
			}
		}

		m.requests.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode())).Inc()
		m.duration.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	})
}

// authAttempt is a no-op on a nil receiver so handlers built without
// metrics can call it unconditionally.
func (m *Metrics) authAttempt(outcome string) {
	if m == nil {
		return
	}
	m.authAttempts.WithLabelValues(outcome).Inc()
}

func outcomeFromError(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return outcomeInvalidCredentials
	case errors.Is(err, service.ErrMalformedToken):
		return outcomeMalformedToken
	case errors.Is(err, service.ErrExpiredToken):
		return outcomeExpiredToken
	case errors.Is(err, service.ErrMissingSubject):
		return outcomeMissingSubject
	case errors.Is(err, service.ErrUnknownUser):
		return outcomeUnknownUser
	case errors.Is(err, service.ErrInactiveUser):
		return outcomeInactiveUser
	default:
		return outcomeOther
	}
}
