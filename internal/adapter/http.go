package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/credit-risk-gateway/internal/config"
	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/internal/utils"
	"github.com/MKhiriev/credit-risk-gateway/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/JSON implementation of
// [ServerAdapter]. The base URL is taken from cfg.HTTPAddress; a missing
// scheme defaults to http.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.UserCreate) (models.UserResponse, error) {
	var created models.UserResponse
	if err := h.do(h.request(ctx).SetBody(user), "POST", "/api/v1/auth/register", &created); err != nil {
		return models.UserResponse{}, fmt.Errorf("register: %w", err)
	}
	return created, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	var token models.TokenResponse
	if err := h.do(h.request(ctx).SetBody(req), "POST", "/api/v1/auth/login", &token); err != nil {
		return models.TokenResponse{}, fmt.Errorf("login: %w", err)
	}
	if token.AccessToken == "" {
		return models.TokenResponse{}, fmt.Errorf("login: %w", ErrNoTokenInResponse)
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("username", req.Username).Int64("expires_in", token.ExpiresIn).Msg("logged in")
	return token, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.UserResponse, error) {
	var user models.UserResponse
	if err := h.do(h.authedRequest(ctx), "GET", "/api/v1/me", &user); err != nil {
		return models.UserResponse{}, fmt.Errorf("me: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) Assess(ctx context.Context, req models.CreditRiskRequest) (models.CreditRiskResponse, error) {
	var result models.CreditRiskResponse
	if err := h.do(h.authedRequest(ctx).SetBody(req), "POST", "/api/v1/credit-risk/assess", &result); err != nil {
		return models.CreditRiskResponse{}, fmt.Errorf("assess: %w", err)
	}
	return result, nil
}

func (h *httpServerAdapter) TestAssess(ctx context.Context, req models.CreditRiskRequest) (models.CreditRiskResponse, error) {
	var result models.CreditRiskResponse
	if err := h.do(h.request(ctx).SetBody(req), "POST", "/api/v1/credit-risk/test", &result); err != nil {
		return models.CreditRiskResponse{}, fmt.Errorf("test assess: %w", err)
	}
	return result, nil
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthCheck, error) {
	var health models.HealthCheck
	if err := h.do(h.request(ctx), "GET", "/health", &health); err != nil {
		return models.HealthCheck{}, fmt.Errorf("health: %w", err)
	}
	return health, nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader(utils.AuthorizationHeader, utils.BearerHeader(token))
	}
	return req
}

// do sends req and decodes a successful JSON body into out.
func (h *httpServerAdapter) do(req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("gateway responded")

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
