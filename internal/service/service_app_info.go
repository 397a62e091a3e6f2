package service

import (
	"context"
	"time"

	"github.com/MKhiriev/credit-risk-gateway/internal/config"
	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/models"
)

const (
	healthStatusHealthy = "healthy"
	rootMessage         = "AI-Powered Credit Risk Assessment Platform API Gateway"
	docsPath            = "/docs"
	healthPath          = "/health"
)

type appInfoService struct {
	appVersion  string
	environment string
	now         func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:  cfg.Version,
		environment: cfg.Environment,
		now:         time.Now,
		logger:      logger,
	}, nil
}

func (s *appInfoService) Health(ctx context.Context) models.HealthCheck {
	return models.HealthCheck{
		Status:      healthStatusHealthy,
		Version:     s.appVersion,
		Environment: s.environment,
		Timestamp:   s.now().UTC(),
	}
}

func (s *appInfoService) Root(ctx context.Context) models.RootInfo {
	return models.RootInfo{
		Message: rootMessage,
		Version: s.appVersion,
		Docs:    docsPath,
		Health:  healthPath,
	}
}
