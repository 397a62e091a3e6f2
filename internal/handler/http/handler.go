package http

import (
	"time"

	"github.com/MKhiriev/credit-risk-gateway/internal/config"
	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	metrics  *Metrics
	now      func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		cfg:      cfg,
		now:      time.Now,
		logger:   logger,
	}
	if !cfg.DisableMetrics {
		h.metrics = NewMetrics()
	}

	logger.Info().Bool("metrics", h.metrics != nil).Msg("http handler created")
	return h
}
