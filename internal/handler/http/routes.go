package http

import (
	"net/http"

	"github.com/MKhiriev/credit-risk-gateway/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.metrics.withMetrics)
	}
	router.Use(withTrustedHosts(h.cfg.AllowedHosts))
	router.Use(withCORS(h.cfg.AllowedOrigins))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(withGZip)

	router.Get("/", h.root)
	router.Get("/health", h.health)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
			r.Post("/credit-risk/test", h.testAssess)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/me", h.me)
			r.Post("/credit-risk/assess", h.assess)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}

// notFound answers unknown paths and unregistered methods on known paths
// alike, so the existence of a route is not revealed.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
