package http

import (
	"net/http"

	"github.com/MKhiriev/credit-risk-gateway/internal/utils"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.AppInfoService.Root(r.Context()), http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.AppInfoService.Health(r.Context()), http.StatusOK)
}
