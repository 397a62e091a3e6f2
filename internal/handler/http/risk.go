package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/internal/service"
	"github.com/MKhiriev/credit-risk-gateway/internal/utils"
	"github.com/MKhiriev/credit-risk-gateway/models"
)

func (h *Handler) assess(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user in request context")
		utils.WriteError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	h.assessAs(w, r, user.Username)
}

func (h *Handler) testAssess(w http.ResponseWriter, r *http.Request) {
	h.assessAs(w, r, service.TestAssessor)
}

func (h *Handler) assessAs(w http.ResponseWriter, r *http.Request, assessor string) {
	log := logger.FromRequest(r)

	var request models.CreditRiskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	response, err := h.services.RiskService.Assess(r.Context(), request, assessor)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			utils.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("credit risk assessment failed")
		utils.WriteError(w, msgAssessmentFailed, http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}
