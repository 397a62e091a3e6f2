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

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(ctx, payload)
	if err != nil {
		status := statusFromError(err)
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Warn().Err(err).Msg("invalid data provided")
			utils.WriteError(w, err.Error(), status)
		case errors.Is(err, service.ErrDuplicateUsername):
			log.Warn().Str("username", payload.Username).Msg("username already registered")
			utils.WriteError(w, msgUsernameTaken, status)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteError(w, messageFromStatus(status), status)
		}
		return
	}

	_, _ = utils.WriteJSON(w, user.ToResponse(), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, credentials.Username, credentials.Password)
	if err != nil {
		if service.IsAuthError(err) {
			log.Warn().Err(err).Str("username", credentials.Username).Msg("login failed")
			h.metrics.authAttempt(outcomeFromError(err))
			utils.WriteError(w, msgInvalidCredentials, http.StatusUnauthorized)
			return
		}

		status := statusFromError(err)
		log.Err(err).Msg("unexpected error occurred during user login")
		utils.WriteError(w, messageFromStatus(status), status)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, user.Username, 0)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	h.metrics.authAttempt(outcomeSuccess)
	log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user logged in")

	w.Header().Set(utils.AuthorizationHeader, utils.BearerHeader(token.SignedString))
	_, _ = utils.WriteJSON(w, token.ToResponse(h.now()), http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user in request context")
		utils.WriteError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, user.ToResponse(), http.StatusOK)
}
