package http

import (
	"net/http"

	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/internal/service"
	"github.com/MKhiriev/credit-risk-gateway/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization" header, resolves it via
// [service.AuthService.ValidateToken] and, on success, stores the user in
// the request context (see [utils.WithUser]) before delegating to next.
//
// Every authentication failure (missing header, wrong scheme, malformed,
// expired, subject-less token, unknown or inactive user) produces the same
// 401 response with a "WWW-Authenticate: Bearer" challenge. The specific
// reason is only logged. A credential store outage yields 503.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get(utils.AuthorizationHeader))
		if err != nil {
			log.Warn().Err(err).Msg("request without bearer token")
			h.metrics.authAttempt(outcomeMissingToken)
			unauthorized(w)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ValidateToken(ctx, tokenString)
		if err != nil {
			if service.IsAuthError(err) {
				log.Warn().Err(err).Msg("token validation failed")
				h.metrics.authAttempt(outcomeFromError(err))
				unauthorized(w)
				return
			}

			status := statusFromError(err)
			log.Err(err).Msg("error occurred during token validation")
			utils.WriteError(w, messageFromStatus(status), status)
			return
		}

		log.Info().Str("username", user.Username).Int64("user_id", user.ID).Msg("user authenticated")
		h.metrics.authAttempt(outcomeSuccess)

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set(wwwAuthenticateHeader, wwwAuthenticateChallenge)
	utils.WriteError(w, msgCouldNotValidate, http.StatusUnauthorized)
}
