package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/credit-risk-gateway/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrDuplicateUsername:   http.StatusConflict,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrMalformedToken:     http.StatusUnauthorized,
	service.ErrExpiredToken:       http.StatusUnauthorized,
	service.ErrMissingSubject:     http.StatusUnauthorized,
	service.ErrUnknownUser:        http.StatusUnauthorized,
	service.ErrInactiveUser:       http.StatusUnauthorized,

	service.ErrStoreUnavailable: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromStatus returns the client-facing message for failures that
// carry no more specific one.
func messageFromStatus(status int) string {
	switch status {
	case http.StatusServiceUnavailable:
		return msgServiceUnavailable
	case http.StatusInternalServerError:
		return msgInternalServerError
	default:
		return http.StatusText(status)
	}
}
