package utils

import (
	"errors"
	"strings"
)

// AuthorizationHeader is the request header carrying bearer credentials.
const AuthorizationHeader = "Authorization"

// ErrNoBearerToken is returned when a header value does not carry a
// non-empty bearer credential.
var ErrNoBearerToken = errors.New("no bearer token provided")

// ParseBearerToken extracts the credential from an Authorization header
// value of the form "Bearer <token>". The scheme is matched
// case-insensitively.
func ParseBearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrNoBearerToken
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrNoBearerToken
	}

	return token, nil
}

// BearerHeader formats token as an Authorization header value.
func BearerHeader(token string) string {
	return "Bearer " + token
}
