package service

import "errors"

var (
	// ErrInvalidDataProvided wraps input validation failures.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrDuplicateUsername is returned by Register when the username is
	// already taken. It is the only auth error whose meaning is shown to
	// clients.
	ErrDuplicateUsername = errors.New("username already registered")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password at login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMalformedToken is returned when a token cannot be parsed or its
	// signature does not verify (wrong key, wrong algorithm, tampering).
	ErrMalformedToken = errors.New("malformed token")
	// ErrExpiredToken is returned when the token "exp" has passed.
	ErrExpiredToken = errors.New("token is expired")
	// ErrMissingSubject is returned when a verified token has no "sub".
	ErrMissingSubject = errors.New("token has no subject")
	// ErrUnknownUser is returned when the subject does not resolve to a
	// stored user.
	ErrUnknownUser = errors.New("unknown user")
	// ErrInactiveUser is returned when the resolved user is deactivated.
	ErrInactiveUser = errors.New("inactive user")

	// ErrStoreUnavailable is returned when the credential store can not
	// answer. It is never reported as a missing user.
	ErrStoreUnavailable = errors.New("credential store unavailable")

	// ErrTokenCreationFailed wraps signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")
	// ErrUnsupportedSigningAlgorithm is returned at construction for
	// non-HMAC algorithms.
	ErrUnsupportedSigningAlgorithm = errors.New("unsupported signing algorithm")
	// ErrDummyHashFailed is returned at construction when the hash used to
	// equalize unknown-user logins can not be computed.
	ErrDummyHashFailed = errors.New("error hashing dummy password")
	// ErrEmptySecretKey is returned at construction without a secret.
	ErrEmptySecretKey = errors.New("secret key is empty")

	// ErrVersionIsNotSpecified is returned when the app info service is
	// built without a version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// IsAuthError reports whether err is one of the errors that must be shown
// to clients as a uniform "unauthorized" outcome.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrMalformedToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrMissingSubject) ||
		errors.Is(err, ErrUnknownUser) ||
		errors.Is(err, ErrInactiveUser)
}
