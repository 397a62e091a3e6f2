package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/credit-risk-gateway/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidJWTParams is returned by GenerateJWTToken for missing inputs.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT token")
	// ErrUnsupportedSigningMethod is returned for algorithms that are not
	// HMAC based.
	ErrUnsupportedSigningMethod = errors.New("unsupported signing method")
	// ErrJWTSubjectMissing is returned when a verified token carries no
	// "sub" claim.
	ErrJWTSubjectMissing = errors.New("token has no subject")
)

// HMACSigningMethod resolves an algorithm name such as "HS256" to its
// jwt.SigningMethod. Only HMAC methods are accepted since tokens are signed
// and verified with the same shared secret.
func HMACSigningMethod(alg string) (jwt.SigningMethod, error) {
	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSigningMethod, alg)
	}

	return method, nil
}

// GenerateJWTToken creates a signed JWT carrying two claims:
//   - Subject   (sub): the username
//   - ExpiresAt (exp): expiresAt, truncated to whole seconds
//
// Returns:
//
//	models.Token - the signed token string and the jwt.Token object
//	error        - non-nil if parameters are invalid or signing fails
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("alice", time.Now().Add(time.Hour), jwt.SigningMethodHS256, "secret")
func GenerateJWTToken(subject string, expiresAt time.Time, method jwt.SigningMethod, signKey string) (models.Token, error) {
	if subject == "" || method == nil || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	exp := jwt.NewNumericDate(expiresAt)
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: exp,
	}

	token := jwt.NewWithClaims(method, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Username:     subject,
		ExpiresAt:    exp.Time,
	}, nil
}

// JWTValidation holds the parameters ValidateAndParseJWTToken checks a
// token against.
type JWTValidation struct {
	// Method is the only signing method accepted.
	Method jwt.SigningMethod
	// SignKey is the shared HMAC secret.
	SignKey string
	// Leeway is the clock skew tolerated on "exp".
	Leeway time.Duration
	// Now returns the current time; time.Now when nil.
	Now func() time.Time
}

// ValidateAndParseJWTToken verifies tokenString and extracts its claims.
//
// Validation order:
//  1. Structure and signature (method must equal v.Method).
//  2. Expiry: "exp" is required and a token whose "exp" equals the current
//     time is already expired.
//  3. Subject presence.
//
// Errors from steps 1 and 2 are the jwt library errors (test them with
// errors.Is against jwt.ErrTokenExpired and friends); step 3 yields
// ErrJWTSubjectMissing.
func ValidateAndParseJWTToken(tokenString string, v JWTValidation) (models.Token, error) {
	if v.Method == nil || v.SignKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{v.Method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.Leeway),
	}
	if v.Now != nil {
		opts = append(opts, jwt.WithTimeFunc(v.Now))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(v.SignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, err
	}

	if claims.Subject == "" {
		return models.Token{}, ErrJWTSubjectMissing
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Username:     claims.Subject,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}
