package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeBearer is the token_type reported to clients in [TokenResponse].
const TokenTypeBearer = "bearer"

// Token is a signed, self-contained bearer credential. It is never
// persisted; the server keeps no token-side state.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// Username is the value of the "sub" claim.
	Username string `json:"-"`

	// ExpiresAt is the value of the "exp" claim.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// ToResponse builds the login response body for the token. ExpiresIn is the
// number of whole seconds left until expiry relative to now.
func (t Token) ToResponse(now time.Time) TokenResponse {
	expiresIn := int64(t.ExpiresAt.Sub(now) / time.Second)
	if expiresIn < 0 {
		expiresIn = 0
	}

	return TokenResponse{
		AccessToken: t.SignedString,
		TokenType:   TokenTypeBearer,
		ExpiresIn:   expiresIn,
	}
}

// TokenResponse is returned by the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
