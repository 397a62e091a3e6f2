package utils

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSignKey = "secret-key"

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func testValidation(now time.Time) JWTValidation {
	return JWTValidation{
		Method:  jwt.SigningMethodHS256,
		SignKey: testSignKey,
		Now:     func() time.Time { return now },
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("alice", testNow.Add(time.Hour), jwt.SigningMethodHS256, testSignKey)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if parts := strings.Split(token.SignedString, "."); len(parts) != 3 {
		t.Fatalf("expected three segments, got %d", len(parts))
	}
	if token.Username != "alice" {
		t.Errorf("expected username alice, got %s", token.Username)
	}
	if !token.ExpiresAt.Equal(testNow.Add(time.Hour)) {
		t.Errorf("unexpected expiry %s", token.ExpiresAt)
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Subject != "alice" {
		t.Errorf("expected subject 'alice', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		method  jwt.SigningMethod
		key     string
	}{
		{"empty subject", "", jwt.SigningMethodHS256, "key"},
		{"nil method", "alice", nil, "key"},
		{"empty key", "alice", jwt.SigningMethodHS256, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.subject, testNow, tt.method, tt.key)
			if !errors.Is(err, ErrInvalidJWTParams) {
				t.Errorf("expected ErrInvalidJWTParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("alice", testNow.Add(time.Minute), jwt.SigningMethodHS256, testSignKey)
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testValidation(testNow))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.Username != "alice" {
		t.Errorf("expected alice, got %s", parsed.Username)
	}
}

func TestValidateAndParseJWTToken_ExpiryBoundary(t *testing.T) {
	exp := testNow.Add(time.Minute)
	token, err := GenerateJWTToken("alice", exp, jwt.SigningMethodHS256, testSignKey)
	if err != nil {
		t.Fatal(err)
	}

	if _, err = ValidateAndParseJWTToken(token.SignedString, testValidation(exp.Add(-time.Second))); err != nil {
		t.Errorf("expected valid one second before exp, got %v", err)
	}
	if _, err = ValidateAndParseJWTToken(token.SignedString, testValidation(exp)); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired at exp, got %v", err)
	}

	withLeeway := testValidation(exp)
	withLeeway.Leeway = 5 * time.Second
	if _, err = ValidateAndParseJWTToken(token.SignedString, withLeeway); err != nil {
		t.Errorf("expected leeway to accept token at exp, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongKeyOrMethod(t *testing.T) {
	token, err := GenerateJWTToken("alice", testNow.Add(time.Minute), jwt.SigningMethodHS256, testSignKey)
	if err != nil {
		t.Fatal(err)
	}

	wrongKey := testValidation(testNow)
	wrongKey.SignKey = "other-key"
	if _, err = ValidateAndParseJWTToken(token.SignedString, wrongKey); !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected ErrTokenSignatureInvalid, got %v", err)
	}

	wrongMethod := testValidation(testNow)
	wrongMethod.Method = jwt.SigningMethodHS512
	if _, err = ValidateAndParseJWTToken(token.SignedString, wrongMethod); !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected ErrTokenSignatureInvalid for wrong method, got %v", err)
	}
}

func TestValidateAndParseJWTToken_TamperedSignature(t *testing.T) {
	token, err := GenerateJWTToken("alice", testNow.Add(time.Minute), jwt.SigningMethodHS256, testSignKey)
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(token.SignedString, ".")
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		t.Fatal(err)
	}
	sig[0] ^= 0x01
	parts[2] = base64.RawURLEncoding.EncodeToString(sig)

	_, err = ValidateAndParseJWTToken(strings.Join(parts, "."), testValidation(testNow))
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestValidateAndParseJWTToken_MissingClaims(t *testing.T) {
	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Minute)),
	})
	signed, err := noSubject.SignedString([]byte(testSignKey))
	if err != nil {
		t.Fatal(err)
	}
	if _, err = ValidateAndParseJWTToken(signed, testValidation(testNow)); !errors.Is(err, ErrJWTSubjectMissing) {
		t.Errorf("expected ErrJWTSubjectMissing, got %v", err)
	}

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"})
	signed, err = noExpiry.SignedString([]byte(testSignKey))
	if err != nil {
		t.Fatal(err)
	}
	if _, err = ValidateAndParseJWTToken(signed, testValidation(testNow)); !errors.Is(err, jwt.ErrTokenRequiredClaimMissing) {
		t.Errorf("expected ErrTokenRequiredClaimMissing, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not-a-token", testValidation(testNow)); !errors.Is(err, jwt.ErrTokenMalformed) {
		t.Errorf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestHMACSigningMethod(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		method, err := HMACSigningMethod(alg)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", alg, err)
		}
		if method.Alg() != alg {
			t.Errorf("expected %s, got %s", alg, method.Alg())
		}
	}

	for _, alg := range []string{"RS256", "none", ""} {
		if _, err := HMACSigningMethod(alg); !errors.Is(err, ErrUnsupportedSigningMethod) {
			t.Errorf("%q: expected ErrUnsupportedSigningMethod, got %v", alg, err)
		}
	}
}
