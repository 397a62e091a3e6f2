package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/credit-risk-gateway/internal/crypto"
	"github.com/MKhiriev/credit-risk-gateway/models"
)

// Field names accepted by [UserValidator].
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldFullName = "full_name"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
	maxFullNameLength = 100
	minPasswordLength = 8
)

// UserValidator checks registration payloads.
type UserValidator struct{}

// NewUserValidator returns a [Validator] for [models.UserCreate].
func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserCreate:
		return v.validateUserCreate(ctx, value, fields...)
	case *models.UserCreate:
		return v.validateUserCreate(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUserCreate(_ context.Context, user models.UserCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldFullName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			n := utf8.RuneCountInString(user.Username)
			if n < minUsernameLength || n > maxUsernameLength {
				return ErrInvalidUsername
			}
		case FieldEmail:
			if !isValidEmail(user.Email) {
				return ErrInvalidEmail
			}
		case FieldFullName:
			if utf8.RuneCountInString(user.FullName) > maxFullNameLength {
				return ErrInvalidFullName
			}
		case FieldPassword:
			if utf8.RuneCountInString(user.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
			if len(user.Password) > crypto.MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidEmail accepts a bare addr-spec with a dotted domain. Display names
// ("Alice <a@x.io>") are rejected.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	_, domain, ok := strings.Cut(email, "@")
	return ok && strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
}
