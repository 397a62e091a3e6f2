// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/credit-risk-gateway/models"
	"github.com/stretchr/testify/assert"
)

func validUserCreate() models.UserCreate {
	return models.UserCreate{
		Username: "alice",
		Email:    "a@x.io",
		Password: "s3cret!!",
	}
}

func TestUserValidator_Validate(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(u *models.UserCreate)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.UserCreate) {}},
		{name: "valid with full name", mutate: func(u *models.UserCreate) { u.FullName = "Alice Liddell" }},
		{name: "username too short", mutate: func(u *models.UserCreate) { u.Username = "al" }, wantErr: ErrInvalidUsername},
		{name: "username at minimum", mutate: func(u *models.UserCreate) { u.Username = "ali" }},
		{name: "username too long", mutate: func(u *models.UserCreate) { u.Username = strings.Repeat("a", 51) }, wantErr: ErrInvalidUsername},
		{name: "username at maximum", mutate: func(u *models.UserCreate) { u.Username = strings.Repeat("a", 50) }},
		{name: "empty email", mutate: func(u *models.UserCreate) { u.Email = "" }, wantErr: ErrInvalidEmail},
		{name: "email without at", mutate: func(u *models.UserCreate) { u.Email = "alice.example.com" }, wantErr: ErrInvalidEmail},
		{name: "email without dotted domain", mutate: func(u *models.UserCreate) { u.Email = "alice@localhost" }, wantErr: ErrInvalidEmail},
		{name: "email with display name", mutate: func(u *models.UserCreate) { u.Email = "Alice <a@x.io>" }, wantErr: ErrInvalidEmail},
		{name: "full name too long", mutate: func(u *models.UserCreate) { u.FullName = strings.Repeat("n", 101) }, wantErr: ErrInvalidFullName},
		{name: "password too short", mutate: func(u *models.UserCreate) { u.Password = "short" }, wantErr: ErrPasswordTooShort},
		{name: "password too long", mutate: func(u *models.UserCreate) { u.Password = strings.Repeat("p", 73) }, wantErr: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUserCreate()
			tt.mutate(&u)

			err := v.Validate(ctx, u)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidator_FieldScoping(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()
	u := models.UserCreate{Username: "alice"}

	assert.NoError(t, v.Validate(ctx, &u, FieldUsername))
	assert.ErrorIs(t, v.Validate(ctx, &u, FieldUsername, FieldEmail), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(ctx, u, "nickname"), ErrUnknownField)
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewUserValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}
