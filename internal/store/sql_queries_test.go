// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/credit-risk-gateway/models"
	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollarBuilder   = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	questionBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
)

func TestBuildSelectUserQuery(t *testing.T) {
	query, args, err := buildSelectUserQuery(dollarBuilder, "alice")
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, username, email, full_name, password_hash, is_active, created_at, updated_at FROM users WHERE username = $1 LIMIT 1", query)
	assert.Equal(t, []any{"alice"}, args)

	query, _, err = buildSelectUserQuery(questionBuilder, "alice")
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE username = ?")
}

func TestBuildInsertUserQuery(t *testing.T) {
	createdAt := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	user := models.User{
		Username:     "alice",
		Email:        "a@x.io",
		PasswordHash: "hash",
		IsActive:     true,
		CreatedAt:    createdAt,
	}

	query, args, err := buildInsertUserQuery(dollarBuilder, user)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO users (username,email,full_name,password_hash,is_active,created_at) VALUES ($1,$2,$3,$4,$5,$6)"))
	assert.True(t, strings.HasSuffix(query, "RETURNING id, username, email, full_name, password_hash, is_active, created_at, updated_at"))
	require.Len(t, args, 6)
	assert.Nil(t, args[2], "empty full name is stored as NULL")
	assert.Equal(t, createdAt, args[5])

	user.FullName = "Alice"
	_, args, err = buildInsertUserQuery(questionBuilder, user)
	require.NoError(t, err)
	assert.Equal(t, "Alice", args[2])
}

func TestBuildSetUserActiveQuery(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildSetUserActiveQuery(dollarBuilder, "alice", false, now)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "UPDATE users SET is_active = $1, updated_at = $2 WHERE username = $3"))
	assert.Contains(t, query, "RETURNING id")
	assert.Equal(t, []any{false, now, "alice"}, args)
}
