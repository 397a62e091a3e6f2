package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/credit-risk-gateway/models"
	"github.com/Masterminds/squirrel"
)

var userColumns = []string{
	"id",
	"username",
	"email",
	"full_name",
	"password_hash",
	"is_active",
	"created_at",
	"updated_at",
}

func returningUserColumns() string {
	return "RETURNING " + strings.Join(userColumns, ", ")
}

func buildSelectUserQuery(b squirrel.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
}

func buildInsertUserQuery(b squirrel.StatementBuilderType, user models.User) (string, []any, error) {
	var fullName any
	if user.FullName != "" {
		fullName = user.FullName
	}

	return b.Insert(models.User{}.TableName()).
		Columns("username", "email", "full_name", "password_hash", "is_active", "created_at").
		Values(user.Username, user.Email, fullName, user.PasswordHash, user.IsActive, user.CreatedAt).
		Suffix(returningUserColumns()).
		ToSql()
}

func buildSetUserActiveQuery(b squirrel.StatementBuilderType, username string, active bool, updatedAt time.Time) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set("is_active", active).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"username": username}).
		Suffix(returningUserColumns()).
		ToSql()
}
