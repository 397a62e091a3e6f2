package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/migrations"
	"github.com/Masterminds/squirrel"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// NonRetryable is the default classification for unrecognised errors,
	// syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates a transient failure: connection loss, lock
	// contention, deadlocks or timeouts.
	Retryable

	// UniqueViolation indicates that a uniqueness constraint rejected the
	// write.
	UniqueViolation
)

// DB wraps a *sql.DB together with everything a repository needs to speak
// its dialect: a squirrel statement builder with the right placeholder
// format and an error classificator.
type DB struct {
	*sql.DB
	dialect            string
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the dialect of db.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// storeError translates a database error into a store sentinel error.
func (db *DB) storeError(err error) error {
	if isConnectionError(err) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		return ErrUsernameAlreadyExists
	case Retryable:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// isConnectionError reports driver-independent signs of an unreachable
// database.
func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
