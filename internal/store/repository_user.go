package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/models"
)

// userRepository is the SQL implementation of [UserRepository]. The same
// code serves PostgreSQL and SQLite; dialect differences live in [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db  *DB
	now func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating user repository")
	return &userRepository{
		db:  db,
		now: time.Now,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		fullName  sql.NullString
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&fullName,
		&user.PasswordHash,
		&user.IsActive,
		&user.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.FullName = fullName.String
	if updatedAt.Valid {
		t := updatedAt.Time
		user.UpdatedAt = &t
	}

	return user, nil
}

// GetUser looks the user up by its exact username.
func (r *userRepository) GetUser(ctx context.Context, username string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder, username)
	if err != nil {
		return models.User{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("error selecting user")
		return models.User{}, false, r.db.storeError(err)
	}

	return user, true, nil
}

// CreateUser inserts a new record and returns it as stored.
//
// Error handling:
//   - unique constraint violation → [ErrUsernameAlreadyExists].
//   - connection or lock failures → wrapped [ErrStoreUnavailable].
//   - anything else → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.CreatedAt = r.now().UTC()
	user.UpdatedAt = nil

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.storeError(err)
	}

	return created, nil
}

// SetUserActive updates the active flag and stamps updated_at.
func (r *userRepository) SetUserActive(ctx context.Context, username string, active bool) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSetUserActiveQuery(r.db.builder, username, active, r.now().UTC())
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetUserActive").Msg("error updating user")
		return models.User{}, r.db.storeError(err)
	}

	return updated, nil
}
