package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to create a new
	// user fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when an update targets a username that
	// has no record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrStoreUnavailable is returned when the backing database cannot be
	// reached or refuses work (connection loss, lock contention, timeout).
	ErrStoreUnavailable = errors.New("credential store is unavailable")

	// ErrUnsupportedDSN is returned when the configured DSN names no known
	// backend.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for a reason not covered by the sentinels above.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrCacheInvalidation is returned when a write succeeded but the cached
	// copy of the record could not be evicted.
	ErrCacheInvalidation = errors.New("error invalidating cached user")
)
