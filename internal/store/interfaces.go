package store

import (
	"context"
	"time"

	"github.com/MKhiriev/credit-risk-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store: it owns user records keyed by
// username. Implementations must be safe for concurrent use, and two
// concurrent CreateUser calls with the same username must produce exactly
// one success and one [ErrUsernameAlreadyExists].
type UserRepository interface {
	// GetUser returns the record stored under username. A missing user is
	// reported with found == false and a nil error; err is reserved for
	// store failures.
	GetUser(ctx context.Context, username string) (user models.User, found bool, err error)

	// CreateUser stores a new record and returns it with ID and CreatedAt
	// assigned. Returns [ErrUsernameAlreadyExists] when the username is
	// taken, in which case nothing is modified.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// SetUserActive flips the active flag of an existing user, stamps
	// UpdatedAt and returns the updated record. Returns
	// [ErrNoUserWasFound] when the username is unknown.
	SetUserActive(ctx context.Context, username string, active bool) (models.User, error)
}

// UserCache is a look-aside cache of user records in front of a
// [UserRepository].
//
// Every username has a generation counter that Invalidate advances. A fill
// carries the generation observed before the backing store was read and is
// dropped if the counter moved in between, so a record read before a write
// can never be cached after that write.
type UserCache interface {
	// Get returns the cached record for username, found == false on a miss.
	Get(ctx context.Context, username string) (user models.User, found bool, err error)

	// Generation returns the current generation of username. A username
	// that was never invalidated is at generation 0.
	Generation(ctx context.Context, username string) (int64, error)

	// SetIfGeneration stores user for ttl only while its username is still
	// at generation. stored reports whether the record was written.
	SetIfGeneration(ctx context.Context, user models.User, generation int64, ttl time.Duration) (stored bool, err error)

	// Invalidate advances the generation of username and evicts its record.
	Invalidate(ctx context.Context, username string) error

	// Close releases the cache connection.
	Close() error
}

// ErrorClassificator maps driver-specific errors to an
// [ErrorClassification] so repositories can translate them into store
// sentinel errors without knowing the driver.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
