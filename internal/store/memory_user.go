package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/credit-risk-gateway/models"
)

// memoryUserRepository keeps users in a map guarded by a RWMutex. Records
// are copied on the way in and out so callers never share state with the
// store.
type memoryUserRepository struct {
	mu     sync.RWMutex
	users  map[string]models.User
	lastID int64
	now    func() time.Time
}

// NewMemoryUserRepository returns an empty in-process [UserRepository].
// Its contents live as long as the process.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users: make(map[string]models.User),
		now:   time.Now,
	}
}

func (r *memoryUserRepository) GetUser(ctx context.Context, username string) (models.User, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return models.User{}, false, nil
	}

	return copyUser(user), true, nil
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return models.User{}, ErrUsernameAlreadyExists
	}

	r.lastID++
	user.ID = r.lastID
	user.CreatedAt = r.now().UTC()
	user.UpdatedAt = nil
	r.users[user.Username] = user

	return copyUser(user), nil
}

func (r *memoryUserRepository) SetUserActive(ctx context.Context, username string, active bool) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	updatedAt := r.now().UTC()
	user.IsActive = active
	user.UpdatedAt = &updatedAt
	r.users[username] = user

	return copyUser(user), nil
}

func copyUser(user models.User) models.User {
	if user.UpdatedAt != nil {
		t := *user.UpdatedAt
		user.UpdatedAt = &t
	}
	return user
}
