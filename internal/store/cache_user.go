package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/models"
)

// cachedUserRepository is a look-aside cache decorator over a
// [UserRepository]. Cache read failures fall through to the wrapped
// repository; writes always invalidate the cached record.
type cachedUserRepository struct {
	next   UserRepository
	cache  UserCache
	ttl    time.Duration
	logger *logger.Logger
}

// NewCachedUserRepository wraps next with cache. Positive lookups are kept
// for ttl; misses are never cached.
func NewCachedUserRepository(next UserRepository, cache UserCache, ttl time.Duration, logger *logger.Logger) UserRepository {
	return &cachedUserRepository{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// GetUser serves from the cache and fills it on a miss. The generation is
// read before the wrapped repository so that a write landing between the
// read and the fill makes the fill a no-op.
func (r *cachedUserRepository) GetUser(ctx context.Context, username string) (models.User, bool, error) {
	user, found, err := r.cache.Get(ctx, username)
	switch {
	case err != nil:
		r.logger.Warn().Err(err).Str("username", username).Msg("user cache read failed")
	case found:
		return user, true, nil
	}

	generation, genErr := r.cache.Generation(ctx, username)
	if genErr != nil {
		r.logger.Warn().Err(genErr).Str("username", username).Msg("user cache generation read failed")
	}

	user, found, err = r.next.GetUser(ctx, username)
	if err != nil || !found {
		return user, found, err
	}

	if genErr != nil {
		return user, true, nil
	}

	stored, err := r.cache.SetIfGeneration(ctx, user, generation, r.ttl)
	switch {
	case err != nil:
		r.logger.Warn().Err(err).Str("username", username).Msg("user cache write failed")
	case !stored:
		r.logger.Debug().Str("username", username).Int64("generation", generation).Msg("user cache fill skipped after concurrent write")
	}

	return user, true, nil
}

func (r *cachedUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	created, err := r.next.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	if err = r.cache.Invalidate(ctx, created.Username); err != nil {
		r.logger.Warn().Err(err).Str("username", created.Username).Msg("user cache invalidation failed")
	}

	return created, nil
}

// SetUserActive invalidates the cached record after the update. A failed
// invalidation is returned as [ErrCacheInvalidation].
func (r *cachedUserRepository) SetUserActive(ctx context.Context, username string, active bool) (models.User, error) {
	updated, err := r.next.SetUserActive(ctx, username, active)
	if err != nil {
		return models.User{}, err
	}

	if err = r.cache.Invalidate(ctx, username); err != nil {
		r.logger.Error().Err(err).Str("username", username).Msg("user cache invalidation failed")
		return updated, fmt.Errorf("%w: %w", ErrCacheInvalidation, err)
	}

	return updated, nil
}
