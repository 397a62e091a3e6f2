package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/credit-risk-gateway/models"
	"github.com/redis/go-redis/v9"
)

const (
	userCacheKeyPrefix           = "credit-risk-gateway:user:"
	userCacheGenerationKeyPrefix = "credit-risk-gateway:user-gen:"
)

// setIfGenerationScript writes the record (KEYS[2]) only while the
// generation counter (KEYS[1]) still equals ARGV[1]. ARGV[3] is the TTL in
// milliseconds, 0 for no expiry.
var setIfGenerationScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current == false then
	current = '0'
end
if current ~= ARGV[1] then
	return 0
end
local ttl = tonumber(ARGV[3])
if ttl > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ttl)
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

// redisUserCache implements [UserCache] on top of Redis. Records are
// stored as JSON under a namespaced key next to a generation counter. Both
// keys share a hash tag so the script and the transaction stay on one
// cluster slot.
type redisUserCache struct {
	client *redis.Client
}

// cachedUser is the JSON representation of a user record in Redis.
// It includes the password hash, so the cache must be as protected as the
// database.
type cachedUser struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name,omitempty"`
	PasswordHash string     `json:"password_hash"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// NewRedisUserCache connects to the Redis instance at rawURL
// (e.g. "redis://localhost:6379/0") and pings it.
func NewRedisUserCache(ctx context.Context, rawURL string) (UserCache, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}

	return newRedisUserCache(client), nil
}

func newRedisUserCache(client *redis.Client) *redisUserCache {
	return &redisUserCache{client: client}
}

func userCacheKey(username string) string {
	return userCacheKeyPrefix + "{" + username + "}"
}

func userCacheGenerationKey(username string) string {
	return userCacheGenerationKeyPrefix + "{" + username + "}"
}

func (c *redisUserCache) Get(ctx context.Context, username string) (models.User, bool, error) {
	data, err := c.client.Get(ctx, userCacheKey(username)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}

	var cached cachedUser
	if err = json.Unmarshal(data, &cached); err != nil {
		return models.User{}, false, fmt.Errorf("error decoding cached user: %w", err)
	}

	return models.User{
		ID:           cached.ID,
		Username:     cached.Username,
		Email:        cached.Email,
		FullName:     cached.FullName,
		PasswordHash: cached.PasswordHash,
		IsActive:     cached.IsActive,
		CreatedAt:    cached.CreatedAt,
		UpdatedAt:    cached.UpdatedAt,
	}, true, nil
}

func (c *redisUserCache) Generation(ctx context.Context, username string) (int64, error) {
	generation, err := c.client.Get(ctx, userCacheGenerationKey(username)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return generation, nil
}

func (c *redisUserCache) SetIfGeneration(ctx context.Context, user models.User, generation int64, ttl time.Duration) (bool, error) {
	data, err := encodeCachedUser(user)
	if err != nil {
		return false, err
	}

	keys := []string{userCacheGenerationKey(user.Username), userCacheKey(user.Username)}
	stored, err := setIfGenerationScript.Run(ctx, c.client, keys,
		strconv.FormatInt(generation, 10), data, ttl.Milliseconds()).Int()
	if err != nil {
		return false, err
	}

	return stored == 1, nil
}

func (c *redisUserCache) Invalidate(ctx context.Context, username string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, userCacheGenerationKey(username))
		pipe.Del(ctx, userCacheKey(username))
		return nil
	})

	return err
}

func encodeCachedUser(user models.User) ([]byte, error) {
	data, err := json.Marshal(cachedUser{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		PasswordHash: user.PasswordHash,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("error encoding cached user: %w", err)
	}

	return data, nil
}

func (c *redisUserCache) Close() error {
	return c.client.Close()
}
