package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/credit-risk-gateway/internal/config"
	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
)

// Storages aggregates the storage components used by the service layer.
type Storages struct {
	UserRepository UserRepository

	db    *DB
	cache UserCache
}

// NewStorages builds the credential store selected by cfg.DB.DSN:
//
//   - "" or "memory"      → in-memory map
//   - "postgres://..."    → PostgreSQL via pgx (migrated on start)
//   - "postgresql://..."  → same as above
//   - "sqlite://<path>"   → SQLite file (migrated on start)
//
// When cfg.Cache.RedisURL is set the repository is wrapped with a Redis
// look-aside cache. An unreachable Redis is logged and skipped.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{}

	dsn := strings.TrimSpace(cfg.DB.DSN)
	switch {
	case dsn == "" || dsn == "memory":
		log.Info().Msg("using in-memory credential store")
		storages.UserRepository = NewMemoryUserRepository()

	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err := NewConnectPostgres(ctx, dsn, log)
		if err != nil {
			return nil, err
		}
		if err = storages.useDB(db, log); err != nil {
			return nil, err
		}

	case strings.HasPrefix(dsn, "sqlite://"):
		db, err := NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), log)
		if err != nil {
			return nil, err
		}
		if err = storages.useDB(db, log); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
	}

	if cfg.Cache.RedisURL != "" {
		cache, err := NewRedisUserCache(ctx, cfg.Cache.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("user cache disabled")
			return storages, nil
		}
		log.Info().Dur("ttl", cfg.Cache.TTL).Msg("user cache enabled")
		storages.cache = cache
		storages.UserRepository = NewCachedUserRepository(storages.UserRepository, cache, cfg.Cache.TTL, log)
	}

	return storages, nil
}

func (s *Storages) useDB(db *DB, log *logger.Logger) error {
	if err := db.Migrate(); err != nil {
		log.Err(err).Msg("error migrating database")
		_ = db.Close()
		return err
	}

	s.db = db
	s.UserRepository = NewUserRepository(db, log)
	return nil
}

// Close releases database and cache connections.
func (s *Storages) Close() error {
	var errs []error
	if s.cache != nil {
		errs = append(errs, s.cache.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}

	return errors.Join(errs...)
}

// redactDSN hides everything after the scheme so credentials never reach
// the logs.
func redactDSN(dsn string) string {
	if scheme, _, ok := strings.Cut(dsn, "://"); ok {
		return scheme + "://***"
	}
	return "***"
}
