// Package kv is the persisted key-value store behind history and preferences.
package kv

import (
	"context"
	"fmt"

	"github.com/kdduha/slangbot/internal/config"
)

// Store is a string key-value store. Get reports found=false for absent keys.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open builds the configured backend.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Store.Backend {
	case config.StoreMemory:
		return NewMemoryStore(), nil
	case config.StoreRedis:
		return NewRedisStore(
			cfg.RedisConfig.Addr,
			cfg.RedisConfig.Password,
			cfg.RedisConfig.DB,
			0,
		), nil
	case config.StoreSQLite:
		return NewSQLiteStore(cfg.Store.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}
