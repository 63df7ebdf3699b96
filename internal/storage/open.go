package storage

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/stats"
	"github.com/vovakirdan/tui-mines/internal/storage/redis"
)

// OpenStats opens the outcome store selected by cfg.Backend.
func OpenStats(cfg config.StatsConfig) (stats.Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return stats.NewMemoryStore(), nil
	case config.BackendSQLite, "":
		return Open(cfg.SQLitePath)
	case config.BackendRedis:
		rc := redis.DefaultConfig()
		if cfg.RedisURL != "" {
			rc.URL = cfg.RedisURL
		}
		if cfg.RedisPrefix != "" {
			rc.Prefix = cfg.RedisPrefix
		}
		store, err := redis.New(rc)
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("storage: unknown stats backend %q", cfg.Backend)
	}
}
