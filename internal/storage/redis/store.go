// Package redis stores game outcomes in Redis so several servers can share
// one leaderboard.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/tui-mines/internal/stats"
)

// Store is a Redis-backed implementation of stats.Store
type Store struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis store and verifies the connection
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis: cannot connect: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Store {
	defaults := DefaultConfig()
	if cfg.Prefix == "" {
		cfg.Prefix = defaults.Prefix
	}
	if cfg.MaxRanks <= 0 {
		cfg.MaxRanks = defaults.MaxRanks
	}
	return &Store{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// Ensure Store implements the interface
var _ stats.Store = (*Store)(nil)

func (s *Store) Record(ctx context.Context, o stats.Outcome) error {
	fresh, err := s.client.SetNX(ctx, s.seenKey(o.GameID), o.Preset, 0).Result()
	if err != nil {
		return fmt.Errorf("redis: mark game %s: %w", o.GameID, err)
	}
	if !fresh {
		return nil
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, s.presetsKey(), o.Preset)
		pipe.SAdd(ctx, s.gamesKey(o.Preset), o.GameID)
		pipe.HIncrBy(ctx, s.countsKey(o.Preset), string(o.Reason), 1)
		if o.Reason == stats.ReasonWin {
			key := s.ranksKey(o.Preset)
			pipe.ZAdd(ctx, key, redis.Z{Score: float64(o.Elapsed), Member: rankMember(o.At, o.GameID)})
			pipe.ZRemRangeByRank(ctx, key, int64(s.cfg.MaxRanks), -1)
		}
		return nil
	})
	if err != nil {
		// Let a retry record the game.
		s.client.Del(ctx, s.seenKey(o.GameID))
		return fmt.Errorf("redis: record game %s: %w", o.GameID, err)
	}
	return nil
}

func (s *Store) Summary(ctx context.Context, preset string, limit int) (stats.Summary, error) {
	if limit <= 0 {
		limit = stats.DefaultRanks
	}
	sum := stats.Summary{Preset: preset}

	presets, err := s.presets(ctx, preset)
	if err != nil {
		return sum, err
	}

	for _, p := range presets {
		counts, err := s.client.HGetAll(ctx, s.countsKey(p)).Result()
		if err != nil {
			return sum, fmt.Errorf("redis: read counts for %s: %w", p, err)
		}
		for reason, v := range counts {
			n, err := strconv.Atoi(v)
			if err != nil {
				return sum, fmt.Errorf("redis: bad counter %s=%q: %w", reason, v, err)
			}
			sum.Counts.Add(stats.Reason(reason), n)
		}

		wins, err := s.client.ZRangeWithScores(ctx, s.ranksKey(p), 0, int64(limit-1)).Result()
		if err != nil {
			return sum, fmt.Errorf("redis: read ranks for %s: %w", p, err)
		}
		for _, z := range wins {
			member, _ := z.Member.(string)
			at, id, err := parseRankMember(member)
			if err != nil {
				return sum, err
			}
			sum.Ranks = append(sum.Ranks, stats.Rank{GameID: id, Elapsed: int(z.Score), At: at})
		}
	}

	stats.SortRanks(sum.Ranks)
	if len(sum.Ranks) > limit {
		sum.Ranks = sum.Ranks[:limit]
	}
	return sum, nil
}

func (s *Store) Reset(ctx context.Context, preset string) error {
	presets, err := s.presets(ctx, preset)
	if err != nil {
		return err
	}

	for _, p := range presets {
		games, err := s.client.SMembers(ctx, s.gamesKey(p)).Result()
		if err != nil {
			return fmt.Errorf("redis: list games for %s: %w", p, err)
		}

		keys := []string{s.countsKey(p), s.ranksKey(p), s.gamesKey(p)}
		for _, id := range games {
			keys = append(keys, s.seenKey(id))
		}

		pipe := s.client.TxPipeline()
		pipe.Del(ctx, keys...)
		pipe.SRem(ctx, s.presetsKey(), p)
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("redis: reset %s: %w", p, err)
		}
	}
	return nil
}

// presets returns the presets a query covers: just preset, or every known
// preset when it is empty.
func (s *Store) presets(ctx context.Context, preset string) ([]string, error) {
	if preset != "" {
		return []string{preset}, nil
	}
	presets, err := s.client.SMembers(ctx, s.presetsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: list presets: %w", err)
	}
	return presets, nil
}
