// Package storage provides persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-mines/internal/stats"
)

// Store manages the SQLite database connection for outcome persistence.
type Store struct {
	db *sql.DB
}

// Ensure Store implements the stats backend
var _ stats.Store = (*Store)(nil)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS outcomes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL UNIQUE,
			preset TEXT NOT NULL DEFAULT '',
			reason TEXT NOT NULL,
			elapsed_secs INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_outcomes_preset ON outcomes(preset, reason);
		CREATE INDEX IF NOT EXISTS idx_outcomes_ranks ON outcomes(reason, elapsed_secs, created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record saves an outcome. A game ID that is already stored is ignored.
func (s *Store) Record(ctx context.Context, o stats.Outcome) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO outcomes (game_id, preset, reason, elapsed_secs, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		o.GameID, o.Preset, string(o.Reason), o.Elapsed, o.At.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save outcome: %w", err)
	}
	return nil
}

// Summary counts outcomes by reason and lists the fastest wins.
// An empty preset aggregates every preset.
func (s *Store) Summary(ctx context.Context, preset string, limit int) (stats.Summary, error) {
	if limit <= 0 {
		limit = stats.DefaultRanks
	}
	sum := stats.Summary{Preset: preset}

	rows, err := s.db.QueryContext(ctx,
		`SELECT reason, COUNT(*)
		 FROM outcomes
		 WHERE (? = '' OR preset = ?)
		 GROUP BY reason`,
		preset, preset,
	)
	if err != nil {
		return sum, fmt.Errorf("storage: cannot count outcomes: %w", err)
	}
	for rows.Next() {
		var reason string
		var n int
		if err := rows.Scan(&reason, &n); err != nil {
			rows.Close()
			return sum, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sum.Counts.Add(stats.Reason(reason), n)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return sum, fmt.Errorf("storage: row iteration error: %w", err)
	}
	rows.Close()

	ranks, err := s.ranks(ctx, preset, limit)
	if err != nil {
		return sum, err
	}
	sum.Ranks = ranks
	return sum, nil
}

func (s *Store) ranks(ctx context.Context, preset string, limit int) ([]stats.Rank, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT game_id, elapsed_secs, created_at
		 FROM outcomes
		 WHERE reason = ? AND (? = '' OR preset = ?)
		 ORDER BY elapsed_secs ASC, created_at ASC
		 LIMIT ?`,
		string(stats.ReasonWin), preset, preset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query ranks: %w", err)
	}
	defer rows.Close()

	var ranks []stats.Rank
	for rows.Next() {
		var r stats.Rank
		var createdAt int64
		if err := rows.Scan(&r.GameID, &r.Elapsed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.At = time.UnixMilli(createdAt)
		ranks = append(ranks, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return ranks, nil
}

// Reset deletes the outcomes of preset, or all of them if preset is empty.
func (s *Store) Reset(ctx context.Context, preset string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM outcomes WHERE (? = '' OR preset = ?)", preset, preset)
	if err != nil {
		return fmt.Errorf("storage: cannot clear outcomes: %w", err)
	}
	return nil
}
