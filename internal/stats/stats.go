// Package stats keeps the record of finished games: how many were lost
// to a mine, lost to the clock or won, and the fastest wins.
package stats

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

// DefaultRanks is the leaderboard length.
const DefaultRanks = 10

// Reason is why a game ended.
type Reason string

const (
	ReasonMine Reason = "mine"
	ReasonTime Reason = "time"
	ReasonWin  Reason = "win"
)

// ReasonFor maps a terminal status to its reason.
// Returns false for statuses that are not terminal.
func ReasonFor(s mines.Status) (Reason, bool) {
	switch s {
	case mines.StatusBoom:
		return ReasonMine, true
	case mines.StatusOvertime:
		return ReasonTime, true
	case mines.StatusWin:
		return ReasonWin, true
	}
	return "", false
}

// Outcome is one finished game.
type Outcome struct {
	GameID  string
	Preset  string
	Reason  Reason
	Elapsed int // Seconds spent before the game ended
	At      time.Time
}

// Rank is a leaderboard entry. Lower Elapsed is better.
type Rank struct {
	GameID  string
	Elapsed int
	At      time.Time
}

// Counts tallies outcomes by reason.
type Counts struct {
	Mine int
	Time int
	Win  int
}

// Total returns the number of finished games.
func (c Counts) Total() int {
	return c.Mine + c.Time + c.Win
}

// Add increments the counter for r.
func (c *Counts) Add(r Reason, n int) {
	switch r {
	case ReasonMine:
		c.Mine += n
	case ReasonTime:
		c.Time += n
	case ReasonWin:
		c.Win += n
	}
}

// Summary aggregates the outcomes of one preset, or of all presets when
// Preset is empty.
type Summary struct {
	Preset string
	Counts Counts
	Ranks  []Rank // Fastest wins first, ties broken by the earlier date
}

// Store persists outcomes.
type Store interface {
	// Record saves an outcome. Recording the same GameID twice keeps the first.
	Record(ctx context.Context, o Outcome) error

	// Summary returns counts and the best limit wins for preset.
	// An empty preset aggregates every preset.
	Summary(ctx context.Context, preset string, limit int) (Summary, error)

	// Reset forgets the outcomes of preset, or everything if preset is empty.
	Reset(ctx context.Context, preset string) error

	Close() error
}
