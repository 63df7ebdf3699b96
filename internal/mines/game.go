// Package mines implements the minesweeper rules engine.
//
// A Game is an immutable value. Every transition in this package takes a
// Game and returns a new one, leaving the input untouched; illegal moves
// return the input unchanged instead of an error.
package mines

import (
	"sort"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// Status is the lifecycle state of a game.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusOn       Status = "on"
	StatusOvertime Status = "overtime"
	StatusBoom     Status = "boom"
	StatusWin      Status = "win"
)

// Terminal returns true for boom, overtime and win.
func (s Status) Terminal() bool {
	return s == StatusBoom || s == StatusOvertime || s == StatusWin
}

// Game is the aggregate root of one round.
type Game struct {
	id     string
	preset string
	status Status
	size   core.Size
	mines  int

	cells    map[core.ID]Cell
	flags    map[core.ID]struct{}
	safeLeft int

	totalSeconds int
	secondsLeft  int
	flagging     bool
}

// New generates a random board for cfg and returns an idle game.
func New(cfg core.BoardConfig, rnd core.Random) (Game, error) {
	if err := ValidateConfig(cfg); err != nil {
		return Game{}, err
	}

	board, err := NewBoard(cfg.Size(), cfg.Mines, rnd)
	if err != nil {
		return Game{}, err
	}
	return NewFromBoard(cfg.Size(), board, cfg.Seconds)
}

// NewFromBoard returns an idle game over a prepared board.
// The board is copied.
func NewFromBoard(size core.Size, board Board, seconds int) (Game, error) {
	mines := board.MineCount()
	if err := ValidateConfig(core.BoardConfig{
		Width:   size.Width,
		Height:  size.Height,
		Mines:   mines,
		Seconds: seconds,
	}); err != nil {
		return Game{}, err
	}

	cells := make(map[core.ID]Cell, size.Cells())
	for _, c := range size.Coords() {
		id := core.Encode(c)
		cell, ok := board[id]
		if !ok {
			return Game{}, &ConfigError{
				Width:   size.Width,
				Height:  size.Height,
				Mines:   mines,
				Seconds: seconds,
				Reason:  "board has no cell at " + string(id),
			}
		}
		cells[id] = cell
	}
	if len(board) != len(cells) {
		return Game{}, &ConfigError{
			Width:   size.Width,
			Height:  size.Height,
			Mines:   mines,
			Seconds: seconds,
			Reason:  "board has cells outside its bounds",
		}
	}

	safeLeft := 0
	for _, cell := range cells {
		if !cell.Mine && !cell.Checked {
			safeLeft++
		}
	}

	return Game{
		id:           uuid.NewString(),
		status:       StatusIdle,
		size:         size,
		mines:        mines,
		cells:        cells,
		flags:        make(map[core.ID]struct{}),
		safeLeft:     safeLeft,
		totalSeconds: seconds,
		secondsLeft:  seconds,
	}, nil
}

// WithPreset labels the game with the preset it was created from.
func (g Game) WithPreset(preset string) Game {
	g.preset = preset
	return g
}

// ID returns the unique identifier assigned at creation.
func (g Game) ID() string { return g.id }

// Preset returns the preset label, empty for ad hoc boards.
func (g Game) Preset() string { return g.preset }

// Status returns the lifecycle state.
func (g Game) Status() Status { return g.status }

// Size returns the board dimensions.
func (g Game) Size() core.Size { return g.size }

// Mines returns the number of mines on the board.
func (g Game) Mines() int { return g.mines }

// SafeLeft returns how many safe cells are still unchecked.
func (g Game) SafeLeft() int { return g.safeLeft }

// TotalSeconds returns the countdown length.
func (g Game) TotalSeconds() int { return g.totalSeconds }

// SecondsLeft returns the remaining countdown.
func (g Game) SecondsLeft() int { return g.secondsLeft }

// Elapsed returns the seconds spent so far.
func (g Game) Elapsed() int { return g.totalSeconds - g.secondsLeft }

// Flagging reports whether selections place flags instead of revealing.
func (g Game) Flagging() bool { return g.flagging }

// Config returns the parameters needed to generate a fresh game of the same shape.
func (g Game) Config() core.BoardConfig {
	return core.BoardConfig{
		Width:   g.size.Width,
		Height:  g.size.Height,
		Mines:   g.mines,
		Seconds: g.totalSeconds,
	}
}

// Cell returns the cell at c.
func (g Game) Cell(c core.Coord) (Cell, bool) {
	cell, ok := g.cells[core.Encode(c)]
	return cell, ok
}

// Cells returns a copy of the full board.
func (g Game) Cells() Board {
	out := make(Board, len(g.cells))
	for id, cell := range g.cells {
		out[id] = cell
	}
	return out
}

// Flagged returns true if c carries a flag.
func (g Game) Flagged(c core.Coord) bool {
	_, ok := g.flags[core.Encode(c)]
	return ok
}

// FlagCount returns the number of placed flags.
func (g Game) FlagCount() int { return len(g.flags) }

// Flags returns the flagged ids in sorted order.
func (g Game) Flags() []core.ID {
	out := make([]core.ID, 0, len(g.flags))
	for id := range g.flags {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// clone copies the mutable maps so a transition can edit the result.
func (g Game) clone() Game {
	cells := make(map[core.ID]Cell, len(g.cells))
	for id, cell := range g.cells {
		cells[id] = cell
	}
	flags := make(map[core.ID]struct{}, len(g.flags))
	for id := range g.flags {
		flags[id] = struct{}{}
	}
	g.cells = cells
	g.flags = flags
	return g
}
