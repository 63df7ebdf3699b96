package mines

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/core"
)

func TestNewBoardMineCount(t *testing.T) {
	tests := []struct {
		name  string
		size  core.Size
		mines int
	}{
		{"classic", core.Size{Width: 6, Height: 9}, 8},
		{"blitz", core.Size{Width: 10, Height: 10}, 20},
		{"no mines", core.Size{Width: 4, Height: 4}, 0},
		{"single safe cell", core.Size{Width: 3, Height: 3}, 8},
		{"one row", core.Size{Width: 7, Height: 1}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 20; seed++ {
				board, err := NewBoard(tt.size, tt.mines, core.NewRandom(seed))
				if err != nil {
					t.Fatalf("NewBoard failed: %v", err)
				}
				if len(board) != tt.size.Cells() {
					t.Fatalf("board has %d cells, want %d", len(board), tt.size.Cells())
				}
				if got := board.MineCount(); got != tt.mines {
					t.Errorf("seed %d: MineCount() = %d, want %d", seed, got, tt.mines)
				}
				checkAdjacency(t, tt.size, board)
			}
		})
	}
}

func checkAdjacency(t *testing.T, size core.Size, board Board) {
	t.Helper()
	for _, c := range size.Coords() {
		cell := board[core.Encode(c)]
		if cell.Checked {
			t.Errorf("new cell %v is already checked", c)
		}
		if cell.Mine {
			continue
		}
		want := 0
		for _, n := range core.ClipToBoard(size, core.Neighbors(c)) {
			if board[core.Encode(n)].Mine {
				want++
			}
		}
		if cell.Adjacent != want {
			t.Errorf("cell %v Adjacent = %d, want %d", c, cell.Adjacent, want)
		}
	}
}

func TestNewBoardRejectsInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name  string
		size  core.Size
		mines int
	}{
		{"mines fill board", core.Size{Width: 3, Height: 3}, 9},
		{"mines exceed board", core.Size{Width: 3, Height: 3}, 12},
		{"negative mines", core.Size{Width: 3, Height: 3}, -1},
		{"zero width", core.Size{Width: 0, Height: 3}, 1},
		{"zero height", core.Size{Width: 3, Height: 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(tt.size, tt.mines, core.NewRandom(1))
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("NewBoard error = %v, want ErrInvalidConfiguration", err)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("NewBoard error %T is not a *ConfigError", err)
			}
		})
	}
}

func TestNewBoardWithMines(t *testing.T) {
	size := core.Size{Width: 3, Height: 3}
	board, err := NewBoardWithMines(size, core.Coord{X: 2, Y: 2})
	if err != nil {
		t.Fatalf("NewBoardWithMines failed: %v", err)
	}

	expected := map[core.Coord]int{
		{X: 0, Y: 0}: 0, {X: 1, Y: 0}: 0, {X: 2, Y: 0}: 0,
		{X: 0, Y: 1}: 0, {X: 1, Y: 1}: 1, {X: 2, Y: 1}: 1,
		{X: 0, Y: 2}: 0, {X: 1, Y: 2}: 1,
	}
	for c, want := range expected {
		if got := board[core.Encode(c)].Adjacent; got != want {
			t.Errorf("cell %v Adjacent = %d, want %d", c, got, want)
		}
	}
	if !board[core.Encode(core.Coord{X: 2, Y: 2})].Mine {
		t.Error("expected a mine at (2,2)")
	}

	if _, err := NewBoardWithMines(size, core.Coord{X: 3, Y: 0}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("off-board mine error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name  string
		cfg   core.BoardConfig
		valid bool
	}{
		{"default", core.DefaultConfig(), true},
		{"one by two", core.BoardConfig{Width: 1, Height: 2, Mines: 1, Seconds: 1}, true},
		{"zero seconds", core.BoardConfig{Width: 3, Height: 3, Mines: 1, Seconds: 0}, false},
		{"all mines", core.BoardConfig{Width: 2, Height: 2, Mines: 4, Seconds: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.cfg)
			if tt.valid && err != nil {
				t.Errorf("ValidateConfig(%+v) = %v, want nil", tt.cfg, err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("ValidateConfig(%+v) = %v, want ErrInvalidConfiguration", tt.cfg, err)
			}
		})
	}
}
