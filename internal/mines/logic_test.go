package mines

import (
	"testing"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// newTestGame builds a started game with mines at fixed positions.
func newTestGame(t *testing.T, w, h, seconds int, mines ...core.Coord) Game {
	t.Helper()
	size := core.Size{Width: w, Height: h}
	board, err := NewBoardWithMines(size, mines...)
	if err != nil {
		t.Fatalf("NewBoardWithMines failed: %v", err)
	}
	g, err := NewFromBoard(size, board, seconds)
	if err != nil {
		t.Fatalf("NewFromBoard failed: %v", err)
	}
	return Begin(g)
}

// wall returns a 5x3 board with a column of mines at x=2.
func wall(t *testing.T) Game {
	return newTestGame(t, 5, 3, 60,
		core.Coord{X: 2, Y: 0}, core.Coord{X: 2, Y: 1}, core.Coord{X: 2, Y: 2})
}

func at(x, y int) core.Coord { return core.Coord{X: x, Y: y} }

func TestRevealFloodsToWin(t *testing.T) {
	g := newTestGame(t, 3, 3, 60, at(2, 2))

	g = Reveal(g, at(0, 0))

	if g.Status() != StatusWin {
		t.Errorf("Status() = %s, want %s", g.Status(), StatusWin)
	}
	if g.SafeLeft() != 0 {
		t.Errorf("SafeLeft() = %d, want 0", g.SafeLeft())
	}
	for _, c := range g.Size().Coords() {
		cell, _ := g.Cell(c)
		if cell.Mine && cell.Checked {
			t.Errorf("mine at %v was revealed by the flood", c)
		}
		if !cell.Mine && !cell.Checked {
			t.Errorf("safe cell %v was not revealed", c)
		}
	}
}

func TestSelectMineBooms(t *testing.T) {
	g := newTestGame(t, 3, 3, 60, at(2, 2))

	g = Select(g, at(2, 2))

	if g.Status() != StatusBoom {
		t.Errorf("Status() = %s, want %s", g.Status(), StatusBoom)
	}
	cell, _ := g.Cell(at(2, 2))
	if !cell.Checked {
		t.Error("exploded mine should be checked")
	}
}

func TestFloodStopsAtNumberedCells(t *testing.T) {
	g := wall(t)

	g = Reveal(g, at(0, 0))

	want := "_2...\n_3...\n_2..."
	if got := g.Snapshot().String(); got != want {
		t.Errorf("board after flood:\n%s\nwant:\n%s", got, want)
	}
	if g.Status() != StatusOn {
		t.Errorf("Status() = %s, want %s", g.Status(), StatusOn)
	}
	if g.SafeLeft() != 6 {
		t.Errorf("SafeLeft() = %d, want 6", g.SafeLeft())
	}

	g = Reveal(g, at(4, 2))
	if g.Status() != StatusWin {
		t.Errorf("Status() after clearing both sides = %s, want %s", g.Status(), StatusWin)
	}
}

func TestRevealNumberedCellDoesNotFlood(t *testing.T) {
	g := wall(t)

	g = Reveal(g, at(1, 1))

	if g.SafeLeft() != 11 {
		t.Errorf("SafeLeft() = %d, want 11", g.SafeLeft())
	}
	if cell, _ := g.Cell(at(0, 1)); cell.Checked {
		t.Error("revealing a numbered cell should not flood")
	}
}

func TestRevealIsPure(t *testing.T) {
	before := wall(t)
	snapshot := before.Snapshot().String()

	after := Reveal(before, at(0, 0))

	if before.Snapshot().String() != snapshot {
		t.Error("Reveal mutated its input")
	}
	if before.SafeLeft() != 12 {
		t.Errorf("input SafeLeft() = %d, want 12", before.SafeLeft())
	}
	if after.SafeLeft() == before.SafeLeft() {
		t.Error("Reveal returned an unchanged game")
	}
}

func TestRevealNoOps(t *testing.T) {
	g := wall(t)
	g = Reveal(g, at(1, 1))

	tests := []struct {
		name string
		game Game
		c    core.Coord
	}{
		{"already checked", g, at(1, 1)},
		{"off board", g, at(9, 9)},
		{"finished game", Select(g, at(2, 0)), at(4, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reveal(tt.game, tt.c)
			if got.SafeLeft() != tt.game.SafeLeft() || got.Status() != tt.game.Status() {
				t.Errorf("Reveal(%v) changed the game", tt.c)
			}
		})
	}
}

func TestIdleGameIgnoresSelect(t *testing.T) {
	size := core.Size{Width: 3, Height: 3}
	board, _ := NewBoardWithMines(size, at(2, 2))
	g, err := NewFromBoard(size, board, 10)
	if err != nil {
		t.Fatalf("NewFromBoard failed: %v", err)
	}

	if g.Status() != StatusIdle {
		t.Fatalf("new game Status() = %s, want %s", g.Status(), StatusIdle)
	}
	if got := Select(g, at(0, 0)); got.SafeLeft() != g.SafeLeft() {
		t.Error("Select on an idle game should be a no-op")
	}
	if got := Begin(g); got.Status() != StatusOn {
		t.Errorf("Begin() Status = %s, want %s", got.Status(), StatusOn)
	}
	if got := Begin(Select(Begin(g), at(2, 2))); got.Status() != StatusBoom {
		t.Errorf("Begin on a finished game changed status to %s", got.Status())
	}
}

func TestTickCountdown(t *testing.T) {
	const total = 8
	g := newTestGame(t, 3, 3, total, at(2, 2))

	for i := 0; i < 5; i++ {
		g = Tick(g)
	}
	if g.SecondsLeft() != total-5 {
		t.Errorf("SecondsLeft() = %d, want %d", g.SecondsLeft(), total-5)
	}
	if g.Status() != StatusOn {
		t.Errorf("Status() = %s, want %s", g.Status(), StatusOn)
	}
	if g.Elapsed() != 5 {
		t.Errorf("Elapsed() = %d, want 5", g.Elapsed())
	}

	for g.Status() == StatusOn {
		g = Tick(g)
	}
	if g.SecondsLeft() != 0 {
		t.Errorf("SecondsLeft() = %d, want 0", g.SecondsLeft())
	}
	if g.Status() != StatusOvertime {
		t.Errorf("Status() = %s, want %s", g.Status(), StatusOvertime)
	}

	if got := Tick(g); got.SecondsLeft() != 0 || got.Status() != StatusOvertime {
		t.Error("Tick after overtime should be a no-op")
	}
}

func TestFlagCapacity(t *testing.T) {
	g := newTestGame(t, 4, 4, 60, at(0, 3), at(1, 3), at(2, 3))
	g = ToggleFlagging(g)

	g = Select(g, at(0, 0))
	for x := 1; x <= g.Mines(); x++ {
		g = Select(g, at(x, 0))
		if g.FlagCount() > g.Mines() {
			t.Fatalf("FlagCount() = %d exceeds %d mines", g.FlagCount(), g.Mines())
		}
	}
	if g.FlagCount() != g.Mines() {
		t.Fatalf("FlagCount() = %d, want %d", g.FlagCount(), g.Mines())
	}
	before := g.Flags()

	g = Select(g, at(0, 1))

	if g.FlagCount() != g.Mines() {
		t.Errorf("over-capacity flag accepted: FlagCount() = %d", g.FlagCount())
	}
	if g.Flagged(at(0, 1)) {
		t.Error("over-capacity flag was placed")
	}
	after := g.Flags()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("flag set changed: %v -> %v", before, after)
		}
	}

	g = Select(g, at(0, 0))
	if g.Flagged(at(0, 0)) {
		t.Error("selecting a flag in flagging mode should remove it")
	}
	if g = Select(g, at(0, 1)); !g.Flagged(at(0, 1)) {
		t.Error("flag should be accepted once capacity is freed")
	}
}

func TestFlagPolicy(t *testing.T) {
	g := wall(t)
	g = Reveal(g, at(1, 1))

	if got := Flag(g, at(1, 1)); got.Flagged(at(1, 1)) {
		t.Error("a checked cell must not be flagged")
	}
	if got := Unflag(g, at(0, 0)); got.FlagCount() != 0 {
		t.Error("Unflag on an unflagged cell should be a no-op")
	}

	flagged := Flag(g, at(0, 0))
	if !flagged.Flagged(at(0, 0)) {
		t.Fatal("Flag did not place a flag")
	}
	if again := Flag(flagged, at(0, 0)); again.FlagCount() != 1 {
		t.Errorf("Flag twice FlagCount() = %d, want 1", again.FlagCount())
	}
}

func TestSelectFlaggedCellIsAbsorbed(t *testing.T) {
	g := newTestGame(t, 3, 3, 60, at(2, 2))
	g = ToggleFlagging(g)
	g = Select(g, at(2, 2))
	g = ToggleFlagging(g)

	g = Select(g, at(2, 2))

	if g.Status() != StatusOn {
		t.Errorf("clicking a flagged mine changed status to %s", g.Status())
	}
	if cell, _ := g.Cell(at(2, 2)); cell.Checked {
		t.Error("flagged cell should not be revealed by a click")
	}
}

func TestFloodClearsFlags(t *testing.T) {
	g := wall(t)
	g = Flag(g, at(0, 2))
	g = Flag(g, at(1, 1))

	g = Reveal(g, at(0, 0))

	if g.FlagCount() != 0 {
		t.Errorf("FlagCount() = %d, want 0 after flood revealed flagged cells", g.FlagCount())
	}
	if cell, _ := g.Cell(at(1, 1)); !cell.Checked {
		t.Error("flagged numbered cell on the flood border should be revealed")
	}
}

func TestToggleFlagging(t *testing.T) {
	g := newTestGame(t, 3, 3, 60, at(2, 2))

	if g = ToggleFlagging(g); !g.Flagging() {
		t.Error("ToggleFlagging should enable flagging while on")
	}
	if g = ToggleFlagging(g); g.Flagging() {
		t.Error("ToggleFlagging should disable flagging again")
	}

	done := Select(g, at(2, 2))
	if got := ToggleFlagging(done); got.Flagging() {
		t.Error("ToggleFlagging should be a no-op after the game ended")
	}
}

func TestTerminalMonotonicity(t *testing.T) {
	won := Reveal(newTestGame(t, 3, 3, 60, at(2, 2)), at(0, 0))
	lost := Select(newTestGame(t, 3, 3, 60, at(2, 2)), at(2, 2))
	timedOut := newTestGame(t, 3, 3, 1, at(2, 2))
	timedOut = Tick(timedOut)

	for _, g := range []Game{won, lost, timedOut} {
		t.Run(string(g.Status()), func(t *testing.T) {
			want := g.Status()
			steps := []Game{
				Select(g, at(0, 1)),
				Select(g, at(2, 2)),
				ToggleFlagging(g),
				Flag(g, at(1, 0)),
				Tick(g),
			}
			for i, got := range steps {
				if got.Status() != want {
					t.Errorf("step %d changed status %s -> %s", i, want, got.Status())
				}
			}
		})
	}
}

func TestStatusAfterPriority(t *testing.T) {
	g := newTestGame(t, 3, 3, 10, at(2, 2))
	g.secondsLeft = 0

	if got := StatusAfter(g, at(2, 2)); got != StatusBoom {
		t.Errorf("mine with expired clock = %s, want %s", got, StatusBoom)
	}
	if got := StatusAfter(g, at(0, 0)); got != StatusOvertime {
		t.Errorf("safe cell with expired clock = %s, want %s", got, StatusOvertime)
	}

	g.secondsLeft = 10
	g.safeLeft = 0
	if got := StatusAfter(g, at(0, 0)); got != StatusWin {
		t.Errorf("cleared board = %s, want %s", got, StatusWin)
	}

	g.safeLeft = 3
	if got := StatusAfter(g, at(0, 0)); got != StatusOn {
		t.Errorf("ongoing game = %s, want %s", got, StatusOn)
	}
}

func TestRandomBoardsPlayToWin(t *testing.T) {
	cfg := core.BoardConfig{Width: 9, Height: 7, Mines: 10, Seconds: 100}

	for seed := int64(1); seed <= 25; seed++ {
		g, err := New(cfg, core.NewRandom(seed))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		g = Begin(g)

		for _, c := range g.Size().Coords() {
			if cell, _ := g.Cell(c); !cell.Mine {
				g = Reveal(g, c)
			}
			if g.Status() == StatusBoom {
				t.Fatalf("seed %d: revealing safe cells hit a mine", seed)
			}
		}
		if g.Status() != StatusWin {
			t.Errorf("seed %d: Status() = %s, want %s", seed, g.Status(), StatusWin)
		}
	}
}

func TestSnapshotHidesMinesUntilOver(t *testing.T) {
	g := wall(t)
	g = Flag(g, at(4, 0))

	if got, want := g.Snapshot().String(), "....F\n.....\n....."; got != want {
		t.Errorf("snapshot while on:\n%s\nwant:\n%s", got, want)
	}

	g = Select(g, at(2, 1))
	snap := g.Snapshot()
	if got, want := snap.String(), "..*.F\n..*..\n..*.."; got != want {
		t.Errorf("snapshot after boom:\n%s\nwant:\n%s", got, want)
	}
	if !snap.Rows[1][2].Exploded {
		t.Error("clicked mine should be marked exploded")
	}
	if snap.Rows[0][2].Exploded {
		t.Error("only the clicked mine should be marked exploded")
	}
	if !snap.Rows[0][4].Misflag {
		t.Error("flag on a safe cell should be reported as a misflag after the game")
	}
}

func TestGameIdentity(t *testing.T) {
	a := newTestGame(t, 3, 3, 10, at(2, 2))
	b := newTestGame(t, 3, 3, 10, at(2, 2))

	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("game ids should be unique and non-empty: %q, %q", a.ID(), b.ID())
	}
	if got := Reveal(a, at(0, 0)); got.ID() != a.ID() {
		t.Error("transitions must keep the game id")
	}
	if got := a.WithPreset("classic").Preset(); got != "classic" {
		t.Errorf("Preset() = %q, want classic", got)
	}
}
