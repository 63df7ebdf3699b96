package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/dependencies/mocks"
	"github.com/vovakirdan/tui-mines/internal/mines"
	"github.com/vovakirdan/tui-mines/internal/session"
	"github.com/vovakirdan/tui-mines/internal/stats"
)

// fixed places the first mine at (2,2) and then falls back to a seeded source.
type fixed struct {
	vals []int
	rnd  core.Random
}

func (f *fixed) Intn(n int) int {
	if len(f.vals) > 0 {
		v := f.vals[0]
		f.vals = f.vals[1:]
		return v % n
	}
	return f.rnd.Intn(n)
}

func newModel(t *testing.T, store stats.Store) (Model, *mocks.MockClock) {
	t.Helper()
	clk := mocks.NewMockClock(time.Date(2024, 2, 2, 20, 0, 0, 0, time.UTC))
	sess, err := session.New(
		core.BoardConfig{Width: 3, Height: 3, Mines: 1, Seconds: 30},
		session.WithClock(clk),
		session.WithRandom(&fixed{vals: []int{2, 2}, rnd: core.NewRandom(3)}),
		session.WithPreset("tiny"),
	)
	require.NoError(t, err)
	t.Cleanup(sess.Close)

	m := NewModel(sess, store, 5)
	t.Cleanup(m.feed.Close)
	return m, clk
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{keyUp, core.ActionUp},
		{runes("k"), core.ActionUp},
		{runes("j"), core.ActionDown},
		{runes("h"), core.ActionLeft},
		{keyRight, core.ActionRight},
		{keySpace, core.ActionSelect},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSelect},
		{runes("f"), core.ActionToggleFlagging},
		{runes("r"), core.ActionRestart},
		{runes("s"), core.ActionStats},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("x"), core.ActionNone},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, km.Action(tt.msg), tt.msg.String())
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	m, _ := newModel(t, nil)
	assert.Equal(t, core.Coord{X: 1, Y: 1}, m.Cursor())

	m = press(t, m, keyUp, keyUp, keyUp, keyLeft, keyLeft)
	assert.Equal(t, core.Coord{X: 0, Y: 0}, m.Cursor())

	m = press(t, m, keyDown, keyDown, keyDown, keyDown, keyRight, keyRight, keyRight)
	assert.Equal(t, core.Coord{X: 2, Y: 2}, m.Cursor())
}

func TestSelectDrivesSession(t *testing.T) {
	m, clk := newModel(t, nil)

	m = press(t, m, runes("f"))
	assert.False(t, m.Game().Flagging(), "flag mode needs a running game")

	m = press(t, m, keySpace)
	assert.Equal(t, mines.StatusOn, m.Game().Status())

	clk.Advance(2 * time.Second)
	select {
	case g := <-m.feed.Games():
		next, cmd := m.Update(GameMsg{Game: g})
		m = next.(Model)
		assert.NotNil(t, cmd, "keeps listening for snapshots")
	default:
		t.Fatal("expected queued snapshots")
	}

	m = press(t, m, runes("f"), keyRight, keyDown, keySpace)
	assert.True(t, m.Game().Flagging())
	assert.True(t, m.Game().Flagged(core.Coord{X: 2, Y: 2}))

	m = press(t, m, runes("f"), keyLeft, keyLeft, keyUp, keyUp, keySpace)
	assert.Equal(t, mines.StatusWin, m.Game().Status())
	assert.Contains(t, m.View(), "Cleared!")

	first := m.Game().ID()
	m = press(t, m, runes("r"))
	assert.NotEqual(t, first, m.Game().ID())
	assert.Equal(t, mines.StatusOn, m.Game().Status())
}

func TestStatsView(t *testing.T) {
	store := stats.NewMemoryStore()
	require.NoError(t, store.Record(context.Background(), stats.Outcome{
		GameID: "old", Preset: "tiny", Reason: stats.ReasonWin, Elapsed: 42, At: time.Now(),
	}))

	m, _ := newModel(t, store)
	m = press(t, m, runes("s"))
	view := m.View()
	assert.Contains(t, view, "STATS - tiny")
	assert.Contains(t, view, "42s")
	assert.Contains(t, view, "won 1")

	// Board keys are ignored while the stats are shown.
	m = press(t, m, keySpace)
	assert.Equal(t, mines.StatusIdle, m.Game().Status())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, strings.Contains(m.View(), "MINES - tiny"))
}

func TestEscOnlyLeavesStats(t *testing.T) {
	m, _ := newModel(t, stats.NewMemoryStore())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, m.View(), "MINES - tiny")
	assert.NotContains(t, m.View(), "STATS")

	m = press(t, m, runes("s"))
	assert.Contains(t, m.View(), "STATS - tiny")
	m = press(t, m, runes("s"))
	assert.Contains(t, m.View(), "MINES - tiny")
}

func TestQuitClosesFeed(t *testing.T) {
	m, _ := newModel(t, nil)

	next, cmd := m.Update(runes("q"))
	m = next.(Model)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
	<-m.feed.Done()
}

func TestWaitForGameReturnsWhenSessionCloses(t *testing.T) {
	m, _ := newModel(t, nil)

	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- m.Init()() }()
	m.session.Close()

	select {
	case msg := <-msgs:
		assert.IsType(t, feedClosedMsg{}, msg)
	case <-time.After(time.Second):
		t.Fatal("snapshot wait still blocked after the session closed")
	}
}

func TestRenderCellGlyphs(t *testing.T) {
	assert.Contains(t, RenderCell(mines.CellView{State: mines.CellHidden}), glyphHidden)
	assert.Contains(t, RenderCell(mines.CellView{State: mines.CellFlagged}), glyphFlag)
	assert.Contains(t, RenderCell(mines.CellView{State: mines.CellMine, Exploded: true}), glyphMine)
	assert.Equal(t, glyphEmpty, RenderCell(mines.CellView{State: mines.CellOpen}))
	assert.Contains(t, RenderCell(mines.CellView{State: mines.CellOpen, Adjacent: 3}), "3")
}
