package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
	"github.com/vovakirdan/tui-mines/internal/session"
	"github.com/vovakirdan/tui-mines/internal/stats"
)

// Model is the Bubble Tea model for one minesweeper session.
// Key presses are dispatched to the session; snapshots come back through a feed.
type Model struct {
	session    *session.Session
	feed       *session.Feed
	game       mines.Game
	cursor     core.Coord
	keys       KeyMap
	help       help.Model
	scoreboard Scoreboard
	showStats  bool
	quitting   bool
	width      int
	height     int
}

// NewModel creates a model driving sess. Stats are read from store, which may be nil.
func NewModel(sess *session.Session, store stats.Store, ranks int) Model {
	g := sess.Game()
	size := g.Size()

	return Model{
		session:    sess,
		feed:       session.NewFeed(sess, 0),
		game:       g,
		cursor:     core.Coord{X: size.Width / 2, Y: size.Height / 2},
		keys:       DefaultKeyMap(),
		help:       help.New(),
		scoreboard: NewScoreboard(store, ranks),
	}
}

// Init starts listening for session snapshots.
func (m Model) Init() tea.Cmd {
	return waitForGame(m.feed)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case GameMsg:
		m.setGame(msg.Game)
		return m, waitForGame(m.feed)

	case feedClosedMsg:
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if action == core.ActionQuit {
		m.quitting = true
		m.feed.Close()
		return m, tea.Quit
	}

	if m.showStats {
		if action == core.ActionStats || key.Matches(msg, m.keys.Back) {
			m.showStats = false
		}
		return m, nil
	}

	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.moveCursor(action.Move())
		return m, nil
	case core.ActionSelect:
		m.session.Select(m.cursor)
	case core.ActionToggleFlagging:
		m.session.ToggleFlagging()
	case core.ActionRestart:
		m.session.Restart()
	case core.ActionStats:
		m.scoreboard.Load(m.game.Preset())
		m.showStats = true
		return m, nil
	default:
		return m, nil
	}

	m.setGame(m.session.Game())
	return m, nil
}

// setGame replaces the displayed game, keeping the cursor on the board.
func (m *Model) setGame(g mines.Game) {
	m.game = g
	m.moveCursor(core.Coord{})
}

func (m *Model) moveCursor(d core.Coord) {
	size := m.game.Size()
	m.cursor.X = core.Clamp(m.cursor.X+d.X, 0, size.Width-1)
	m.cursor.Y = core.Clamp(m.cursor.Y+d.Y, 0, size.Height-1)
}

// Cursor returns the highlighted cell.
func (m Model) Cursor() core.Coord {
	return m.cursor
}

// Game returns the last snapshot received from the session.
func (m Model) Game() mines.Game {
	return m.game
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	if m.showStats {
		b.WriteString(m.scoreboard.View())
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("s/esc back  q quit"))
		return b.String()
	}

	snap := m.game.Snapshot()

	title := "MINES"
	if snap.Preset != "" {
		title = fmt.Sprintf("MINES - %s", snap.Preset)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(RenderBoard(snap, m.cursor))
	b.WriteString("\n")
	b.WriteString(RenderStatus(snap))
	b.WriteString("\n")
	if msg := statusMessage(snap.Status); msg != "" {
		b.WriteString(mutedStyle.Render(msg))
	}
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Run starts the Bubble Tea program for sess and blocks until the player quits.
func Run(sess *session.Session, store stats.Store, ranks int) error {
	model := NewModel(sess, store, ranks)
	defer model.feed.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
