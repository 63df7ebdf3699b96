// Package tui provides the Bubble Tea front end for the minesweeper
// session, both in a local terminal and over SSH.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/mines"
	"github.com/vovakirdan/tui-mines/internal/session"
)

// GameMsg carries a snapshot published by the session.
type GameMsg struct {
	Game mines.Game
}

// feedClosedMsg is sent once the feed stops delivering snapshots.
type feedClosedMsg struct{}

// waitForGame returns a command that blocks until the next snapshot.
func waitForGame(feed *session.Feed) tea.Cmd {
	return func() tea.Msg {
		select {
		case g := <-feed.Games():
			return GameMsg{Game: g}
		case <-feed.Done():
			return feedClosedMsg{}
		}
	}
}
