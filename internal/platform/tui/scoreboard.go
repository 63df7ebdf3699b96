package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/stats"
)

// loadTimeout bounds a single summary query.
const loadTimeout = 2 * time.Second

// Scoreboard shows the outcome counts and fastest wins of one preset.
type Scoreboard struct {
	store   stats.Store
	ranks   int
	summary stats.Summary
	table   table.Model
	err     error
}

// NewScoreboard creates a scoreboard reading from store. A nil store
// renders an empty board.
func NewScoreboard(store stats.Store, ranks int) Scoreboard {
	if ranks <= 0 {
		ranks = stats.DefaultRanks
	}
	return Scoreboard{
		store: store,
		ranks: ranks,
		table: createTable(ranks),
	}
}

// createTable creates a new table with the leaderboard columns.
func createTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(height+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// Load refreshes the summary for preset.
func (b *Scoreboard) Load(preset string) {
	b.summary = stats.Summary{Preset: preset}
	b.err = nil
	if b.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		b.summary, b.err = b.store.Summary(ctx, preset, b.ranks)
	}
	b.updateTableRows()
}

// updateTableRows updates the table with the current ranks.
func (b *Scoreboard) updateTableRows() {
	rows := make([]table.Row, len(b.summary.Ranks))
	for i, r := range b.summary.Ranks {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%ds", r.Elapsed),
			r.At.Local().Format("Jan 02 15:04"),
		}
	}
	b.table.SetRows(rows)
	b.table.GotoTop()
}

// View renders the counts line and the leaderboard.
func (b Scoreboard) View() string {
	var sb strings.Builder

	title := "STATS"
	if b.summary.Preset != "" {
		title = fmt.Sprintf("STATS - %s", b.summary.Preset)
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")

	if b.err != nil {
		sb.WriteString(errorStyle.Render("could not load stats: " + b.err.Error()))
		return sb.String()
	}

	c := b.summary.Counts
	sb.WriteString(fmt.Sprintf("played %d  won %d  mine %d  time %d\n\n", c.Total(), c.Win, c.Mine, c.Time))

	if len(b.summary.Ranks) == 0 {
		emptyStyle := mutedStyle.Italic(true).Padding(1, 2)
		sb.WriteString(emptyStyle.Render("No wins recorded yet."))
		return sb.String()
	}

	sb.WriteString(boardStyle.Render(b.table.View()))
	return sb.String()
}
