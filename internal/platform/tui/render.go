package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Cell glyphs.
const (
	glyphHidden = "·"
	glyphFlag   = "⚑"
	glyphMine   = "*"
	glyphEmpty  = " "
)

// numberStyles colors adjacency counts 1 to 8.
var numberStyles = [9]lipgloss.Style{
	lipgloss.NewStyle(),
	lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	hiddenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	flagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	misflagStyle  = flagStyle.Strikethrough(true).Foreground(lipgloss.Color("241"))
	mineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	explodedStyle = mineStyle.Background(lipgloss.Color("1"))
	cursorStyle   = lipgloss.NewStyle().Reverse(true)

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// statusStyles highlights the game status in the status bar.
var statusStyles = map[mines.Status]lipgloss.Style{
	mines.StatusIdle:     mutedStyle,
	mines.StatusOn:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	mines.StatusOvertime: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	mines.StatusBoom:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	mines.StatusWin:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
}

// RenderCell returns the styled glyph for one cell.
func RenderCell(v mines.CellView) string {
	switch v.State {
	case mines.CellFlagged:
		if v.Misflag {
			return misflagStyle.Render(glyphFlag)
		}
		return flagStyle.Render(glyphFlag)
	case mines.CellMine:
		if v.Exploded {
			return explodedStyle.Render(glyphMine)
		}
		return mineStyle.Render(glyphMine)
	case mines.CellOpen:
		if v.Adjacent == 0 {
			return glyphEmpty
		}
		return numberStyles[v.Adjacent].Render(strconv.Itoa(v.Adjacent))
	default:
		return hiddenStyle.Render(glyphHidden)
	}
}

// RenderBoard draws the grid, highlighting the cursor while the game is
// still playable.
func RenderBoard(s mines.Snapshot, cursor core.Coord) string {
	showCursor := !s.Status.Terminal()

	var sb strings.Builder
	for y, row := range s.Rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			glyph := RenderCell(v)
			if showCursor && cursor.X == x && cursor.Y == y {
				glyph = cursorStyle.Render(glyph)
			}
			sb.WriteString(glyph)
		}
	}
	return boardStyle.Render(sb.String())
}

// RenderStatus draws the status bar: status, time left, flags and mode.
func RenderStatus(s mines.Snapshot) string {
	style, ok := statusStyles[s.Status]
	if !ok {
		style = mutedStyle
	}

	mode := "open"
	if s.Flagging {
		mode = "flag"
	}

	return strings.Join([]string{
		style.Render(strings.ToUpper(string(s.Status))),
		fmt.Sprintf("%3ds", s.SecondsLeft),
		fmt.Sprintf("%s %d/%d", glyphFlag, s.Flags, s.Mines),
		mutedStyle.Render("mode: ") + mode,
	}, "  ")
}

// statusMessage is a one-line hint shown under the board for finished games.
func statusMessage(s mines.Status) string {
	switch s {
	case mines.StatusIdle:
		return "Open any cell to start the clock."
	case mines.StatusBoom:
		return "Boom! Press r to play again."
	case mines.StatusOvertime:
		return "Out of time. Press r to play again."
	case mines.StatusWin:
		return "Cleared! Press r to play again."
	}
	return ""
}
