package mines

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// CellState is what a player is allowed to see of a cell.
type CellState int

const (
	CellHidden CellState = iota
	CellFlagged
	CellOpen
	CellMine // Revealed mine, either the one clicked or shown after the game ended
)

// CellView is a cell as presented to a player.
type CellView struct {
	State    CellState
	Adjacent int  // Set for open cells
	Exploded bool // The mine that ended the game
	Misflag  bool // A flag on a safe cell, only reported once the game is over
}

// Snapshot is a rendering-friendly copy of a game.
type Snapshot struct {
	ID           string
	Preset       string
	Status       Status
	Width        int
	Height       int
	Mines        int
	Flags        int
	SafeLeft     int
	SecondsLeft  int
	TotalSeconds int
	Flagging     bool
	Rows         [][]CellView
}

// Snapshot returns the player's view of the game. Mine positions are
// only exposed for checked cells until the game is over.
func (g Game) Snapshot() Snapshot {
	over := g.status.Terminal()
	rows := make([][]CellView, g.size.Height)
	for y := range rows {
		rows[y] = make([]CellView, g.size.Width)
		for x := range rows[y] {
			c := core.Coord{X: x, Y: y}
			cell := g.cells[core.Encode(c)]
			flagged := g.Flagged(c)

			var v CellView
			switch {
			case cell.Checked && cell.Mine:
				v = CellView{State: CellMine, Exploded: true}
			case cell.Checked:
				v = CellView{State: CellOpen, Adjacent: cell.Adjacent}
			case flagged:
				v = CellView{State: CellFlagged, Misflag: over && !cell.Mine}
			case over && cell.Mine:
				v = CellView{State: CellMine}
			default:
				v = CellView{State: CellHidden}
			}
			rows[y][x] = v
		}
	}

	return Snapshot{
		ID:           g.id,
		Preset:       g.preset,
		Status:       g.status,
		Width:        g.size.Width,
		Height:       g.size.Height,
		Mines:        g.mines,
		Flags:        len(g.flags),
		SafeLeft:     g.safeLeft,
		SecondsLeft:  g.secondsLeft,
		TotalSeconds: g.totalSeconds,
		Flagging:     g.flagging,
		Rows:         rows,
	}
}

// String renders the grid as plain text, one row per line:
// '.' hidden, 'F' flag, '*' mine, '_' empty, digits for counts.
func (s Snapshot) String() string {
	var sb strings.Builder
	sb.Grow(s.Height * (s.Width + 1))
	for y, row := range s.Rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			switch v.State {
			case CellHidden:
				sb.WriteByte('.')
			case CellFlagged:
				sb.WriteByte('F')
			case CellMine:
				sb.WriteByte('*')
			case CellOpen:
				if v.Adjacent == 0 {
					sb.WriteByte('_')
				} else {
					sb.WriteString(strconv.Itoa(v.Adjacent))
				}
			}
		}
	}
	return sb.String()
}
