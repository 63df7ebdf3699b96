package mines

import (
	"github.com/vovakirdan/tui-mines/internal/core"
)

// Begin moves an idle game to on. Any other status is returned unchanged.
func Begin(g Game) Game {
	if g.status != StatusIdle {
		return g
	}
	g.status = StatusOn
	return g
}

// Reveal checks the cell at c. A zero-count safe cell floods outwards
// through its connected zero region and the numbered cells bordering it.
// Only the cell at c itself can ever be a mine.
func Reveal(g Game, c core.Coord) Game {
	id := core.Encode(c)
	cell, ok := g.cells[id]
	if g.status != StatusOn || !ok || cell.Checked {
		return g
	}

	next := g.clone()
	next.check(id)
	next.status = StatusAfter(next, c)

	if cell.Mine || cell.Adjacent > 0 || next.status != StatusOn {
		return next
	}
	next.flood(c)
	return next
}

// flood reveals outward from origin breadth first. Cells are checked as
// they are queued, so each is visited once.
func (g *Game) flood(origin core.Coord) {
	queue := []core.Coord{origin}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		for _, n := range core.ClipToBoard(g.size, core.Neighbors(c)) {
			nid := core.Encode(n)
			cell := g.cells[nid]
			if cell.Checked || cell.Mine {
				continue
			}

			g.check(nid)
			g.status = StatusAfter(*g, n)
			if g.status != StatusOn {
				return
			}
			if cell.Adjacent == 0 {
				queue = append(queue, n)
			}
		}
	}
}

// check marks a cell as revealed and drops any flag on it.
func (g *Game) check(id core.ID) {
	cell := g.cells[id]
	cell.Checked = true
	g.cells[id] = cell
	delete(g.flags, id)
	if !cell.Mine {
		g.safeLeft--
	}
}

// StatusAfter derives the status following a change at c.
// A mine wins over an exhausted clock, which wins over a cleared board.
func StatusAfter(g Game, c core.Coord) Status {
	if cell, ok := g.cells[core.Encode(c)]; ok && cell.Mine {
		return StatusBoom
	}
	if g.secondsLeft == 0 {
		return StatusOvertime
	}
	if g.safeLeft == 0 {
		return StatusWin
	}
	return g.status
}

// Flag marks c as a suspected mine. It is refused when the game is not on,
// when c is already checked or flagged, or when every mine already has a flag.
func Flag(g Game, c core.Coord) Game {
	id := core.Encode(c)
	cell, ok := g.cells[id]
	if g.status != StatusOn || !ok || cell.Checked {
		return g
	}
	if _, flagged := g.flags[id]; flagged || len(g.flags) >= g.mines {
		return g
	}

	next := g.clone()
	next.flags[id] = struct{}{}
	return next
}

// Unflag removes the flag at c.
func Unflag(g Game, c core.Coord) Game {
	id := core.Encode(c)
	if g.status != StatusOn {
		return g
	}
	if _, flagged := g.flags[id]; !flagged {
		return g
	}

	next := g.clone()
	delete(next.flags, id)
	return next
}

// Select applies a player click at c. In flagging mode it toggles the flag.
// Otherwise it reveals, unless c is flagged, in which case the click is
// absorbed.
func Select(g Game, c core.Coord) Game {
	if g.status != StatusOn {
		return g
	}

	if g.flagging {
		if g.Flagged(c) {
			return Unflag(g, c)
		}
		return Flag(g, c)
	}

	if g.Flagged(c) {
		return g
	}
	return Reveal(g, c)
}

// ToggleFlagging flips between reveal and flag mode while the game is on.
func ToggleFlagging(g Game) Game {
	if g.status != StatusOn {
		return g
	}
	g.flagging = !g.flagging
	return g
}

// Tick consumes one second of the countdown. Running out sets overtime.
func Tick(g Game) Game {
	if g.status != StatusOn {
		return g
	}
	if g.secondsLeft > 0 {
		g.secondsLeft--
	}
	if g.secondsLeft == 0 {
		g.status = StatusOvertime
	}
	return g
}
