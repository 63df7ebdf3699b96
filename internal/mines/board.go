package mines

import (
	"github.com/vovakirdan/tui-mines/internal/core"
)

// Cell is one board position. Only Checked ever changes, and only
// from false to true.
type Cell struct {
	Mine     bool
	Checked  bool
	Adjacent int // Mines among the clipped neighbors; zero for mine cells
}

// Board maps every position of a grid to its cell.
type Board map[core.ID]Cell

// MineCount returns the number of mine cells on the board.
func (b Board) MineCount() int {
	n := 0
	for _, c := range b {
		if c.Mine {
			n++
		}
	}
	return n
}

// NewBoard places mines uniformly at random and computes adjacency counts.
func NewBoard(size core.Size, mines int, rnd core.Random) (Board, error) {
	if err := validateLayout(size, mines); err != nil {
		return nil, err
	}

	ids, err := core.RandomNonOverlapping(size, mines, rnd)
	if err != nil {
		return nil, err
	}
	return layBoard(size, ids), nil
}

// NewBoardWithMines builds a board with mines at exactly the given
// positions. Duplicate positions count once.
func NewBoardWithMines(size core.Size, mines ...core.Coord) (Board, error) {
	ids := make(map[core.ID]struct{}, len(mines))
	for _, c := range mines {
		if !size.Contains(c) {
			return nil, &ConfigError{
				Width:  size.Width,
				Height: size.Height,
				Mines:  len(mines),
				Reason: "mine position " + string(core.Encode(c)) + " is off the board",
			}
		}
		ids[core.Encode(c)] = struct{}{}
	}

	if err := validateLayout(size, len(ids)); err != nil {
		return nil, err
	}
	return layBoard(size, ids), nil
}

func validateLayout(size core.Size, mines int) error {
	return ValidateConfig(core.BoardConfig{
		Width:   size.Width,
		Height:  size.Height,
		Mines:   mines,
		Seconds: 1,
	})
}

// layBoard is deterministic given the mine set.
func layBoard(size core.Size, mineIDs map[core.ID]struct{}) Board {
	board := make(Board, size.Cells())
	for _, c := range size.Coords() {
		id := core.Encode(c)
		if _, ok := mineIDs[id]; ok {
			board[id] = Cell{Mine: true}
			continue
		}

		adjacent := 0
		for _, n := range core.ClipToBoard(size, core.Neighbors(c)) {
			if _, ok := mineIDs[core.Encode(n)]; ok {
				adjacent++
			}
		}
		board[id] = Cell{Adjacent: adjacent}
	}
	return board
}
