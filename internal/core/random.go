package core

import (
	"errors"
	"math/rand"
)

// ErrNotEnoughCells is returned when more distinct positions are requested
// than the board holds.
var ErrNotEnoughCells = errors.New("core: not enough cells")

// Random is the source of randomness used for mine placement.
// *rand.Rand satisfies it.
type Random interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
}

// NewRandom returns a seeded math/rand source.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomNonOverlapping draws count distinct in-bounds ids by rejection
// sampling: it keeps drawing uniform positions and skips repeats.
func RandomNonOverlapping(size Size, count int, rnd Random) (map[ID]struct{}, error) {
	if count < 0 || count > size.Cells() {
		return nil, ErrNotEnoughCells
	}

	ids := make(map[ID]struct{}, count)
	for len(ids) < count {
		c := Coord{X: rnd.Intn(size.Width), Y: rnd.Intn(size.Height)}
		ids[Encode(c)] = struct{}{}
	}
	return ids, nil
}
