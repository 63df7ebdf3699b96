// Package core provides the grid primitives shared by the rules engine and
// its collaborators: coordinates, board sizes and cell identifiers.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"errors"
	"strconv"
	"strings"
)

// ErrMalformedID is returned by Decode for identifiers not shaped like "x-y".
var ErrMalformedID = errors.New("core: malformed cell id")

// Coord is a 0-indexed board position.
type Coord struct {
	X, Y int
}

// Size holds board dimensions.
type Size struct {
	Width, Height int
}

// Cells returns the number of positions on a board of this size.
func (s Size) Cells() int {
	return s.Width * s.Height
}

// Contains returns true if c lies on the board.
func (s Size) Contains(c Coord) bool {
	return c.X >= 0 && c.X < s.Width && c.Y >= 0 && c.Y < s.Height
}

// Coords enumerates every position row by row.
func (s Size) Coords() []Coord {
	out := make([]Coord, 0, s.Cells())
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			out = append(out, Coord{X: x, Y: y})
		}
	}
	return out
}

// ID is the canonical map key of a cell, "x-y".
type ID string

// Encode returns the identifier for c.
func Encode(c Coord) ID {
	return ID(strconv.Itoa(c.X) + "-" + strconv.Itoa(c.Y))
}

// Decode is the inverse of Encode.
func Decode(id ID) (Coord, error) {
	xs, ys, ok := strings.Cut(string(id), "-")
	if !ok {
		return Coord{}, ErrMalformedID
	}
	x, err := parseIndex(xs)
	if err != nil {
		return Coord{}, ErrMalformedID
	}
	y, err := parseIndex(ys)
	if err != nil {
		return Coord{}, ErrMalformedID
	}
	return Coord{X: x, Y: y}, nil
}

// parseIndex accepts only plain decimal digits so that Decode never
// yields a coordinate whose Encode differs from the input.
func parseIndex(s string) (int, error) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, ErrMalformedID
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrMalformedID
		}
	}
	return strconv.Atoi(s)
}

// neighborOffsets is the Moore neighborhood, excluding the center.
var neighborOffsets = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the 8 coordinates around c. The result is not
// clipped to any board.
func Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		out = append(out, Coord{X: c.X + d.X, Y: c.Y + d.Y})
	}
	return out
}

// ClipToBoard keeps only the coordinates that lie on a board of the given size.
func ClipToBoard(size Size, coords []Coord) []Coord {
	out := make([]Coord, 0, len(coords))
	for _, c := range coords {
		if size.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
