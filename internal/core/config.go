package core

// BoardConfig describes a game to be generated.
type BoardConfig struct {
	Width   int   // Columns
	Height  int   // Rows
	Mines   int   // Mine count, strictly less than Width*Height
	Seconds int   // Countdown length
	Seed    int64 // RNG seed for mine placement, 0 means time-based
}

// DefaultConfig returns the classic 6x9 board with 8 mines and five minutes.
func DefaultConfig() BoardConfig {
	return BoardConfig{
		Width:   6,
		Height:  9,
		Mines:   8,
		Seconds: 300,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Size returns the board dimensions.
func (c BoardConfig) Size() Size {
	return Size{Width: c.Width, Height: c.Height}
}
