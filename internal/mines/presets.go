package mines

import (
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// Built-in preset IDs.
const (
	PresetClassic = "classic"
	PresetBlitz   = "blitz"
)

func init() {
	registry.Register(registry.Preset{
		ID:    PresetClassic,
		Title: "Classic",
		Board: core.BoardConfig{Width: 6, Height: 9, Mines: 8, Seconds: 300},
	})
	registry.Register(registry.Preset{
		ID:    PresetBlitz,
		Title: "Blitz",
		Board: core.BoardConfig{Width: 10, Height: 10, Mines: 20, Seconds: 60},
	})
}
