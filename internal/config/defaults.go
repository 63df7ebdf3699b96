package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/mines.yaml
var defaultMinesYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/mines.yaml and is used if the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		LogLevel:      "info",
		DefaultPreset: "classic",
		Presets: []PresetConfig{
			{ID: "classic", Title: "Classic", Width: 6, Height: 9, Mines: 8, Seconds: 300},
			{ID: "blitz", Title: "Blitz", Width: 10, Height: 10, Mines: 20, Seconds: 60},
		},
		Stats: StatsConfig{
			Backend:     BackendSQLite,
			SQLitePath:  "~/.mines/stats.db",
			RedisURL:    "redis://localhost:6379/0",
			RedisPrefix: "mines",
			Ranks:       10,
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
