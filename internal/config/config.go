// Package config provides YAML-based configuration loading for the
// minesweeper CLI, its presets, stats backend and SSH server.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// Stats backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config is the top-level configuration file.
type Config struct {
	LogLevel      string         `yaml:"log_level"`
	DefaultPreset string         `yaml:"default_preset"`
	Presets       []PresetConfig `yaml:"presets"`
	Stats         StatsConfig    `yaml:"stats"`
	SSH           SSHConfig      `yaml:"ssh"`
}

// PresetConfig defines a named board.
type PresetConfig struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Mines   int    `yaml:"mines"`
	Seconds int    `yaml:"seconds"`
}

// Board returns the board parameters of the preset.
func (p PresetConfig) Board() core.BoardConfig {
	return core.BoardConfig{
		Width:   p.Width,
		Height:  p.Height,
		Mines:   p.Mines,
		Seconds: p.Seconds,
	}
}

// StatsConfig selects and configures the outcome store.
type StatsConfig struct {
	Backend     string `yaml:"backend"` // "sqlite", "redis" or "memory"
	SQLitePath  string `yaml:"sqlite_path"`
	RedisURL    string `yaml:"redis_url"`
	RedisPrefix string `yaml:"redis_prefix"`
	Ranks       int    `yaml:"ranks"` // Leaderboard length shown by `mines scores`
}

// SSHConfig defines the `mines serve` listener.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Empty means ~/.mines/ssh_host_ed25519
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate reports the first problem found in the configuration.
func (c Config) Validate() error {
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("config: log_level: %w", err)
		}
	}

	switch c.Stats.Backend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("config: unknown stats backend %q", c.Stats.Backend)
	}
	if c.Stats.Ranks < 1 {
		return errors.New("config: stats.ranks must be at least 1")
	}

	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if p.ID == "" {
			return errors.New("config: preset without id")
		}
		if seen[p.ID] {
			return fmt.Errorf("config: duplicate preset %q", p.ID)
		}
		seen[p.ID] = true
		if err := mines.ValidateConfig(p.Board()); err != nil {
			return fmt.Errorf("config: preset %q: %w", p.ID, err)
		}
	}

	if c.DefaultPreset != "" && !seen[c.DefaultPreset] && !registry.Exists(c.DefaultPreset) {
		return fmt.Errorf("config: default_preset %q is not defined", c.DefaultPreset)
	}
	return nil
}

// RegisterPresets makes the configured presets available by id, replacing
// built-ins that share an id.
func (c Config) RegisterPresets() {
	for _, p := range c.Presets {
		title := p.Title
		if title == "" {
			title = p.ID
		}
		registry.Override(registry.Preset{ID: p.ID, Title: title, Board: p.Board()})
	}
}

// Level returns the configured log level, defaulting to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
