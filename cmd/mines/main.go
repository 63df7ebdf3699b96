// mines is a terminal minesweeper with a countdown clock.
//
// Usage:
//
//	mines list              - List board presets
//	mines play              - Play the default preset
//	mines play --preset id  - Play a specific preset
//	mines serve             - Start SSH server for remote play
//	mines scores [preset]   - Show outcome counts and fastest wins
//
// Global flags:
//
//	--config <path>     - Use a specific config file
//	--seed <value>      - Set RNG seed for reproducible boards
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper against the clock, in your terminal",
	Long: `mines is a terminal minesweeper. Clear every safe cell before
the countdown runs out, without opening a mine.

Available commands:
  list     - Show the board presets
  play     - Play a game
  serve    - Start SSH server for remote play
  scores   - View outcome counts and fastest wins

Examples:
  mines list
  mines play --preset blitz
  mines serve --ssh :2222
  mines scores classic`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: ~/.mines/configs/mines.yaml)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig reads the configuration, applies global flags and registers
// the configured presets.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return cfg, fmt.Errorf("--log-level: %w", err)
		}
		cfg.LogLevel = flagLogLevel
	}
	cfg.RegisterPresets()
	return cfg, nil
}

// newLogger creates the stderr logger used by commands.
func newLogger(cfg config.Config, prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	logger.SetLevel(cfg.Level())
	return logger
}
