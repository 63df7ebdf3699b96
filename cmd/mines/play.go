package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/mines"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/session"
	"github.com/vovakirdan/tui-mines/internal/stats"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

// customPreset labels games whose board was changed on the command line.
const customPreset = "custom"

var (
	flagPreset  string
	flagWidth   int
	flagHeight  int
	flagMines   int
	flagSeconds int
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on the selected preset.

The clock starts with the first opened cell. Open every safe cell
before it runs out.

Controls:
  Arrows/hjkl  - Move the cursor
  Space/Enter  - Open the cell, or flag it in flag mode
  F            - Toggle flag mode
  R            - Restart
  S            - Show stats
  Q/Ctrl+C     - Quit

Examples:
  mines play
  mines play --preset blitz
  mines play --width 16 --height 16 --mines 40 --seconds 600
  mines play --seed 42 --log-file mines.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset (default from config)")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Override board width")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Override board height")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Override mine count")
	playCmd.Flags().IntVar(&flagSeconds, "seconds", 0, "Override countdown length")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write session logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("mines play needs a terminal; use 'mines serve' for remote play")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	preset, err := resolvePreset(cfg, flagPreset)
	if err != nil {
		return err
	}
	preset = applyOverrides(cmd, preset)

	logger, closeLog, err := playLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	board := preset.Board
	board.Seed = flagSeed
	sess, err := session.New(board,
		session.WithPreset(preset.ID),
		session.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer sess.Close()

	// Open stats storage
	store, err := storage.OpenStats(cfg.Stats)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open stats store: %v\n", err)
		// Continue without stats - game still works
		store = nil
	} else {
		defer store.Close()
		rec := stats.NewRecorder(store, nil, logger)
		defer rec.Close()
		rec.Attach(sess)
	}

	return tui.Run(sess, store, cfg.Stats.Ranks)
}

// resolvePreset looks up id, falling back to the configured default preset.
func resolvePreset(cfg config.Config, id string) (registry.Preset, error) {
	if id == "" {
		id = cfg.DefaultPreset
	}
	if id == "" {
		id = mines.PresetClassic
	}
	p, err := registry.Lookup(id)
	if err != nil {
		return p, fmt.Errorf("%w (run 'mines list' to see available presets)", err)
	}
	return p, nil
}

// applyOverrides applies the board flags that were set explicitly.
func applyOverrides(cmd *cobra.Command, p registry.Preset) registry.Preset {
	flags := cmd.Flags()
	changed := false
	if flags.Changed("width") {
		p.Board.Width, changed = flagWidth, true
	}
	if flags.Changed("height") {
		p.Board.Height, changed = flagHeight, true
	}
	if flags.Changed("mines") {
		p.Board.Mines, changed = flagMines, true
	}
	if flags.Changed("seconds") {
		p.Board.Seconds, changed = flagSeconds, true
	}
	if changed {
		p.ID, p.Title = customPreset, "Custom"
	}
	return p
}

// playLogger returns a logger writing to --log-file, or a discarding one.
// The terminal belongs to the TUI while playing.
func playLogger(cfg config.Config) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "mines",
	})
	logger.SetLevel(cfg.Level())
	return logger, func() { f.Close() }, nil
}
