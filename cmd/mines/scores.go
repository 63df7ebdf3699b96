package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var (
	flagReset bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show outcome counts and fastest wins",
	Long: `Display how many games were lost to a mine, lost to the clock
or won, and the fastest wins. Without a preset, all presets are combined.

Examples:
  mines scores
  mines scores classic
  mines scores blitz --limit 3
  mines scores classic --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the recorded outcomes instead of showing them")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 0, "Number of wins to list (default from config)")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	preset := ""
	if len(args) == 1 {
		preset = args[0]
		if !registry.Exists(preset) && preset != customPreset {
			return fmt.Errorf("unknown preset %q (run 'mines list' to see available presets)", preset)
		}
	}

	store, err := storage.OpenStats(cfg.Stats)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	if flagReset {
		if err := store.Reset(ctx, preset); err != nil {
			return err
		}
		if preset == "" {
			fmt.Println("All outcomes deleted.")
		} else {
			fmt.Printf("Outcomes for %s deleted.\n", preset)
		}
		return nil
	}

	limit := flagLimit
	if limit <= 0 {
		limit = cfg.Stats.Ranks
	}
	sum, err := store.Summary(ctx, preset, limit)
	if err != nil {
		return err
	}

	title := "all presets"
	if preset != "" {
		title = preset
	}
	fmt.Printf("Stats - %s\n", title)
	fmt.Println()

	c := sum.Counts
	fmt.Printf("  Played: %d   Won: %d   Mine: %d   Time: %d\n", c.Total(), c.Win, c.Mine, c.Time)
	fmt.Println()

	if len(sum.Ranks) == 0 {
		fmt.Println("No wins recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %s\n", "Rank", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %s\n", "----", "----", "----")
	for i, r := range sum.Ranks {
		fmt.Printf("  %-4d  %-8s  %s\n", i+1, fmt.Sprintf("%ds", r.Elapsed), r.At.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
