package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board presets",
	Long:  `Shows the built-in presets and the ones defined in the config file.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	presets := registry.List()
	if len(presets) == 0 {
		fmt.Println("No presets available.")
		return nil
	}

	fmt.Println("Available presets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-10s  %-7s  %5s  %5s\n", maxIDLen, "ID", "Title", "Board", "Mines", "Time")
	fmt.Printf("  %-*s  %-10s  %-7s  %5s  %5s\n", maxIDLen, "--", "-----", "-----", "-----", "----")

	for _, p := range presets {
		marker := ""
		if p.ID == cfg.DefaultPreset {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %-10s  %-7s  %5d  %4ds%s\n",
			maxIDLen, p.ID, p.Title,
			fmt.Sprintf("%dx%d", p.Board.Width, p.Board.Height),
			p.Board.Mines, p.Board.Seconds, marker)
	}

	fmt.Println()
	fmt.Println("Run 'mines play --preset <id>' to play.")
	return nil
}
