package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/game"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List difficulty tiers",
	Long:  `Shows the tick interval and obstacle batch size of each difficulty tier, as loaded from the config.`,
	Args:  cobra.NoArgs,
	Run:   runTiers,
}

func runTiers(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	tiers, err := cfg.Difficulty.Tiers()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	def, err := cfg.Difficulty.DefaultTier()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Difficulty tiers:")
	fmt.Println()

	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "Tier", "Name", "Tick", "Obstacles per batch")
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "----", "----", "----", "-------------------")

	for i, d := range game.Difficulties {
		s := tiers.Settings(d)
		marker := ""
		if d == def {
			marker = "  (default)"
		}
		fmt.Printf("  %-4d  %-6s  %-8s  %d%s\n", i+1, d, s.TickInterval, s.ObstacleCount, marker)
	}

	fmt.Println()
	fmt.Printf("A new obstacle batch appears every %d points.\n", game.ObstacleMilestone)
	fmt.Println("Run 'snake play --difficulty <name>' to skip the setup menu.")
}
