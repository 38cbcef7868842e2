// snake is a terminal snake game with wraparound edges and obstacles.
//
// Usage:
//
//	snake play               - Play locally
//	snake serve              - Start SSH server for remote play
//	snake tiers              - List difficulty tiers
//	snake config             - Print the default config YAML
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search ~/.snake/configs, ./configs)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal version of the classic game. The board wraps
around at the edges, food makes the snake grow, and every five points
a new batch of obstacles appears.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  tiers    - Show the difficulty tiers
  config   - Print the default config YAML

Examples:
  snake play
  snake play --difficulty hard --color orange
  snake serve --ssh :2222
  snake tiers --config ./snake.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(configCmd)
}

// sessionOptions turns a loaded config into the template for a game session.
// The grid is left empty; sessions derive it from the window size.
func sessionOptions(cfg config.SnakeConfig) (tui.SessionOptions, error) {
	engine, err := cfg.EngineOptions(game.Grid{}, flagSeed)
	if err != nil {
		return tui.SessionOptions{}, err
	}
	return tui.SessionOptions{
		Engine: engine,
		Layout: tui.Layout{CellSize: cfg.Grid.CellSize, CellWidth: cfg.Grid.CellWidth},
	}, nil
}
