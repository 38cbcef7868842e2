package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagDifficulty string
	flagColor      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game of snake in this terminal.

Without --difficulty a setup menu lets you pick the difficulty and the
snake color first.

Controls:
  Arrows/WASD/hjkl - Steer
  Enter/R          - Start or restart
  P/Space          - Pause and resume
  1/2/3            - Easy, normal, hard
  C                - Cycle snake color
  Esc              - Back to the setup menu (paused or over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - slow ticks, small obstacle batches
  normal - default
  hard   - fast ticks, large obstacle batches

Examples:
  snake play
  snake play --difficulty easy
  snake play --difficulty hard --color bright-cyan
  snake play --seed 42 --log-file snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, normal, hard (skips the setup menu)")
	playCmd.Flags().StringVar(&flagColor, "color", "", "Snake color, e.g. bright-green, orange, bright-cyan")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := config.ApplyDifficultyOverride(&cfg, flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := config.ApplyColorOverride(&cfg, flagColor); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// alt screen owns stdout, so logs only go to --log-file
	logger, closeLog, err := newLogger("snake", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	opts, err := sessionOptions(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size before the first WindowSizeMsg arrives
	screen := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		screen.ScreenW = w
		screen.ScreenH = h
	}

	opts.Screen = screen
	opts.Logger = logger
	opts.SkipSetup = cmd.Flags().Changed("difficulty")

	if err := tui.RunSession(opts); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog() //nolint:errcheck // Best-effort close on exit
		os.Exit(1)
	}
}
