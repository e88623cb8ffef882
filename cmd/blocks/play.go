package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without an argument the default "blocks" variant runs.

Controls:
  Left/Right, A/D    - Move
  Down, S            - Soft drop
  Up, W, X           - Rotate clockwise
  Z                  - Rotate counter-clockwise
  Space              - Hard drop
  C                  - Hold (not in blocks_classic)
  P/Esc              - Pause
  R                  - Restart
  Ctrl+S             - Save a text screenshot
  Q/Ctrl+C           - Quit
  Mouse drag         - Swipe left/right to move, down to drop, up to rotate

Difficulty options:
  easy   - Slower start, gentler speed-up
  normal - Rules as configured
  hard   - Fast start
  fixed  - Gravity never speeds up

Examples:
  blocks play
  blocks play blocks_classic
  blocks play --difficulty hard
  blocks play --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := registry.DefaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blocks list' to see available games.")
		os.Exit(1)
	}

	// Fail on bad flags or rules before taking over the terminal
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, err := config.LoadBlocks(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	blocks.SetConfigPath(flagConfig)
	blocks.SetDifficultyPreset(flagDifficulty)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger, closer, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		closer.Close() //nolint:errcheck // Exiting anyway
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, cfg, tui.Options{Logger: logger})

	// Close the log before potential exit
	closer.Close() //nolint:errcheck // Best-effort flush

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
