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

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and difficulty, then play",
	Long: `Start in interactive menu mode.

Choose a game variant, then a difficulty. Quitting a game returns to the
menu; quitting the menu exits.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Esc          - Back
  Q            - Quit

Examples:
  blocks menu
  blocks menu --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	if _, err := config.LoadBlocks(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	blocks.SetConfigPath(flagConfig)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: menu needs an interactive terminal")
		os.Exit(1)
	}

	logger, closer, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close() //nolint:errcheck // Best-effort flush

	for {
		// Get terminal size each round; it may have changed while playing
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		sel, err := tui.RunSelector(width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if sel == nil {
			return
		}

		blocks.SetDifficultyPreset(string(sel.Difficulty))
		game, err := registry.Create(sel.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			return
		}

		cfg := core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		}
		logger.Info("menu selection", "game", sel.GameID, "difficulty", sel.Difficulty)
		if err := tui.Run(game, cfg, tui.Options{Logger: logger}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
	}
}
