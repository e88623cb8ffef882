// blocks is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blocks play [game]       - Play (default: blocks)
//	blocks list              - List available game variants
//	blocks menu              - Pick a variant and difficulty interactively
//	blocks config            - Print the effective rules as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible piece order
//	--log-file <path>     - Session log (default: ~/.blocks/blocks.log, "" disables)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

var (
	// Global flags
	flagFPS      int
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
	Use:   "blocks",
	Short: "Blocks - falling-block puzzles in your terminal",
	Long: `Blocks drops pieces onto a 10x20 board. Fill rows to clear them,
score 100 points a line and speed up every level.

Available commands:
  play     - Start a game
  list     - Show the game variants
  menu     - Interactive variant and difficulty picker
  config   - Print the rules a game would use

Examples:
  blocks play
  blocks play blocks_classic --difficulty hard
  blocks --seed 42 play
  blocks config --difficulty easy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.blocks/blocks.log", "Session log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}
