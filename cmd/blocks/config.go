package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective rules as YAML",
	Long: `Resolves the rules the same way 'blocks play' does and prints them.

Search order:
  --config path
  ~/.blocks/configs/blocks.yaml
  ./configs/blocks.yaml
  built-in defaults

Examples:
  blocks config
  blocks config --difficulty hard
  blocks config --defaults > ~/.blocks/configs/blocks.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the commented default file instead")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, src, err := config.Resolve(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyBlocksPreset(&cfg, preset)

	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(configHeader(src, preset))
	//nolint:errcheck // Nothing useful to do if stdout is gone
	os.Stdout.Write(data)
}

// configHeader returns the comment lines printed above the YAML.
func configHeader(src config.Source, preset config.DifficultyPreset) string {
	difficulty := string(preset)
	if config.IsFixedPreset(preset) {
		difficulty += " (speed never increases)"
	}
	return fmt.Sprintf("# source: %s\n# difficulty: %s\n", src, difficulty)
}
