package main

import (
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

func TestConfigHeader(t *testing.T) {
	tests := []struct {
		src      config.Source
		preset   config.DifficultyPreset
		expected string
	}{
		{config.SourceEmbedded, config.DifficultyNormal, "# source: " + string(config.SourceEmbedded) + "\n# difficulty: normal\n"},
		{config.Source("my.yaml"), config.DifficultyHard, "# source: my.yaml\n# difficulty: hard\n"},
		{config.SourceBuiltin, config.DifficultyFixed, "# source: " + string(config.SourceBuiltin) + "\n# difficulty: fixed (speed never increases)\n"},
	}

	for _, tc := range tests {
		if got := configHeader(tc.src, tc.preset); got != tc.expected {
			t.Errorf("configHeader(%q, %q) = %q, expected %q", tc.src, tc.preset, got, tc.expected)
		}
	}
}
