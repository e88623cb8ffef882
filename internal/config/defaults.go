package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultYAML returns the embedded default blocks.yaml.
func DefaultYAML() []byte {
	return defaultBlocksYAML
}
