package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "blocks.yaml"

// Source names where a loaded config came from.
type Source string

const (
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadBlocks loads the blocks configuration.
// Search order: customPath -> ~/.blocks/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default
func LoadBlocks(customPath string) (BlocksConfig, error) {
	cfg, _, err := Resolve(customPath)
	return cfg, err
}

// Resolve is LoadBlocks that also reports which file was used.
// Keys missing from a file keep their default value.
func Resolve(customPath string) (BlocksConfig, Source, error) {
	// Custom path must load; everything after it is best effort
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlocksConfig{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return BlocksConfig{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, Source(customPath), nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := decode(data)
		if err != nil {
			return BlocksConfig{}, "", fmt.Errorf("config: %s: %w", path, err)
		}
		return cfg, Source(path), nil
	}

	if cfg, err := decode(defaultBlocksYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultBlocksConfig(), SourceBuiltin, nil
}

// decode overlays YAML onto the defaults and validates the result.
func decode(data []byte) (BlocksConfig, error) {
	cfg := DefaultBlocksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlocksConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BlocksConfig{}, err
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(ConfigFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", ConfigFile))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blocks", "configs", filename)
}
