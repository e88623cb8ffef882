// Package config provides YAML-based rules configuration loading and
// difficulty presets for the blocks game.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blocks/internal/engine"
)

// MaxPreview bounds the number of upcoming pieces the HUD can show.
const MaxPreview = 5

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid blocks config")

// BlocksConfig contains all configuration for the blocks game.
type BlocksConfig struct {
	Speed   SpeedConfig   `yaml:"speed"`
	Scoring ScoringConfig `yaml:"scoring"`
	Pieces  PiecesConfig  `yaml:"pieces"`
}

// SpeedConfig defines gravity timing.
type SpeedConfig struct {
	InitialIntervalMs int `yaml:"initial_interval_ms"`
	MinIntervalMs     int `yaml:"min_interval_ms"`
	IntervalStepMs    int `yaml:"interval_step_ms"` // 0 disables speed-up
}

// ScoringConfig defines points and level progression.
type ScoringConfig struct {
	LineScore      int `yaml:"line_score"`
	LevelThreshold int `yaml:"level_threshold"`
}

// PiecesConfig toggles hold and sets the preview length.
type PiecesConfig struct {
	Hold    bool `yaml:"hold"`
	Preview int  `yaml:"preview"`
}

// DefaultBlocksConfig returns the classic rules.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Speed: SpeedConfig{
			InitialIntervalMs: 1000,
			MinIntervalMs:     100,
			IntervalStepMs:    100,
		},
		Scoring: ScoringConfig{
			LineScore:      100,
			LevelThreshold: 500,
		},
		Pieces: PiecesConfig{
			Hold:    true,
			Preview: 1,
		},
	}
}

// Validate reports the first rule that cannot drive a game.
func (c BlocksConfig) Validate() error {
	switch {
	case c.Speed.InitialIntervalMs <= 0:
		return fmt.Errorf("%w: speed.initial_interval_ms must be positive, got %d", ErrInvalid, c.Speed.InitialIntervalMs)
	case c.Speed.MinIntervalMs <= 0:
		return fmt.Errorf("%w: speed.min_interval_ms must be positive, got %d", ErrInvalid, c.Speed.MinIntervalMs)
	case c.Speed.MinIntervalMs > c.Speed.InitialIntervalMs:
		return fmt.Errorf("%w: speed.min_interval_ms (%d) exceeds initial_interval_ms (%d)",
			ErrInvalid, c.Speed.MinIntervalMs, c.Speed.InitialIntervalMs)
	case c.Speed.IntervalStepMs < 0:
		return fmt.Errorf("%w: speed.interval_step_ms must not be negative, got %d", ErrInvalid, c.Speed.IntervalStepMs)
	case c.Scoring.LineScore <= 0:
		return fmt.Errorf("%w: scoring.line_score must be positive, got %d", ErrInvalid, c.Scoring.LineScore)
	case c.Scoring.LevelThreshold <= 0:
		return fmt.Errorf("%w: scoring.level_threshold must be positive, got %d", ErrInvalid, c.Scoring.LevelThreshold)
	case c.Pieces.Preview < 1 || c.Pieces.Preview > MaxPreview:
		return fmt.Errorf("%w: pieces.preview must be between 1 and %d, got %d", ErrInvalid, MaxPreview, c.Pieces.Preview)
	}
	return nil
}

// Options converts the config into engine rules.
func (c BlocksConfig) Options(seed int64) engine.Options {
	return engine.Options{
		HoldEnabled:       c.Pieces.Hold,
		Preview:           c.Pieces.Preview,
		InitialIntervalMs: c.Speed.InitialIntervalMs,
		MinIntervalMs:     c.Speed.MinIntervalMs,
		IntervalStepMs:    c.Speed.IntervalStepMs,
		LineScore:         c.Scoring.LineScore,
		LevelThreshold:    c.Scoring.LevelThreshold,
		Seed:              seed,
	}
}

// Marshal renders the config as YAML.
func (c BlocksConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
