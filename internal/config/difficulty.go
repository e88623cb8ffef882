package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyBlocksPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values untouched.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.InitialIntervalMs = 1200
		cfg.Speed.IntervalStepMs = 75
	case DifficultyHard:
		cfg.Speed.InitialIntervalMs = 600
		cfg.Speed.IntervalStepMs = 100
	case DifficultyFixed:
		cfg.Speed.IntervalStepMs = 0
	}
	if cfg.Speed.MinIntervalMs > cfg.Speed.InitialIntervalMs {
		cfg.Speed.MinIntervalMs = cfg.Speed.InitialIntervalMs
	}
}
