package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyUnicornPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyUnicornPreset(cfg *UnicornConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.World.InitialSpeed *= 0.8
		cfg.World.MaxSpeed *= 0.8
		cfg.World.Acceleration *= 0.5
		cfg.Spawning.ObstacleChance *= 0.7
		cfg.Spawning.PowerUpChance *= 1.5
	case DifficultyHard:
		cfg.World.InitialSpeed *= 1.25
		cfg.World.MaxSpeed *= 1.25
		cfg.World.Acceleration *= 2
		cfg.Spawning.ObstacleChance *= 1.5
		cfg.Spawning.PowerUpChance *= 0.6
	case DifficultyFixed:
		cfg.World.Acceleration = 0
	}

	if cfg.World.MaxSpeed < cfg.World.InitialSpeed {
		cfg.World.MaxSpeed = cfg.World.InitialSpeed
	}
	if cfg.Spawning.ObstacleChance > 1 {
		cfg.Spawning.ObstacleChance = 1
	}
	if cfg.Spawning.PowerUpChance > 1 {
		cfg.Spawning.PowerUpChance = 1
	}
}
