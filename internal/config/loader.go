package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UnicornFile is the config file name looked up in the search directories.
const UnicornFile = "unicorn.yaml"

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// LoadUnicorn loads Unicorn Run configuration.
// Search order: customPath -> ~/.arcade/configs/unicorn.yaml -> ./configs/unicorn.yaml -> embedded default.
// Values present in a file override the defaults; missing keys keep them.
func LoadUnicorn(customPath string) (UnicornConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultUnicornConfig(), fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := ParseUnicorn(data)
		if err != nil {
			return DefaultUnicornConfig(), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local one
	for _, path := range []string{userConfigPath(UnicornFile), filepath.Join("configs", UnicornFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := ParseUnicorn(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseUnicorn(defaultUnicornYAML)
	if err != nil {
		return DefaultUnicornConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseUnicorn decodes YAML on top of the hardcoded defaults and validates the result.
func ParseUnicorn(data []byte) (UnicornConfig, error) {
	cfg := DefaultUnicornConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the config describes a playable world.
func (c UnicornConfig) Validate() error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, msg))
		}
	}

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0, "playfield must have positive size")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player must have positive size")
	check(c.Player.MinX <= c.Player.RestX, "player.min_x must not exceed player.rest_x")
	check(c.Player.MaxJumps >= 1, "player.max_jumps must be at least 1")
	check(c.Player.TrailLength >= 0, "player.trail_length must not be negative")
	check(c.World.InitialSpeed >= 0, "world.initial_speed must not be negative")
	check(c.World.MaxSpeed >= c.World.InitialSpeed, "world.max_speed must be at least world.initial_speed")
	check(c.World.StartWishes >= 1 && c.World.StartWishes <= c.World.MaxWishes, "world.start_wishes must be in [1, max_wishes]")
	check(c.Platforms.Count >= 1, "platforms.count must be at least 1")
	check(c.Platforms.MinWidth > 0 && c.Platforms.MinWidth <= c.Platforms.MaxWidth, "platforms width range is invalid")
	check(c.Platforms.MinGap >= 0 && c.Platforms.MinGap <= c.Platforms.MaxGap, "platforms gap range is invalid")
	check(c.Spawning.ObstacleChance >= 0 && c.Spawning.ObstacleChance <= 1, "spawning.obstacle_chance must be in [0, 1]")
	check(c.Spawning.PowerUpChance >= 0 && c.Spawning.PowerUpChance <= 1, "spawning.powerup_chance must be in [0, 1]")
	check(c.Spawning.CandidatePlatforms >= 1, "spawning.candidate_platforms must be at least 1")
	check(c.PowerUps.Multiplier >= 1, "powerups.multiplier must be at least 1")
	check(c.Audio.SFXVolume >= 0 && c.Audio.SFXVolume <= 1, "audio.sfx_volume must be in [0, 1]")
	check(c.Audio.MusicVolume >= 0 && c.Audio.MusicVolume <= 1, "audio.music_volume must be in [0, 1]")

	return errors.Join(errs...)
}

// UserConfigDir returns ~/.arcade/configs, or empty if home is unavailable.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}

// ResolvePath returns the file LoadUnicorn would read, or empty when only
// the embedded default applies.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range []string{userConfigPath(UnicornFile), filepath.Join("configs", UnicornFile)} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
