package config

import (
	_ "embed"
)

//go:embed defaults/unicorn.yaml
var defaultUnicornYAML []byte

// DefaultUnicornConfig returns the default Unicorn Run configuration.
func DefaultUnicornConfig() UnicornConfig {
	return UnicornConfig{
		Playfield: PlayfieldConfig{
			Width:  1000,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:          60,
			Height:         60,
			RestX:          150,
			MinX:           50,
			StartY:         300,
			RespawnY:       200,
			JumpForce:      15,
			Gravity:        0.6,
			MaxJumps:       2,
			DashSpeed:      25,
			DashDurationMs: 300,
			DashCooldownMs: 1000,
			TrailLength:    60,
		},
		World: WorldConfig{
			InitialSpeed: 6,
			Acceleration: 0.001,
			MaxSpeed:     12,
			StartWishes:  3,
			MaxWishes:    3,
			Stars:        100,
		},
		Platforms: PlatformsConfig{
			Count:       5,
			MinWidth:    200,
			MaxWidth:    400,
			MinGap:      150,
			MaxGap:      350,
			Height:      20,
			BaseOffset:  100,
			HeightRange: 150,
			PruneX:      -100,
		},
		Spawning: SpawningConfig{
			ObstacleChance:     0.015,
			MaxObstacles:       4,
			ObstacleSize:       40,
			ObstacleLift:       60,
			PowerUpChance:      0.005,
			MaxPowerUps:        2,
			PowerUpSize:        30,
			PowerUpLift:        80,
			CandidatePlatforms: 3,
		},
		PowerUps: PowerUpsConfig{
			DurationMs:    5000,
			Multiplier:    2,
			LifeBonus:     500,
			DestroyPoints: 100,
		},
		Effects: EffectsConfig{
			HitFlashMs:     500,
			ShakeIntensity: 15,
			ShakeMs:        400,
			FlashAlpha:     0.5,
			FlashMs:        300,
		},
		Audio: AudioConfig{
			SFXVolume:   0.5,
			MusicVolume: 0.3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "unicorn":
		return defaultUnicornYAML
	default:
		return nil
	}
}
