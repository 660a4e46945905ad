// Package config provides YAML-based game configuration loading,
// difficulty presets and hot reload for Unicorn Run.
package config

import "time"

// UnicornConfig contains all tuning for the Unicorn Run game.
// Distances are playfield pixels and durations are milliseconds.
type UnicornConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	World     WorldConfig     `yaml:"world"`
	Platforms PlatformsConfig `yaml:"platforms"`
	Spawning  SpawningConfig  `yaml:"spawning"`
	PowerUps  PowerUpsConfig  `yaml:"powerups"`
	Effects   EffectsConfig   `yaml:"effects"`
	Audio     AudioConfig     `yaml:"audio"`
}

// PlayfieldConfig defines the logical world size.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the unicorn's body and movement.
type PlayerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	RestX          float64 `yaml:"rest_x"`    // Right clamp, where the unicorn settles
	MinX           float64 `yaml:"min_x"`     // Left clamp
	StartY         float64 `yaml:"start_y"`   // Y at game start
	RespawnY       float64 `yaml:"respawn_y"` // Y after losing a wish
	JumpForce      float64 `yaml:"jump_force"`
	Gravity        float64 `yaml:"gravity"`
	MaxJumps       int     `yaml:"max_jumps"`
	DashSpeed      float64 `yaml:"dash_speed"`
	DashDurationMs int     `yaml:"dash_duration_ms"`
	DashCooldownMs int     `yaml:"dash_cooldown_ms"`
	TrailLength    int     `yaml:"trail_length"`
}

// WorldConfig defines scrolling and lives.
type WorldConfig struct {
	InitialSpeed float64 `yaml:"initial_speed"`
	Acceleration float64 `yaml:"acceleration"` // Added to scroll speed each tick
	MaxSpeed     float64 `yaml:"max_speed"`
	StartWishes  int     `yaml:"start_wishes"`
	MaxWishes    int     `yaml:"max_wishes"`
	Stars        int     `yaml:"stars"`
}

// PlatformsConfig defines the procedural platform stream.
type PlatformsConfig struct {
	Count       int     `yaml:"count"` // Minimum live platforms
	MinWidth    float64 `yaml:"min_width"`
	MaxWidth    float64 `yaml:"max_width"`
	MinGap      float64 `yaml:"min_gap"`
	MaxGap      float64 `yaml:"max_gap"`
	Height      float64 `yaml:"height"`
	BaseOffset  float64 `yaml:"base_offset"`  // Distance of the lowest platform above the bottom edge
	HeightRange float64 `yaml:"height_range"` // Random extra lift above the base
	PruneX      float64 `yaml:"prune_x"`      // Entities left of this are discarded
}

// SpawningConfig defines obstacle and power-up generation.
type SpawningConfig struct {
	ObstacleChance     float64 `yaml:"obstacle_chance"`
	MaxObstacles       int     `yaml:"max_obstacles"`
	ObstacleSize       float64 `yaml:"obstacle_size"`
	ObstacleLift       float64 `yaml:"obstacle_lift"`
	PowerUpChance      float64 `yaml:"powerup_chance"`
	MaxPowerUps        int     `yaml:"max_powerups"`
	PowerUpSize        float64 `yaml:"powerup_size"`
	PowerUpLift        float64 `yaml:"powerup_lift"`
	CandidatePlatforms int     `yaml:"candidate_platforms"`
}

// PowerUpsConfig defines scoring and timed power-up effects.
type PowerUpsConfig struct {
	DurationMs    int `yaml:"duration_ms"`
	Multiplier    int `yaml:"multiplier"`
	LifeBonus     int `yaml:"life_bonus"`     // Points for a life power-up at max wishes
	DestroyPoints int `yaml:"destroy_points"` // Points per dashed obstacle, before multiplier
}

// EffectsConfig defines hit feedback timers.
type EffectsConfig struct {
	HitFlashMs     int     `yaml:"hit_flash_ms"`
	ShakeIntensity float64 `yaml:"shake_intensity"`
	ShakeMs        int     `yaml:"shake_ms"`
	FlashAlpha     float64 `yaml:"flash_alpha"`
	FlashMs        int     `yaml:"flash_ms"`
}

// AudioConfig defines sound levels.
type AudioConfig struct {
	SFXVolume   float64 `yaml:"sfx_volume"`
	MusicVolume float64 `yaml:"music_volume"`
	Muted       bool    `yaml:"muted"`
}

// DashDuration returns the dash length as a duration.
func (p PlayerConfig) DashDuration() time.Duration {
	return time.Duration(p.DashDurationMs) * time.Millisecond
}

// DashCooldown returns the minimum time between dashes.
func (p PlayerConfig) DashCooldown() time.Duration {
	return time.Duration(p.DashCooldownMs) * time.Millisecond
}

// Duration returns how long a timed power-up lasts.
func (p PowerUpsConfig) Duration() time.Duration {
	return time.Duration(p.DurationMs) * time.Millisecond
}

// HitFlash returns how long the hit flash stays on.
func (e EffectsConfig) HitFlash() time.Duration {
	return time.Duration(e.HitFlashMs) * time.Millisecond
}

// Shake returns the screen shake duration.
func (e EffectsConfig) Shake() time.Duration {
	return time.Duration(e.ShakeMs) * time.Millisecond
}

// Flash returns the red flash duration.
func (e EffectsConfig) Flash() time.Duration {
	return time.Duration(e.FlashMs) * time.Millisecond
}
