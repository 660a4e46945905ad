package unicorn

import (
	"math/rand"

	"github.com/vovakirdan/unicorn-run/internal/config"
)

// Spawner generates platforms, obstacles and power-ups from one seeded source.
type Spawner struct {
	rng       *rand.Rand
	playfield config.PlayfieldConfig
	platforms config.PlatformsConfig
	spawning  config.SpawningConfig
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg config.UnicornConfig) *Spawner {
	s := &Spawner{rng: rng}
	s.Configure(cfg)
	return s
}

// Configure swaps in new tuning without touching the random stream.
func (s *Spawner) Configure(cfg config.UnicornConfig) {
	s.playfield = cfg.Playfield
	s.platforms = cfg.Platforms
	s.spawning = cfg.Spawning
}

// uniform draws from [lo, hi).
func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Spawner) newPlatform(x, width float64) Platform {
	return Platform{
		X: x,
		Y: s.playfield.Height - s.platforms.BaseOffset - s.rng.Float64()*s.platforms.HeightRange,
		W: width,
		H: s.platforms.Height,
	}
}

// InitialPlatforms lays out the opening stretch starting at x=0.
func (s *Spawner) InitialPlatforms() []Platform {
	out := make([]Platform, 0, s.platforms.Count+1)
	x := 0.0
	for i := 0; i < s.platforms.Count; i++ {
		width := s.uniform(s.platforms.MinWidth, s.platforms.MaxWidth)
		out = append(out, s.newPlatform(x, width))
		x += width + s.uniform(s.platforms.MinGap, s.platforms.MaxGap)
	}
	return out
}

// ScrollPlatforms moves platforms left, drops those past the prune line
// and appends new ones until the stream is back at its minimum length.
func (s *Spawner) ScrollPlatforms(platforms []Platform, speed float64) []Platform {
	kept := platforms[:0]
	for _, p := range platforms {
		p.X -= speed
		if p.Right() > s.platforms.PruneX {
			kept = append(kept, p)
		}
	}
	return s.Refill(kept)
}

// Refill appends platforms after the last one until Count are live.
func (s *Spawner) Refill(platforms []Platform) []Platform {
	for len(platforms) < s.platforms.Count {
		gap := s.uniform(s.platforms.MinGap, s.platforms.MaxGap)
		width := s.uniform(s.platforms.MinWidth, s.platforms.MaxWidth)
		x := s.playfield.Width
		if n := len(platforms); n > 0 {
			x = platforms[n-1].Right() + gap
		}
		platforms = append(platforms, s.newPlatform(x, width))
	}
	return platforms
}

// pickPlatform chooses one of the nearest candidate platforms.
func (s *Spawner) pickPlatform(platforms []Platform) (Platform, bool) {
	n := min(s.spawning.CandidatePlatforms, len(platforms))
	if n <= 0 {
		return Platform{}, false
	}
	return platforms[s.rng.Intn(n)], true
}

// MaybeObstacle rolls for a new obstacle above one of the nearest platforms.
func (s *Spawner) MaybeObstacle(platforms []Platform, live int) (Obstacle, bool) {
	if s.rng.Float64() >= s.spawning.ObstacleChance || live >= s.spawning.MaxObstacles {
		return Obstacle{}, false
	}
	plat, ok := s.pickPlatform(platforms)
	if !ok {
		return Obstacle{}, false
	}
	y := plat.Y - s.spawning.ObstacleLift
	return Obstacle{
		X:     plat.X + plat.W/2,
		Y:     y,
		BaseY: y,
		Size:  s.spawning.ObstacleSize,
		Kind:  ObstacleKindFor(s.rng.Float64()),
	}, true
}

// MaybePowerUp rolls for a new power-up above one of the nearest platforms.
func (s *Spawner) MaybePowerUp(platforms []Platform, live int) (PowerUp, bool) {
	if s.rng.Float64() >= s.spawning.PowerUpChance || live >= s.spawning.MaxPowerUps {
		return PowerUp{}, false
	}
	plat, ok := s.pickPlatform(platforms)
	if !ok {
		return PowerUp{}, false
	}
	return PowerUp{
		X:    plat.X + plat.W/2,
		Y:    plat.Y - s.spawning.PowerUpLift,
		Size: s.spawning.PowerUpSize,
		Kind: PowerUpKindFor(s.rng.Float64()),
	}, true
}
