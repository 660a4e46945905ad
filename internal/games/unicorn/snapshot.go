package unicorn

import "math"

// Snapshot is a flat copy of the gameplay state used to compare runs.
// Cosmetic state (trail, sparks, stars, effects) is left out.
type Snapshot struct {
	Tick       uint64
	Phase      string
	Score      int
	Wishes     int
	Multiplier int
	Invincible bool
	Speed      float64

	PlayerX, PlayerY   float64
	PlayerVX, PlayerVY float64
	Jumps              int
	Dashing            bool

	// Each platform is 4 floats: X, Y, W, H
	PlatformData []float64
	// Each obstacle is 4 floats: Kind, X, Y, Destroyed
	ObstacleData []float64
	// Each power-up is 4 floats: Kind, X, Y, Collected
	PowerUpData []float64
}

// Snapshot returns the current gameplay state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.tick,
		Phase:      string(s.phase),
		Score:      s.score.Score,
		Wishes:     s.score.Wishes,
		Multiplier: s.score.Multiplier,
		Invincible: s.score.Invincible,
		Speed:      s.score.Speed,
		PlayerX:    s.player.X,
		PlayerY:    s.player.Y,
		PlayerVX:   s.player.VX,
		PlayerVY:   s.player.VY,
		Jumps:      s.player.Jumps,
		Dashing:    s.player.Dashing,
	}

	snap.PlatformData = make([]float64, 0, len(s.platforms)*4)
	for _, p := range s.platforms {
		snap.PlatformData = append(snap.PlatformData, p.X, p.Y, p.W, p.H)
	}
	snap.ObstacleData = make([]float64, 0, len(s.obstacles)*4)
	for _, o := range s.obstacles {
		snap.ObstacleData = append(snap.ObstacleData, float64(o.Kind), o.X, o.Y, boolF(o.Destroyed))
	}
	snap.PowerUpData = make([]float64, 0, len(s.powerups)*4)
	for _, p := range s.powerups {
		snap.PowerUpData = append(snap.PowerUpData, float64(p.Kind), p.X, p.Y, boolF(p.Collected))
	}
	return snap
}

func boolF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.Phase {
		h = h*31 + uint64(r)
	}
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wishes)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Multiplier) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Jumps)      //#nosec G115 -- hash computation
	h = h*31 + uint64(boolF(snap.Invincible))
	h = h*31 + uint64(boolF(snap.Dashing))

	for _, v := range []float64{snap.Speed, snap.PlayerX, snap.PlayerY, snap.PlayerVX, snap.PlayerVY} {
		h = h*31 + math.Float64bits(v)
	}
	for _, data := range [][]float64{snap.PlatformData, snap.ObstacleData, snap.PowerUpData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + math.Float64bits(v)
		}
	}
	return h
}
