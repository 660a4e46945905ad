package unicorn

import (
	"math"
	"time"

	"github.com/vovakirdan/unicorn-run/internal/config"
)

// ScoreState tracks score, wishes, speed and the timed power-up effects.
// Timed effects carry an expiry on the session clock rather than a timer,
// so starting a new game can never be undone by a leftover expiry.
type ScoreState struct {
	Score      int
	Wishes     int
	Multiplier int
	Invincible bool
	Speed      float64

	multiplierUntil time.Duration
	invincibleUntil time.Duration
}

// NewScoreState returns the values a new game starts with.
func NewScoreState(world config.WorldConfig) ScoreState {
	return ScoreState{
		Wishes:     world.StartWishes,
		Multiplier: 1,
		Speed:      world.InitialSpeed,
	}
}

// Expire drops timed effects whose window has closed.
func (s *ScoreState) Expire(now time.Duration) {
	if s.Multiplier != 1 && now >= s.multiplierUntil {
		s.Multiplier = 1
		s.multiplierUntil = 0
	}
	if s.Invincible && now >= s.invincibleUntil {
		s.Invincible = false
		s.invincibleUntil = 0
	}
}

// Tick awards the per-tick distance point and accelerates the world.
func (s *ScoreState) Tick(world config.WorldConfig) {
	s.Score += s.Multiplier
	if s.Speed < world.MaxSpeed {
		s.Speed = math.Min(s.Speed+world.Acceleration, world.MaxSpeed)
	}
}

// AddDestroy awards points for a dashed obstacle.
func (s *ScoreState) AddDestroy(points int) {
	s.Score += points * s.Multiplier
}

// GrantInvincibility starts or extends invincibility.
func (s *ScoreState) GrantInvincibility(now, d time.Duration) {
	s.Invincible = true
	s.invincibleUntil = now + d
}

// GrantMultiplier sets the multiplier until now+d. A second pickup restarts the window.
func (s *ScoreState) GrantMultiplier(value int, now, d time.Duration) {
	s.Multiplier = value
	s.multiplierUntil = now + d
}

// GrantWish adds a wish below max, otherwise awards bonus points.
func (s *ScoreState) GrantWish(max, bonus int) {
	if s.Wishes < max {
		s.Wishes++
		return
	}
	s.Score += bonus
}

// LoseWish takes one wish and reports whether none remain.
func (s *ScoreState) LoseWish() bool {
	if s.Wishes > 0 {
		s.Wishes--
	}
	return s.Wishes <= 0
}

// ClearEffects ends multiplier and invincibility immediately.
func (s *ScoreState) ClearEffects() {
	s.Multiplier = 1
	s.multiplierUntil = 0
	s.Invincible = false
	s.invincibleUntil = 0
}

// InvincibleLeft returns remaining invincibility at now.
func (s *ScoreState) InvincibleLeft(now time.Duration) time.Duration {
	if !s.Invincible || now >= s.invincibleUntil {
		return 0
	}
	return s.invincibleUntil - now
}

// MultiplierLeft returns remaining multiplier time at now.
func (s *ScoreState) MultiplierLeft(now time.Duration) time.Duration {
	if s.Multiplier == 1 || now >= s.multiplierUntil {
		return 0
	}
	return s.multiplierUntil - now
}
