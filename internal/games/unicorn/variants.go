package unicorn

import (
	"math"

	"github.com/vovakirdan/unicorn-run/internal/core"
)

// ObstacleKind is the movement variant of a star obstacle.
type ObstacleKind int

const (
	ObstacleStatic   ObstacleKind = iota // Sits still above its platform
	ObstacleFloating                     // Slow sine bob
	ObstacleMoving                       // Fast, wide sine bob
	obstacleKindCount
)

type obstacleBehavior struct {
	name      string
	amplitude float64 // Bob height in pixels
	frequency float64 // Phase multiplier
	color     core.Color
	glyph     rune
}

var obstacleBehaviors = [obstacleKindCount]obstacleBehavior{
	ObstacleStatic:   {name: "star", amplitude: 0, frequency: 0, color: core.ColorMagenta, glyph: '✦'},
	ObstacleFloating: {name: "floating", amplitude: 30, frequency: 1, color: core.ColorCyan, glyph: '✧'},
	ObstacleMoving:   {name: "moving", amplitude: 50, frequency: 2, color: core.ColorOrange, glyph: '✶'},
}

// ObstacleKindFor picks a variant from a uniform sample in [0, 1).
// 70% static, 15% floating, 15% moving.
func ObstacleKindFor(r float64) ObstacleKind {
	switch {
	case r < 0.7:
		return ObstacleStatic
	case r < 0.85:
		return ObstacleFloating
	default:
		return ObstacleMoving
	}
}

func (k ObstacleKind) behavior() obstacleBehavior {
	if k < 0 || k >= obstacleKindCount {
		return obstacleBehaviors[ObstacleStatic]
	}
	return obstacleBehaviors[k]
}

// String returns the variant name.
func (k ObstacleKind) String() string { return k.behavior().name }

// Glyph returns the terminal character for this variant.
func (k ObstacleKind) Glyph() rune { return k.behavior().glyph }

// Color returns the display color for this variant.
func (k ObstacleKind) Color() core.Color { return k.behavior().color }

// Offset returns the vertical displacement from the spawn height at a phase.
func (k ObstacleKind) Offset(phase float64) float64 {
	b := k.behavior()
	if b.amplitude == 0 {
		return 0
	}
	return math.Sin(phase*b.frequency) * b.amplitude
}

// PowerUpKind is the effect granted by a collected power-up.
type PowerUpKind int

const (
	PowerUpInvincibility PowerUpKind = iota
	PowerUpMultiplier
	PowerUpLife
	powerUpKindCount
)

type powerUpBehavior struct {
	name  string
	color core.Color
	glyph rune
	apply func(s *Session)
}

var powerUpBehaviors = [powerUpKindCount]powerUpBehavior{
	PowerUpInvincibility: {
		name:  "invincibility",
		color: core.ColorGold,
		glyph: '★',
		apply: func(s *Session) { s.score.GrantInvincibility(s.now, s.cfg.PowerUps.Duration()) },
	},
	PowerUpMultiplier: {
		name:  "multiplier",
		color: core.ColorPurple,
		glyph: '◆',
		apply: func(s *Session) {
			s.score.GrantMultiplier(s.cfg.PowerUps.Multiplier, s.now, s.cfg.PowerUps.Duration())
		},
	},
	PowerUpLife: {
		name:  "life",
		color: core.ColorPink,
		glyph: '♥',
		apply: func(s *Session) { s.score.GrantWish(s.cfg.World.MaxWishes, s.cfg.PowerUps.LifeBonus) },
	},
}

// PowerUpKindFor picks a variant from a uniform sample in [0, 1).
// 40% invincibility, 30% multiplier, 30% life.
func PowerUpKindFor(r float64) PowerUpKind {
	switch {
	case r < 0.4:
		return PowerUpInvincibility
	case r < 0.7:
		return PowerUpMultiplier
	default:
		return PowerUpLife
	}
}

func (k PowerUpKind) behavior() powerUpBehavior {
	if k < 0 || k >= powerUpKindCount {
		return powerUpBehaviors[PowerUpLife]
	}
	return powerUpBehaviors[k]
}

// String returns the variant name.
func (k PowerUpKind) String() string { return k.behavior().name }

// Glyph returns the terminal character for this variant.
func (k PowerUpKind) Glyph() rune { return k.behavior().glyph }

// Color returns the display color for this variant.
func (k PowerUpKind) Color() core.Color { return k.behavior().color }
