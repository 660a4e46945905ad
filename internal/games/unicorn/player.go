package unicorn

import (
	"math"
	"time"

	"github.com/vovakirdan/unicorn-run/internal/config"
	"github.com/vovakirdan/unicorn-run/internal/core"
)

// Outcome is the result of one physics tick for the player.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeFell         // Dropped below the playfield
	OutcomeHit          // Touched an obstacle without protection
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeFell:
		return "fell"
	case OutcomeHit:
		return "hit"
	default:
		return "none"
	}
}

const (
	maxTilt      = 0.3
	tiltStep     = 0.05
	tiltDecay    = 0.9
	hitboxFactor = 0.8 // Obstacle circles are forgiving
)

// Player is the unicorn.
type Player struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	Grounded bool
	Jumps    int // Remaining jump charges
	Dashing  bool
	Rotation float64 // Visual tilt in radians

	dashStart time.Duration
	lastDash  time.Duration
	dashed    bool // Whether any dash happened this life; the first is never on cooldown
	hovering  bool // Held in place without gravity until a platform slides under

	Trail     []TrailPoint
	Particles []Particle
	trailHue  float64
}

// NewPlayer places a fresh unicorn at its start position.
func NewPlayer(cfg config.PlayerConfig) Player {
	return Player{
		X:     cfg.RestX,
		Y:     cfg.StartY,
		W:     cfg.Width,
		H:     cfg.Height,
		Jumps: cfg.MaxJumps,
	}
}

// Bounds returns the player's box.
func (p *Player) Bounds() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Center returns the player's center point.
func (p *Player) Center() (float64, float64) {
	return p.X + p.W/2, p.Y + p.H/2
}

// Jump spends a charge for an upward kick. Returns false with no charges left.
func (p *Player) Jump(cfg config.PlayerConfig) bool {
	if p.Jumps <= 0 {
		return false
	}
	p.VY = -cfg.JumpForce
	p.Jumps--
	p.Grounded = false
	p.hovering = false
	return true
}

// Dash starts a forward burst unless one is running or on cooldown.
func (p *Player) Dash(cfg config.PlayerConfig, now time.Duration) bool {
	if p.Dashing {
		return false
	}
	if p.dashed && now-p.lastDash <= cfg.DashCooldown() {
		return false
	}
	p.Dashing = true
	p.dashed = true
	p.dashStart = now
	p.lastDash = now
	p.VX = cfg.DashSpeed
	return true
}

// integrate runs the dash timer, gravity, movement, clamping and tilt.
func (p *Player) integrate(cfg config.PlayerConfig, now time.Duration) {
	if p.Dashing && now-p.dashStart > cfg.DashDuration() {
		p.Dashing = false
		p.VX = 0
	}

	airborne := !p.Grounded && !p.hovering
	if airborne {
		p.VY += cfg.Gravity
	}

	p.Y += p.VY
	p.X += p.VX

	if p.X > cfg.RestX {
		p.X = cfg.RestX
		p.VX = 0
	}
	if p.X < cfg.MinX {
		p.X = cfg.MinX
	}

	switch {
	case airborne && p.VY < 0:
		p.Rotation = math.Min(p.Rotation+tiltStep, maxTilt)
	case airborne:
		p.Rotation = math.Max(p.Rotation-tiltStep, -maxTilt)
	default:
		p.Rotation *= tiltDecay
	}
}

// land snaps the player onto the first platform whose top band its feet
// are in while descending. Platforms are tested in list order.
func (p *Player) land(platforms []Platform, maxJumps int) {
	p.Grounded = false
	for _, plat := range platforms {
		if p.standsOn(plat) {
			p.Y = plat.Y - p.H
			p.VY = 0
			p.Grounded = true
			p.hovering = false
			p.Jumps = maxJumps
			return
		}
	}
}

func (p *Player) standsOn(plat Platform) bool {
	bottom := p.Y + p.H
	return p.X+p.W > plat.X &&
		p.X < plat.Right() &&
		bottom >= plat.Y &&
		bottom <= plat.Y+plat.H &&
		p.VY >= 0
}

// touches reports whether the player's circle overlaps a live obstacle.
func (p *Player) touches(o Obstacle) bool {
	if o.Destroyed {
		return false
	}
	px, py := p.Center()
	ox, oy := o.Center()
	return core.Dist(px, py, ox, oy) < (p.W/2+o.Size/2)*hitboxFactor
}

// reaches reports whether the player can pick up a power-up.
func (p *Player) reaches(pu PowerUp) bool {
	if pu.Collected {
		return false
	}
	px, py := p.Center()
	ux, uy := pu.Center()
	return core.Dist(px, py, ux, uy) < p.W/2+pu.Size/2
}

// respawn drops the player back in from above after losing a wish.
// The next dash skips the cooldown, as at the start of a game.
func (p *Player) respawn(cfg config.PlayerConfig) {
	p.Y = cfg.RespawnY
	p.Grounded = false
	p.hovering = false
	p.VX = 0
	p.VY = 0
	p.Dashing = false
	p.dashed = false
}

// settleOn places the player standing on a platform.
func (p *Player) settleOn(plat Platform, maxJumps int) {
	p.Y = plat.Y - p.H
	p.VY = 0
	p.Grounded = true
	p.hovering = false
	p.Jumps = maxJumps
}

// hoverAt holds the player level with a platform top that has not reached
// it yet. Jumping or landing ends the hover.
func (p *Player) hoverAt(plat Platform, maxJumps int) {
	p.Y = plat.Y - p.H
	p.VY = 0
	p.Grounded = false
	p.hovering = true
	p.Jumps = maxJumps
}

// freeze stops all motion; used when the round ends.
func (p *Player) freeze() {
	p.Dashing = false
	p.VX = 0
	p.VY = 0
}
