package unicorn

import (
	"math"

	"github.com/vovakirdan/unicorn-run/internal/core"
)

// Per-tick spin and phase advance of collectibles.
const (
	obstacleSpin = 0.05
	powerUpSpin  = 0.1
)

// Platform is a floating bar the unicorn can land on.
type Platform struct {
	X, Y float64
	W, H float64
}

// Bounds returns the platform's box.
func (p Platform) Bounds() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Right returns the x-coordinate of the right edge.
func (p Platform) Right() float64 {
	return p.X + p.W
}

// Obstacle is a star that costs a wish unless dashed through.
type Obstacle struct {
	X, Y      float64 // Top-left corner
	BaseY     float64 // Spawn height the bob oscillates around
	Size      float64
	Kind      ObstacleKind
	Phase     float64
	Rotation  float64
	Destroyed bool
}

// Center returns the obstacle's center point.
func (o Obstacle) Center() (float64, float64) {
	return o.X + o.Size/2, o.Y + o.Size/2
}

func (o *Obstacle) update(speed float64) {
	o.X -= speed
	o.Rotation += obstacleSpin
	o.Phase += obstacleSpin
	o.Y = o.BaseY + o.Kind.Offset(o.Phase)
}

// PowerUp is a collectible granting a timed or instant bonus.
type PowerUp struct {
	X, Y      float64 // Top-left corner
	Size      float64
	Kind      PowerUpKind
	Rotation  float64
	Pulse     float64
	Collected bool
}

// Center returns the power-up's center point.
func (p PowerUp) Center() (float64, float64) {
	return p.X + p.Size/2, p.Y + p.Size/2
}

// PulseScale returns the pulsing size offset in pixels.
func (p PowerUp) PulseScale() float64 {
	return math.Sin(p.Pulse) * 5
}

func (p *PowerUp) update(speed float64) {
	p.X -= speed
	p.Rotation += powerUpSpin
	p.Pulse += powerUpSpin
}
