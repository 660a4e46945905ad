package unicorn

import (
	"math"
	"math/rand"
)

// Cosmetic decay rates per tick.
const (
	trailFade     = 0.03
	particleFade  = 0.02
	trailHueStep  = 6
	burstSize     = 20
	burstHueBase  = 50
	burstHueRange = 60
)

// TrailPoint is one sample of the rainbow ribbon behind the unicorn.
type TrailPoint struct {
	X, Y float64
	Life float64 // 1 when laid down, removed at 0
	Hue  float64
}

// Particle is a spark from a destroyed obstacle.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   float64
	Hue    float64
}

// layTrail appends one ribbon sample anchored near the unicorn's tail.
func (p *Player) layTrail(maxLen int) {
	p.trailHue = math.Mod(p.trailHue+trailHueStep, 360)
	p.Trail = append(p.Trail, TrailPoint{
		X:    p.X + p.W*0.15,
		Y:    p.Y + p.H*0.55,
		Life: 1,
		Hue:  p.trailHue,
	})
	if over := len(p.Trail) - maxLen; over > 0 {
		p.Trail = append(p.Trail[:0], p.Trail[over:]...)
	}
}

// ageCosmetics drifts the trail with the world and fades both trail and sparks.
func (p *Player) ageCosmetics(scroll float64) {
	trail := p.Trail[:0]
	for _, t := range p.Trail {
		t.X -= scroll
		t.Life -= trailFade
		if t.Life > 0 {
			trail = append(trail, t)
		}
	}
	p.Trail = trail

	sparks := p.Particles[:0]
	for _, s := range p.Particles {
		s.X += s.VX
		s.Y += s.VY
		s.Life -= particleFade
		if s.Life > 0 {
			sparks = append(sparks, s)
		}
	}
	p.Particles = sparks
}

// explode emits a ring of sparks at (x, y). Sparks inherit the world's
// leftward drift so the burst stays where the obstacle was.
func (p *Player) explode(x, y, scroll float64, rng *rand.Rand) {
	for i := 0; i < burstSize; i++ {
		angle := 2 * math.Pi * float64(i) / burstSize
		speed := rng.Float64()*5 + 3
		p.Particles = append(p.Particles, Particle{
			X:    x,
			Y:    y,
			VX:   math.Cos(angle)*speed - scroll,
			VY:   math.Sin(angle) * speed,
			Size: rng.Float64()*6 + 3,
			Life: 1,
			Hue:  burstHueBase + rng.Float64()*burstHueRange,
		})
	}
}
