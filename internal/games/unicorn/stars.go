package unicorn

import "math/rand"

// Star is a background twinkle. Stars drift at their own speed, independent
// of the world scroll, and keep moving in every phase.
type Star struct {
	X, Y    float64
	Size    float64
	Speed   float64
	Opacity float64
}

// StarField is the parallax background.
type StarField struct {
	Stars  []Star
	width  float64
	height float64
	rng    *rand.Rand
}

// NewStarField scatters n stars over a width x height area.
func NewStarField(n int, width, height float64, rng *rand.Rand) *StarField {
	f := &StarField{
		Stars:  make([]Star, n),
		width:  width,
		height: height,
		rng:    rng,
	}
	for i := range f.Stars {
		f.Stars[i] = Star{
			X:       rng.Float64() * width,
			Y:       rng.Float64() * height,
			Size:    rng.Float64()*2 + 1,
			Speed:   rng.Float64()*2 + 1,
			Opacity: rng.Float64(),
		}
	}
	return f
}

// Update moves stars left, wrapping them to the right edge at a new height.
func (f *StarField) Update() {
	for i := range f.Stars {
		s := &f.Stars[i]
		s.X -= s.Speed
		if s.X < 0 {
			s.X = f.width
			s.Y = f.rng.Float64() * f.height
		}
	}
}
