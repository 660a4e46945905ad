package gfx

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/unicorn-run/internal/core"
	"github.com/vovakirdan/unicorn-run/internal/games/unicorn"
)

const (
	starPoints = 5
	hudScale   = 2
)

// painter draws one session frame. Positions in the world layer are
// shifted by the current screen shake.
type painter struct {
	dst    *ebiten.Image
	face   text.Face
	sprite *ebiten.Image
	dx, dy float32
}

func (p painter) fillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(p.dst, float32(x)+p.dx, float32(y)+p.dy, float32(w), float32(h), c, false)
}

func (p painter) fillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(p.dst, float32(x)+p.dx, float32(y)+p.dy, float32(r), c, true)
}

func (p painter) strokeCircle(x, y, r, width float64, c color.Color) {
	vector.StrokeCircle(p.dst, float32(x)+p.dx, float32(y)+p.dy, float32(r), float32(width), c, true)
}

func (p painter) line(x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(p.dst,
		float32(x0)+p.dx, float32(y0)+p.dy,
		float32(x1)+p.dx, float32(y1)+p.dy,
		float32(width), c, true)
}

// text draws s scaled by scale with its anchor at (x, y). Text is not shaken.
func (p painter) text(s string, x, y, scale float64, c color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(p.dst, s, p.face, op)
}

func drawStars(p painter, s *unicorn.Session) {
	for _, st := range s.Stars() {
		vector.DrawFilledCircle(p.dst, float32(st.X), float32(st.Y), float32(st.Size),
			fade(color.RGBA{0xff, 0xff, 0xff, 0xff}, st.Opacity), true)
	}
}

func drawPlatforms(p painter, s *unicorn.Session) {
	for _, pl := range s.Platforms() {
		p.fillRect(pl.X, pl.Y, pl.W, pl.H, platformFill)
		p.fillRect(pl.X, pl.Y, pl.W, 4, platformTop)
	}
}

// drawObstacles draws each live obstacle as a spinning five-point star.
func drawObstacles(p painter, s *unicorn.Session) {
	for _, o := range s.Obstacles() {
		if o.Destroyed {
			continue
		}
		cx, cy := o.Center()
		c := rgb(o.Kind.Color())
		r := o.Size / 2
		for i := range starPoints {
			a := o.Rotation + float64(i)*2*math.Pi/starPoints - math.Pi/2
			p.line(cx, cy, cx+math.Cos(a)*r, cy+math.Sin(a)*r, 5, c)
		}
		p.fillCircle(cx, cy, r/3, c)
	}
}

var powerUpLabels = map[unicorn.PowerUpKind]string{
	unicorn.PowerUpInvincibility: "S",
	unicorn.PowerUpMultiplier:    "x2",
	unicorn.PowerUpLife:          "+",
}

func drawPowerUps(p painter, s *unicorn.Session) {
	for _, pu := range s.PowerUps() {
		if pu.Collected {
			continue
		}
		cx, cy := pu.Center()
		r := pu.Size / 2 * pu.PulseScale()
		c := rgb(pu.Kind.Color())
		p.fillCircle(cx, cy, r+4, fade(c, 0.3))
		p.fillCircle(cx, cy, r, c)
		p.text(powerUpLabels[pu.Kind], cx+float64(p.dx), cy+float64(p.dy)-7, 1, skyTop, text.AlignCenter)
	}
}

func drawTrail(p painter, s *unicorn.Session) {
	pl := s.Player()
	for _, t := range pl.Trail {
		p.fillCircle(t.X, t.Y, 8*t.Life, hue(t.Hue, t.Life*0.8))
	}
}

func drawParticles(p painter, s *unicorn.Session) {
	pl := s.Player()
	for _, pt := range pl.Particles {
		half := pt.Size / 2
		p.fillRect(pt.X-half, pt.Y-half, pt.Size, pt.Size, hue(pt.Hue, pt.Life))
	}
}

// buildSprite paints the unicorn for a skin into a player-sized image.
func buildSprite(skin unicorn.Skin, w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)

	// Legs, body, head
	for _, lx := range []float32{0.2, 0.35, 0.55, 0.7} {
		vector.DrawFilledRect(img, fw*lx, fh*0.7, fw*0.08, fh*0.3, skin.BodyRGB, false)
	}
	vector.DrawFilledRect(img, fw*0.12, fh*0.38, fw*0.68, fh*0.36, skin.BodyRGB, false)
	vector.DrawFilledRect(img, fw*0.66, fh*0.16, fw*0.3, fh*0.3, skin.BodyRGB, false)

	// Horn
	vector.StrokeLine(img, fw*0.86, fh*0.18, fw*0.98, 0, fh*0.06, skin.HornRGB, true)

	// Mane and tail
	for i, my := range []float32{0.16, 0.28, 0.4} {
		vector.DrawFilledCircle(img, fw*(0.66-float32(i)*0.05), fh*my, fh*0.08, skin.ManeRGB, true)
	}
	vector.DrawFilledCircle(img, fw*0.1, fh*0.45, fh*0.1, skin.ManeRGB, true)

	// Eye
	vector.DrawFilledCircle(img, fw*0.86, fh*0.28, fh*0.035, color.Black, true)
	return img
}

func drawUnicorn(p painter, s *unicorn.Session) {
	pl := s.Player()
	if s.Effects().HitFlashActive(s.FrameClock()) && (s.Tick()/4)%2 == 0 {
		return
	}
	cx, cy := pl.X+pl.W/2, pl.Y+pl.H/2

	if pl.Dashing {
		p.fillCircle(cx, cy, pl.W*0.7, color.NRGBA{0xff, 0xff, 0xff, 0x50})
	}
	if s.Score().Invincible {
		p.strokeCircle(cx, cy, pl.W*0.75, 4, gold)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-pl.W/2, -pl.H/2)
	op.GeoM.Rotate(-pl.Rotation)
	op.GeoM.Translate(cx+float64(p.dx), cy+float64(p.dy))
	p.dst.DrawImage(p.sprite, op)
}

func drawFlash(p painter, s *unicorn.Session) {
	a := s.Effects().FlashAlpha()
	if a <= 0 {
		return
	}
	b := p.dst.Bounds()
	vector.DrawFilledRect(p.dst, 0, 0, float32(b.Dx()), float32(b.Dy()),
		color.NRGBA{0xff, 0x00, 0x00, uint8(core.ClampF(a, 0, 1) * 255)}, false)
}

func drawHUD(p painter, s *unicorn.Session) {
	st := s.State()
	p.text(fmt.Sprintf("Score: %d", st.Score), 16, 12, hudScale, hudText, text.AlignStart)
	p.text(fmt.Sprintf("Best: %d", st.HighScore), 16, 42, 1.5, hudDim, text.AlignStart)

	maxWishes := s.Config().World.MaxWishes
	width := float64(p.dst.Bounds().Dx())
	for i := range maxWishes {
		c := heartEmpty
		if i < st.Wishes {
			c = heartFull
		}
		x := width - 30 - float64(maxWishes-1-i)*30
		vector.DrawFilledCircle(p.dst, float32(x), 26, 10, c, true)
	}

	badgeY := 60.0
	if st.Multiplier > 1 {
		p.text(fmt.Sprintf("x%d", st.Multiplier), width-16, badgeY, hudScale, rgb(core.ColorPurple), text.AlignEnd)
		badgeY += 30
	}
	if st.Invincible {
		p.text("INVINCIBLE", width-16, badgeY, 1.5, gold, text.AlignEnd)
	}
}

// drawOverlay shades the screen and prints the phase message.
func drawOverlay(p painter, s *unicorn.Session) {
	st := s.State()
	var lines []string
	title := ""
	switch st.Phase {
	case core.PhaseMenu:
		title = "UNICORN RUN"
		lines = []string{"Press Enter or Space to start", "Space jump  Z dash  P pause  M mute  Q quit"}
	case core.PhasePaused:
		title = "PAUSED"
		lines = []string{"Space or P to resume", "B for menu"}
	case core.PhaseGameOver:
		title = "GAME OVER"
		lines = []string{fmt.Sprintf("Score: %d", st.Score)}
		if st.NewHighScore {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "R to restart  B for menu")
	default:
		return
	}

	b := p.dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	vector.DrawFilledRect(p.dst, 0, 0, float32(w), float32(h), overlayShade, false)

	y := h/2 - 60
	p.text(title, w/2, y, 4, hudText, text.AlignCenter)
	y += 70
	for _, line := range lines {
		c := hudDim
		if line == "NEW HIGH SCORE!" {
			c = gold
		}
		p.text(line, w/2, y, hudScale, c, text.AlignCenter)
		y += 34
	}
}
