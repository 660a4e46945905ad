package unicorn

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/unicorn-run/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '▀'
	PlatformStud = '✩'
	TrailChar    = '═'
	SparkChar    = '*'
	AuraChar     = '░'
	StarDim      = '·'
	StarBright   = '+'
	HeartFull    = '♥'
	HeartEmpty   = '♡'
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// viewport maps playfield pixels to screen cells.
type viewport struct {
	sx, sy float64
	ox, oy float64 // Shake offset in pixels
	top    int
}

func newViewport(s *Session, dst *core.Screen) viewport {
	pf := s.Config().Playfield
	rows := max(dst.Height()-hudRows, 1)
	return viewport{
		sx:  float64(dst.Width()) / pf.Width,
		sy:  float64(rows) / pf.Height,
		top: hudRows,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor((x + v.ox) * v.sx)), v.top + int(math.Floor((y+v.oy)*v.sy))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	RenderSession(g.session, g.skin, dst)
}

// RenderSession draws a session onto a terminal screen with the given skin.
func RenderSession(s *Session, skin Skin, dst *core.Screen) {
	v := newViewport(s, dst)

	drawStars(s, v, dst)

	if s.Phase() == core.PhasePlaying || s.Phase() == core.PhasePaused {
		v.ox, v.oy = s.Effects().ShakeOffset()
		drawPlatforms(s, v, dst)
		drawPowerUps(s, v, dst)
		drawObstacles(s, v, dst)
		drawTrail(s, v, dst)
		drawSparks(s, v, dst)
		drawUnicorn(s, skin, v, dst)
		drawFlashBorder(s, dst)
	}

	drawHUD(s, dst)

	switch s.Phase() {
	case core.PhaseMenu:
		drawCenteredMessage(dst, "U N I C O R N   R U N",
			"Space: jump (twice in air)  Z/X: dash through stars",
			"Press Enter to start")
	case core.PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "P or Space to resume  |  B for menu")
	case core.PhaseGameOver:
		lines := []string{fmt.Sprintf("Final score: %d", s.State().Score)}
		if s.State().NewHighScore {
			lines = append(lines, "★ NEW HIGH SCORE ★")
		}
		lines = append(lines, "R to restart  |  B for menu")
		drawCenteredMessage(dst, "GAME OVER", lines...)
	}
}

func drawStars(s *Session, v viewport, dst *core.Screen) {
	for _, st := range s.Stars() {
		x, y := v.cell(st.X, st.Y)
		if y < v.top {
			continue
		}
		if st.Opacity > 0.7 {
			dst.SetColored(x, y, StarBright, core.ColorWhite)
		} else if st.Opacity > 0.3 {
			dst.SetColored(x, y, StarDim, core.ColorGray)
		}
	}
}

func drawPlatforms(s *Session, v viewport, dst *core.Screen) {
	for _, p := range s.Platforms() {
		x0, y0 := v.cell(p.X, p.Y)
		x1, y1 := v.cell(p.Right(), p.Y+p.H)
		rows := max(y1-y0, 1)
		dst.DrawRectColored(core.NewRect(x0, y0, x1-x0, rows), PlatformChar, core.ColorMagenta)
		for sx := p.X + 25; sx < p.Right(); sx += 50 {
			cx, _ := v.cell(sx, p.Y)
			dst.SetColored(cx, y0-1, PlatformStud, core.ColorYellow)
		}
	}
}

func drawObstacles(s *Session, v viewport, dst *core.Screen) {
	for _, o := range s.Obstacles() {
		if o.Destroyed {
			continue
		}
		cx, cy := o.Center()
		x, y := v.cell(cx, cy)
		dst.SetColored(x, y, o.Kind.Glyph(), o.Kind.Color())
	}
}

func drawPowerUps(s *Session, v viewport, dst *core.Screen) {
	for _, p := range s.PowerUps() {
		if p.Collected {
			continue
		}
		cx, cy := p.Center()
		x, y := v.cell(cx, cy)
		dst.SetColored(x, y, p.Kind.Glyph(), p.Kind.Color())
		if p.Kind == PowerUpMultiplier {
			dst.DrawTextColored(x+1, y, "2x", core.ColorBrightWhite)
		}
	}
}

func drawTrail(s *Session, v viewport, dst *core.Screen) {
	for _, t := range s.player.Trail {
		if t.Life < 0.2 {
			continue
		}
		x, y := v.cell(t.X, t.Y)
		dst.SetColored(x, y, TrailChar, core.HueColor(t.Hue))
	}
}

func drawSparks(s *Session, v viewport, dst *core.Screen) {
	for _, p := range s.player.Particles {
		x, y := v.cell(p.X, p.Y)
		dst.SetColored(x, y, SparkChar, core.HueColor(p.Hue))
	}
}

// unicornSprite is drawn bottom-aligned in the player's box.
// h = horn, m = mane, b = body, l = legs.
var unicornSprite = []string{
	"   h",
	"mbbb",
	" l l",
}

func drawUnicorn(s *Session, skin Skin, v viewport, dst *core.Screen) {
	p := s.player
	if s.Effects().HitFlashActive(s.FrameClock()) && (s.Tick()/4)%2 == 0 {
		return
	}

	left, top := v.cell(p.X, p.Y)
	right, bottom := v.cell(p.X+p.W, p.Y+p.H)
	w := max(right-left, len(unicornSprite[0]))
	h := max(bottom-top, len(unicornSprite))

	if s.score.Invincible {
		aura := core.NewRect(left-1, top-1, w+2, h+2)
		for y := aura.Y; y < aura.Bottom(); y++ {
			for x := aura.X; x < aura.Right(); x++ {
				if dst.Get(x, y) == ' ' {
					dst.SetColored(x, y, AuraChar, core.ColorGold)
				}
			}
		}
	}

	body := skin.Body
	if p.Dashing {
		body = core.ColorBrightWhite
	}
	originY := top + h - len(unicornSprite)
	originX := left + (w-len(unicornSprite[0]))/2
	for dy, row := range unicornSprite {
		for dx, ch := range row {
			x, y := originX+dx, originY+dy
			switch ch {
			case 'h':
				dst.SetColored(x, y, '╱', skin.Horn)
			case 'm':
				dst.SetColored(x, y, '≋', skin.Mane)
			case 'b':
				dst.SetColored(x, y, '█', body)
			case 'l':
				leg := '╽'
				if !p.Grounded {
					leg = '╲'
				}
				dst.SetColored(x, y, leg, body)
			}
		}
	}
}

func drawFlashBorder(s *Session, dst *core.Screen) {
	if s.Effects().FlashAlpha() < 0.15 {
		return
	}
	w, h := dst.Width(), dst.Height()
	for x := 0; x < w; x++ {
		dst.SetColored(x, hudRows, '▄', core.ColorRed)
		dst.SetColored(x, h-1, '▀', core.ColorRed)
	}
	for y := hudRows; y < h; y++ {
		dst.SetColored(0, y, '▐', core.ColorRed)
		dst.SetColored(w-1, y, '▌', core.ColorRed)
	}
}

func drawHUD(s *Session, dst *core.Screen) {
	st := s.State()
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", st.Score), core.ColorBrightWhite)
	x := 16
	dst.DrawTextColored(x, 0, fmt.Sprintf("Best: %d", st.HighScore), core.ColorGray)
	x += 14

	maxWishes := s.Config().World.MaxWishes
	hearts := strings.Repeat(string(HeartFull), st.Wishes) + strings.Repeat(string(HeartEmpty), core.Max(maxWishes-st.Wishes, 0))
	dst.DrawTextColored(x, 0, hearts, core.ColorPink)
	x += maxWishes + 2

	if st.Multiplier > 1 {
		dst.DrawTextColored(x, 0, fmt.Sprintf("%dx", st.Multiplier), core.ColorPurple)
		x += 4
	}
	if st.Invincible {
		dst.DrawTextColored(x, 0, "INVINCIBLE", core.ColorGold)
	}

	speed := fmt.Sprintf("Spd %.1f", s.score.Speed)
	dst.DrawTextColored(dst.Width()-len(speed)-1, 0, speed, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := runeLen(title)
	for _, l := range lines {
		boxW = core.Max(boxW, runeLen(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-runeLen(title))/2, boxY+1, title, core.ColorBrightMagenta)
	for i, l := range lines {
		color := core.ColorDefault
		if strings.Contains(l, "NEW HIGH SCORE") {
			color = core.ColorGold
		}
		dst.DrawTextColored(boxX+(boxW-runeLen(l))/2, boxY+3+i, l, color)
	}
}

func runeLen(s string) int {
	return len([]rune(s))
}
