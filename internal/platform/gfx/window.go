// Package gfx runs Unicorn Run in a desktop window with ebiten.
// The simulation is the same one the terminal frontend steps; only
// drawing and input differ.
package gfx

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/unicorn-run/internal/audio"
	"github.com/vovakirdan/unicorn-run/internal/config"
	"github.com/vovakirdan/unicorn-run/internal/core"
	"github.com/vovakirdan/unicorn-run/internal/games/unicorn"
	"github.com/vovakirdan/unicorn-run/internal/storage"
)

// Options configure a window session. Store, Audio, Logger and Watcher
// are optional.
type Options struct {
	Store    *storage.Store
	Audio    *audio.Player
	Logger   *log.Logger
	Watcher  *config.Watcher
	TickRate int
	Seed     int64
	Skin     int
	Scale    float64 // Window size relative to the playfield
}

// Window is the ebiten game for one player.
type Window struct {
	opts       Options
	game       *unicorn.Game
	keys       keyState
	face       text.Face
	sprite     *ebiten.Image
	state      core.GameState
	scoreSaved bool
}

// NewWindow creates the window game and starts the first round.
func NewWindow(opts Options) *Window {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	game := unicorn.New()
	game.SetSkin(opts.Skin)
	if opts.Store != nil {
		game.SetScoreKeeper(opts.Store.Keeper(unicorn.GameID))
	}

	w := &Window{
		opts: opts,
		game: game,
		keys: ebitenKeys{},
		face: text.NewGoXFace(basicfont.Face7x13),
	}
	game.Reset(w.runtime())
	w.state = game.State()
	return w
}

func (w *Window) runtime() core.RuntimeConfig {
	cfg, _ := unicorn.LoadConfig() //nolint:errcheck // Defaults are returned on error
	return core.RuntimeConfig{
		ScreenW:  int(cfg.Playfield.Width),
		ScreenH:  int(cfg.Playfield.Height),
		TickRate: w.opts.TickRate,
		Seed:     w.opts.Seed,
	}
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	return w.step(readInput(w.keys))
}

// step runs one tick with the given input.
func (w *Window) step(in core.InputFrame) error {
	if in.Has(core.ActionQuit) {
		if w.opts.Audio != nil {
			w.opts.Audio.StopMusic()
		}
		return ebiten.Termination
	}
	if in.Has(core.ActionMute) {
		w.toggleMute()
	}
	w.pollConfig()

	result := w.game.Step(in)
	w.state = result.State
	if w.opts.Audio != nil {
		w.opts.Audio.HandleEvents(result.Events)
		w.opts.Audio.Update(w.game.Now())
	}

	switch {
	case w.state.GameOver && !w.scoreSaved:
		w.saveScore()
		w.scoreSaved = true
	case w.state.Phase == core.PhasePlaying:
		w.scoreSaved = false
	case w.state.Phase == core.PhaseMenu && w.opts.Audio != nil:
		w.opts.Audio.StopMusic()
	}
	return nil
}

func (w *Window) saveScore() {
	w.opts.Logger.Info("Game over",
		"score", w.state.Score,
		"best", w.state.HighScore,
		"new_high_score", w.state.NewHighScore,
	)
	if w.opts.Store == nil || w.state.Score <= 0 {
		return
	}
	if _, err := w.opts.Store.SaveScore(unicorn.GameID, w.state.Score); err != nil {
		w.opts.Logger.Error("Failed to save score", "err", err)
	}
}

func (w *Window) toggleMute() {
	if w.opts.Audio == nil {
		return
	}
	muted := w.opts.Audio.ToggleMute()
	if w.opts.Store == nil {
		return
	}
	if err := w.opts.Store.SaveMuted(muted); err != nil {
		w.opts.Logger.Warn("Failed to save mute setting", "err", err)
	}
}

// pollConfig applies a pending config change without blocking the frame.
func (w *Window) pollConfig() {
	if w.opts.Watcher == nil {
		return
	}
	select {
	case path, ok := <-w.opts.Watcher.Events:
		if !ok {
			return
		}
		if err := w.game.ReloadConfig(); err != nil {
			w.opts.Logger.Warn("Config rejected", "path", path, "err", err)
			return
		}
		if w.opts.Audio != nil {
			w.opts.Audio.SetConfig(w.game.AudioConfig())
		}
		w.opts.Logger.Info("Config reloaded", "path", path)
	case err, ok := <-w.opts.Watcher.Errors:
		if ok {
			w.opts.Logger.Warn("Config watcher failed", "err", err)
		}
	default:
	}
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	s := w.game.Session()
	screen.Fill(skyTop)
	if s == nil {
		return
	}

	pl := s.Player()
	if w.sprite == nil {
		w.sprite = buildSprite(w.game.Skin(), int(pl.W), int(pl.H))
	}

	sx, sy := s.Effects().ShakeOffset()
	p := painter{dst: screen, face: w.face, sprite: w.sprite, dx: float32(sx), dy: float32(sy)}

	drawStars(p, s)
	drawPlatforms(p, s)
	drawTrail(p, s)
	drawObstacles(p, s)
	drawPowerUps(p, s)
	drawParticles(p, s)
	drawUnicorn(p, s)
	drawFlash(p, s)

	p.dx, p.dy = 0, 0
	drawHUD(p, s)
	drawOverlay(p, s)
}

// Layout implements ebiten.Game. The playfield is drawn at its logical size
// and ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	cfg := w.game.Session().Config().Playfield
	return int(cfg.Width), int(cfg.Height)
}

// State returns the state after the last tick.
func (w *Window) State() core.GameState {
	return w.state
}

// Run opens the window and blocks until the player quits.
func Run(opts Options) error {
	w := NewWindow(opts)
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	width, height := w.Layout(0, 0)

	ebiten.SetWindowTitle("Unicorn Run")
	ebiten.SetWindowSize(int(float64(width)*scale), int(float64(height)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.opts.TickRate)

	return ebiten.RunGame(w)
}
