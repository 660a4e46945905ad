// Package unicorn implements Unicorn Run, a side-scrolling runner.
// The unicorn runs on its own; the player jumps, double-jumps and dashes
// through star obstacles while collecting power-ups.
package unicorn

import (
	"time"

	"github.com/vovakirdan/unicorn-run/internal/config"
	"github.com/vovakirdan/unicorn-run/internal/core"
	"github.com/vovakirdan/unicorn-run/internal/registry"
)

// GameID is the registry and storage key.
const GameID = "unicorn"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var skinIndex int

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = "" // Use config as loaded
		return
	}
	difficultyPreset = p
}

// SetSkin sets the skin new games render with.
func SetSkin(index int) {
	skinIndex = index
}

// LoadConfig reads the YAML config with the CLI overrides applied.
// A broken file falls back to the defaults along with the error.
func LoadConfig() (config.UnicornConfig, error) {
	cfg, err := config.LoadUnicorn(configPath)
	if difficultyPreset != "" {
		config.ApplyUnicornPreset(&cfg, difficultyPreset)
	}
	return cfg, err
}

// Game adapts a Session to the registry interface.
type Game struct {
	session *Session
	runtime core.RuntimeConfig
	keeper  registry.ScoreKeeper
	skin    Skin
	best    int
}

// New creates a new Unicorn Run game instance.
func New() *Game {
	return &Game{skin: SkinAt(skinIndex)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Unicorn Run"
}

// SetScoreKeeper wires high score persistence.
func (g *Game) SetScoreKeeper(k registry.ScoreKeeper) {
	g.keeper = k
	if g.session != nil {
		g.session.SetScoreKeeper(k)
	}
}

// SetSkin changes the skin of this instance.
func (g *Game) SetSkin(index int) {
	g.skin = SkinAt(index)
}

// Skin returns the active skin.
func (g *Game) Skin() Skin {
	return g.skin
}

// Reset builds a fresh session and starts playing.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, _ := LoadConfig() //nolint:errcheck // Defaults are returned on error

	if g.session != nil {
		g.best = max(g.best, g.session.HighScore())
	}
	g.session = NewSession(cfg, runtime.Seed, runtime.TickRate)
	g.session.SetHighScore(g.best)
	if g.keeper != nil {
		g.session.SetScoreKeeper(g.keeper)
	}
	//nolint:errcheck // A new session is always in the menu phase
	g.session.Start()
}

// ReloadConfig re-reads the config file and applies it to the running session.
func (g *Game) ReloadConfig() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if g.session != nil {
		g.session.Reconfigure(cfg)
	}
	return nil
}

// Session exposes the underlying simulation to frontends that draw it themselves.
func (g *Game) Session() *Session {
	return g.session
}

// Now returns the session clock; zero before the first Reset.
func (g *Game) Now() time.Duration {
	if g.session == nil {
		return 0
	}
	return g.session.Now()
}

// AudioConfig returns the sound settings the game was loaded with.
func (g *Game) AudioConfig() config.AudioConfig {
	if g.session == nil {
		cfg, _ := LoadConfig() //nolint:errcheck // Defaults are returned on error
		return cfg.Audio
	}
	return g.session.Config().Audio
}

// Step applies input and advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(g.runtime)
	}
	HandleInput(g.session, in)
	events := g.session.Step()
	return core.StepResult{State: g.session.State(), Events: events}
}

// HandleInput maps one frame of actions onto session commands.
// Jump also resumes from pause; Back leaves a paused or finished game.
// Actions that make no sense in the current phase are ignored.
func HandleInput(s *Session, in core.InputFrame) {
	switch s.Phase() {
	case core.PhaseMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			s.Start() //nolint:errcheck // Phase checked above
		}

	case core.PhasePlaying:
		if in.Has(core.ActionPause) {
			s.TogglePause() //nolint:errcheck // Phase checked above
			return
		}
		if in.Has(core.ActionJump) {
			s.Jump()
		}
		if in.Has(core.ActionDash) {
			s.Dash()
		}

	case core.PhasePaused:
		switch {
		case in.Has(core.ActionPause), in.Has(core.ActionJump):
			s.TogglePause() //nolint:errcheck // Phase checked above
		case in.Has(core.ActionBack):
			s.Quit() //nolint:errcheck // Phase checked above
		}

	case core.PhaseGameOver:
		switch {
		case in.Has(core.ActionRestart):
			s.Restart() //nolint:errcheck // Phase checked above
		case in.Has(core.ActionBack):
			s.Quit() //nolint:errcheck // Phase checked above
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Phase: core.PhaseMenu}
	}
	return g.session.State()
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
