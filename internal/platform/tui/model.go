package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/unicorn-run/internal/audio"
	"github.com/vovakirdan/unicorn-run/internal/config"
	"github.com/vovakirdan/unicorn-run/internal/core"
	"github.com/vovakirdan/unicorn-run/internal/registry"
	"github.com/vovakirdan/unicorn-run/internal/storage"
)

// Services are the shared resources a terminal session runs with.
// Every field is optional.
type Services struct {
	Store   *storage.Store
	Audio   *audio.Player
	Logger  *log.Logger
	Watcher *config.Watcher
}

func (s Services) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.Default()
}

// Optional game capabilities.
type (
	configReloader interface{ ReloadConfig() error }
	gameClock      interface{ Now() time.Duration }
	audioSettings  interface{ AudioConfig() config.AudioConfig }
)

// Model is the Bubble Tea model for one running game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	svc        Services
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	standalone bool // Owns the program: quits on exit and watches config itself
	quitting   bool
	done       bool // The game went back to its menu
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a model for game. The store's keeper is wired into
// games that persist their own high score.
func NewModel(game registry.Game, svc Services, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if ka, ok := game.(registry.KeeperAware); ok && svc.Store != nil {
		ka.SetScoreKeeper(svc.Store.Keeper(game.ID()))
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		svc:        svc,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.standalone {
		return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.svc.Watcher))
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case ConfigChangedMsg:
		m.ReloadConfig(msg.Path)
		return m, m.rearm()

	case ConfigWatchErrMsg:
		m.svc.logger().Warn("Config watcher failed", "err", msg.Err)
		return m, m.rearm()
	}

	return m, nil
}

func (m Model) rearm() tea.Cmd {
	if !m.standalone {
		return nil
	}
	return waitForConfig(m.svc.Watcher)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.stopAudio()
		return m, tea.Quit
	case action == core.ActionMute:
		m.toggleMute()
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick runs one simulation tick and feeds its events to audio.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.svc.Audio != nil {
		m.svc.Audio.HandleEvents(result.Events)
		if c, ok := m.game.(gameClock); ok {
			m.svc.Audio.Update(c.Now())
		}
	}

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.saveScore()
		m.scoreSaved = true
	case m.gameState.Phase == core.PhasePlaying:
		m.scoreSaved = false
	case m.gameState.Phase == core.PhaseMenu:
		m.done = true
		m.stopAudio()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished game in the history.
// The high score itself is kept by the game through its keeper.
func (m Model) saveScore() {
	logger := m.svc.logger()
	logger.Info("Game over",
		"score", m.gameState.Score,
		"best", m.gameState.HighScore,
		"new_high_score", m.gameState.NewHighScore,
	)
	if m.svc.Store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.svc.Store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		logger.Error("Failed to save score", "err", err)
	}
}

func (m Model) toggleMute() {
	if m.svc.Audio == nil {
		return
	}
	muted := m.svc.Audio.ToggleMute()
	if m.svc.Store == nil {
		return
	}
	if err := m.svc.Store.SaveMuted(muted); err != nil {
		m.svc.logger().Warn("Failed to save mute setting", "err", err)
	}
}

func (m Model) stopAudio() {
	if m.svc.Audio != nil {
		m.svc.Audio.StopMusic()
	}
}

// ReloadConfig re-reads the game config after the file at path changed.
// A rejected file leaves the running game untouched.
func (m Model) ReloadConfig(path string) {
	r, ok := m.game.(configReloader)
	if !ok {
		return
	}
	logger := m.svc.logger()
	if err := r.ReloadConfig(); err != nil {
		logger.Warn("Config rejected", "path", path, "err", err)
		return
	}
	if a, ok := m.game.(audioSettings); ok && m.svc.Audio != nil {
		m.svc.Audio.SetConfig(a.AudioConfig())
	}
	logger.Info("Config reloaded", "path", path)
}

// Done reports whether the player left the game for the menu.
func (m Model) Done() bool {
	return m.done
}

// Quitting reports whether the player asked to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// State returns the state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.svc.logger().Warn("Screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.svc.logger().Warn("Screenshot failed", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run plays a single game until the player quits or leaves to the menu.
func Run(game registry.Game, svc Services, cfg core.RuntimeConfig) error {
	model := NewModel(game, svc, cfg)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
