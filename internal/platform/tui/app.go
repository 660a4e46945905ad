package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/unicorn-run/internal/core"
	"github.com/vovakirdan/unicorn-run/internal/games/unicorn"
	"github.com/vovakirdan/unicorn-run/internal/registry"
)

type appScreen int

const (
	screenMenu appScreen = iota
	screenGame
	screenSkins
	screenScores
)

// skinned is implemented by games with selectable skins.
type skinned interface{ SetSkin(index int) }

// AppModel manages the full session flow: menu -> game, skins or scores -> menu.
// It is the top-level model for local play and for SSH sessions.
type AppModel struct {
	svc      Services
	config   core.RuntimeConfig
	username string
	skin     int
	screen   appScreen
	menu     MenuModel
	game     *Model
	skins    SkinPickerModel
	scores   ScoreboardModel
	quitting bool
}

// NewAppModel creates the session model. The selected skin is read from the store.
func NewAppModel(svc Services, cfg core.RuntimeConfig, username string) AppModel {
	m := AppModel{
		svc:      svc,
		config:   cfg,
		username: username,
	}
	if svc.Store != nil {
		skin, err := svc.Store.SelectedSkin()
		if err != nil {
			svc.logger().Warn("Could not read selected skin", "err", err)
		}
		m.skin = skin
	}
	m.menu = m.newMenu()
	return m
}

func (m AppModel) newMenu() MenuModel {
	return NewMenuModel(m.svc.Store, unicorn.SkinAt(m.skin), m.config.ScreenW, m.config.ScreenH)
}

// Init initializes the session.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.menu.Init(), waitForConfig(m.svc.Watcher))
}

// Update handles messages for the session.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height

	case ConfigChangedMsg:
		if m.screen == screenGame && m.game != nil {
			m.game.ReloadConfig(msg.Path)
		}
		return m, waitForConfig(m.svc.Watcher)

	case ConfigWatchErrMsg:
		m.svc.logger().Warn("Config watcher failed", "err", msg.Err)
		return m, waitForConfig(m.svc.Watcher)
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenSkins:
		return m.updateSkins(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Selected() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoicePlay:
		return m.startGame()

	case ChoiceSkins:
		m.screen = screenSkins
		m.skins = NewSkinPickerModel(m.svc.Store, m.skin, m.config.ScreenW)
		return m, m.skins.Init()

	case ChoiceScores:
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.svc.Store, unicorn.GameID, "Unicorn Run", m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()
	}

	return m, cmd
}

// startGame creates a fresh game and hands the screen to it.
func (m AppModel) startGame() (tea.Model, tea.Cmd) {
	game, err := registry.Create(unicorn.GameID)
	if err != nil {
		m.svc.logger().Error("Cannot create game", "err", err)
		m.menu = m.newMenu()
		return m, nil
	}
	if s, ok := game.(skinned); ok {
		s.SetSkin(m.skin)
	}

	m.svc.logger().Debug("Game started", "user", m.username)
	gameModel := NewModel(game, m.svc, m.config)
	m.game = &gameModel
	m.screen = screenGame
	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.Done() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateSkins handles updates in the skin picker.
func (m AppModel) updateSkins(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.skins.Update(msg)
	if picker, ok := newModel.(SkinPickerModel); ok {
		m.skins = picker
	}

	if m.skins.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.skins.IsGoingBack() {
		m.skin = m.skins.Selected()
		return m.backToMenu()
	}

	return m, cmd
}

// updateScores handles updates in the scoreboard.
func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if board, ok := newModel.(ScoreboardModel); ok {
		m.scores = board
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu drops the current screen and shows a fresh menu.
func (m AppModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.game = nil
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

// View renders the current view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenSkins:
		return m.skins.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunApp runs the menu-driven session in the local terminal.
func RunApp(svc Services, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewAppModel(svc, cfg, ""), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
