package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/unicorn-run/internal/games/unicorn"
	"github.com/vovakirdan/unicorn-run/internal/storage"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceSkins
	ChoiceScores
	ChoiceQuit
)

// String returns the label shown in the menu.
func (c MenuChoice) String() string {
	switch c {
	case ChoicePlay:
		return "Play"
	case ChoiceSkins:
		return "Skins"
	case ChoiceScores:
		return "High Scores"
	case ChoiceQuit:
		return "Quit"
	default:
		return ""
	}
}

var menuItems = []MenuChoice{ChoicePlay, ChoiceSkins, ChoiceScores, ChoiceQuit}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor    int
	width     int
	height    int
	best      int
	skin      unicorn.Skin
	keyMapper *KeyMapper
	selected  MenuChoice
}

// NewMenuModel creates the main menu. The best score and skin shown come from store.
func NewMenuModel(store *storage.Store, skin unicorn.Skin, width, height int) MenuModel {
	m := MenuModel{
		width:     width,
		height:    height,
		skin:      skin,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		if best, err := store.HighScore(unicorn.GameID); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.selected = ChoiceQuit

	case MenuActionUp:
		m.cursor = (m.cursor + len(menuItems) - 1) % len(menuItems)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(menuItems)

	case MenuActionSelect:
		m.selected = menuItems[m.cursor]

	case MenuActionScoreboard:
		m.selected = ChoiceScores
	}

	return m, nil
}

var (
	logoStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	menuItemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(logoStyle.Render(centerText("U N I C O R N   R U N", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Best: %d   Skin: %s", m.best, m.skin.Name), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item.String()
		style := menuItemStyle
		if i == m.cursor {
			line = "> " + item.String()
			style = cursorStyle
		}
		b.WriteString(style.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(centerText("In game: Space jump  Z dash  P pause  M mute", m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
