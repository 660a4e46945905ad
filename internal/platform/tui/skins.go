package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/unicorn-run/internal/core"
	"github.com/vovakirdan/unicorn-run/internal/games/unicorn"
	"github.com/vovakirdan/unicorn-run/internal/storage"
)

// SkinKeyMap defines the key bindings for the skin picker.
type SkinKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SkinKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Select, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SkinKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next}, {k.Select, k.Back, k.Quit}}
}

// DefaultSkinKeyMap returns default key bindings.
func DefaultSkinKeyMap() SkinKeyMap {
	return SkinKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("left/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("right/l", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "use skin"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// skinArt is the preview drawing: h horn, m mane, b body, l legs.
var skinArt = []string{
	"      h ",
	"   mmbbb",
	"  mbbbbb",
	"bbbbbbb ",
	" l l l l",
}

// SkinPickerModel lets the player browse and choose a unicorn skin.
type SkinPickerModel struct {
	store     *storage.Store
	cursor    int
	saved     int
	preview   *core.Screen
	keys      SkinKeyMap
	help      help.Model
	width     int
	err       error
	quitting  bool
	goingBack bool
}

// NewSkinPickerModel opens the picker on the current skin.
func NewSkinPickerModel(store *storage.Store, current, width int) SkinPickerModel {
	if current < 0 || current >= len(unicorn.Skins) {
		current = 0
	}
	return SkinPickerModel{
		store:   store,
		cursor:  current,
		saved:   current,
		preview: core.NewScreen(len(skinArt[0]), len(skinArt)),
		keys:    DefaultSkinKeyMap(),
		help:    help.New(),
		width:   width,
	}
}

// Init initializes the picker.
func (m SkinPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m SkinPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
		case key.Matches(msg, m.keys.Prev):
			m.cursor = (m.cursor + len(unicorn.Skins) - 1) % len(unicorn.Skins)
		case key.Matches(msg, m.keys.Next):
			m.cursor = (m.cursor + 1) % len(unicorn.Skins)
		case key.Matches(msg, m.keys.Select):
			m.choose()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}

	return m, nil
}

// choose makes the highlighted skin current and persists it.
func (m *SkinPickerModel) choose() {
	m.err = nil
	if m.store != nil {
		if err := m.store.SaveSelectedSkin(m.cursor); err != nil {
			m.err = err
			return
		}
	}
	m.saved = m.cursor
	m.goingBack = true
}

// drawPreview paints the highlighted skin into the preview buffer.
func (m SkinPickerModel) drawPreview() string {
	skin := unicorn.SkinAt(m.cursor)
	m.preview.Clear()
	for y, row := range skinArt {
		for x, ch := range row {
			switch ch {
			case 'h':
				m.preview.SetColored(x, y, '╱', skin.Horn)
			case 'm':
				m.preview.SetColored(x, y, '≋', skin.Mane)
			case 'b':
				m.preview.SetColored(x, y, '█', skin.Body)
			case 'l':
				m.preview.SetColored(x, y, '╽', skin.Body)
			}
		}
	}
	return RenderScreen(m.preview)
}

// View renders the picker.
func (m SkinPickerModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	skin := unicorn.SkinAt(m.cursor)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(logoStyle.Render(centerText("CHOOSE YOUR UNICORN", m.width)))
	b.WriteString("\n\n")

	preview := panelStyle.Render(m.drawPreview())
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, preview))
	b.WriteString("\n\n")

	name := fmt.Sprintf("< %s >  (%d/%d)", skin.Name, m.cursor+1, len(unicorn.Skins))
	if m.cursor == m.saved {
		name += "  current"
	}
	b.WriteString(cursorStyle.Render(centerText(name, m.width)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(warnStyle.Render("Could not save skin: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the index of the skin in use.
func (m SkinPickerModel) Selected() int {
	return m.saved
}

// IsGoingBack returns true if user wants to go back to menu.
func (m SkinPickerModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m SkinPickerModel) IsQuitting() bool {
	return m.quitting
}
