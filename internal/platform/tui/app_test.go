package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/unicorn-run/internal/audio"
	"github.com/vovakirdan/unicorn-run/internal/config"
	"github.com/vovakirdan/unicorn-run/internal/core"
	"github.com/vovakirdan/unicorn-run/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testServices(t *testing.T) Services {
	t.Helper()
	return Services{
		Store: openStore(t),
		Audio: audio.Silent(config.AudioConfig{SFXVolume: 1, MusicVolume: 1}),
	}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func updateApp(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	app, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T, want AppModel", next)
	}
	return app, cmd
}

func press(t *testing.T, m AppModel, msgs ...tea.Msg) AppModel {
	t.Helper()
	for _, msg := range msgs {
		m, _ = updateApp(t, m, msg)
	}
	return m
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
)

func TestAppStartsAtMenu(t *testing.T) {
	m := NewAppModel(testServices(t), testRuntime(), "tester")

	if m.screen != screenMenu {
		t.Fatalf("screen = %d, want menu", m.screen)
	}
	view := m.View()
	for _, want := range []string{"U N I C O R N", "Play", "Skins", "High Scores", "Best: 0", "Classic"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestAppQuitFromMenu(t *testing.T) {
	m := NewAppModel(testServices(t), testRuntime(), "tester")

	m, cmd := updateApp(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("expected quitting")
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command should quit the program")
	}
}

func TestAppSkinPickerPersistsChoice(t *testing.T) {
	svc := testServices(t)
	m := NewAppModel(svc, testRuntime(), "tester")

	m = press(t, m, keyDown, keyEnter)
	if m.screen != screenSkins {
		t.Fatalf("screen = %d, want skins", m.screen)
	}
	if !strings.Contains(m.View(), "CHOOSE YOUR UNICORN") {
		t.Error("skin picker view missing title")
	}

	m = press(t, m, keyRight, keyEnter)
	if m.screen != screenMenu {
		t.Fatalf("screen = %d, want menu after choosing", m.screen)
	}
	if m.skin != 1 {
		t.Errorf("skin = %d, want 1", m.skin)
	}
	if got, err := svc.Store.SelectedSkin(); err != nil || got != 1 {
		t.Errorf("stored skin = %d, %v; want 1", got, err)
	}
	if !strings.Contains(m.View(), "Midnight") {
		t.Error("menu should show the chosen skin")
	}

	// A new session picks the stored skin up
	again := NewAppModel(svc, testRuntime(), "tester")
	if again.skin != 1 {
		t.Errorf("new session skin = %d, want 1", again.skin)
	}
}

func TestAppSkinPickerBackKeepsSkin(t *testing.T) {
	m := NewAppModel(testServices(t), testRuntime(), "tester")

	m = press(t, m, keyDown, keyEnter, keyRight, runeKey('b'))
	if m.screen != screenMenu {
		t.Fatalf("screen = %d, want menu", m.screen)
	}
	if m.skin != 0 {
		t.Errorf("skin = %d, want 0 after backing out", m.skin)
	}
}

func TestAppScoreboard(t *testing.T) {
	svc := testServices(t)
	for _, score := range []int{120, 340, 90} {
		if _, err := svc.Store.SaveScore("unicorn", score); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}
	cfg := testRuntime()
	cfg.ScreenW = 100
	m := NewAppModel(svc, cfg, "tester")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %d, want scores", m.screen)
	}
	view := m.View()
	for _, want := range []string{"HIGH SCORES", "340", "Best:    340", "Games:   3"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard view missing %q:\n%s", want, view)
		}
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %d, want menu", m.screen)
	}
	if !strings.Contains(m.View(), "Best: 340") {
		t.Error("menu should show the best score")
	}
}

func TestScoreboardClearNeedsConfirmation(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("unicorn", 500); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}
	board := NewScoreboardModel(store, "unicorn", "Unicorn Run", 100, 24)

	step := func(msg tea.Msg) {
		next, _ := board.Update(msg)
		board = next.(ScoreboardModel)
	}

	step(runeKey('x'))
	if len(board.scores) != 1 {
		t.Fatal("a single press should not clear")
	}
	if !strings.Contains(board.View(), "Press x again") {
		t.Error("expected confirmation prompt")
	}

	// Any other key cancels the confirmation
	step(tea.KeyMsg{Type: tea.KeyDown})
	step(runeKey('x'))
	step(runeKey('x'))
	if len(board.scores) != 0 {
		t.Errorf("scores = %d, want 0 after confirmed clear", len(board.scores))
	}
	if best, _ := store.HighScore("unicorn"); best != 0 {
		t.Errorf("HighScore = %d after clear, want 0", best)
	}
}

func TestAppPlayPauseAndBack(t *testing.T) {
	m := NewAppModel(testServices(t), testRuntime(), "tester")

	m, cmd := updateApp(t, m, keyEnter)
	if m.screen != screenGame || m.game == nil {
		t.Fatalf("screen = %d, want game", m.screen)
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}

	m = press(t, m, TickMsg{}, TickMsg{})
	if got := m.game.State().Phase; got != core.PhasePlaying {
		t.Fatalf("phase = %s, want playing", got)
	}

	m = press(t, m, runeKey('p'), TickMsg{})
	if got := m.game.State().Phase; got != core.PhasePaused {
		t.Fatalf("phase = %s, want paused", got)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view missing overlay")
	}

	m = press(t, m, runeKey('b'), TickMsg{})
	if m.screen != screenMenu {
		t.Errorf("screen = %d, want menu after leaving a paused game", m.screen)
	}
	if m.game != nil {
		t.Error("game model should be dropped")
	}
}

func TestAppQuitFromGame(t *testing.T) {
	m := NewAppModel(testServices(t), testRuntime(), "tester")
	m = press(t, m, keyEnter, TickMsg{})

	m, cmd := updateApp(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Fatal("q in game should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelMuteIsPersisted(t *testing.T) {
	svc := testServices(t)
	m := NewAppModel(svc, testRuntime(), "tester")
	m = press(t, m, keyEnter, runeKey('m'))

	if !svc.Audio.Muted() {
		t.Fatal("m should mute audio")
	}
	value, ok, err := svc.Store.Setting(storage.SettingMuted)
	if err != nil || !ok || value != "true" {
		t.Errorf("muted setting = %q, %v, %v; want \"true\"", value, ok, err)
	}

	m = press(t, m, runeKey('m'))
	if svc.Audio.Muted() {
		t.Error("second press should unmute")
	}
	if value, _, _ := svc.Store.Setting(storage.SettingMuted); value != "false" {
		t.Errorf("muted setting = %q, want \"false\"", value)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := NewAppModel(testServices(t), testRuntime(), "tester")
	m = press(t, m, keyEnter)
	for range 30 {
		m = press(t, m, TickMsg{})
	}
	before := m.game.State().Score

	m = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40}, TickMsg{})
	if m.config.ScreenW != 120 || m.game.screen.Width() != 120 {
		t.Errorf("resize not applied: app %d, screen %d", m.config.ScreenW, m.game.screen.Width())
	}
	if got := m.game.State().Score; got <= before {
		t.Errorf("score %d after resize, want more than %d", got, before)
	}
}
