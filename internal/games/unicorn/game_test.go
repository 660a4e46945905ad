package unicorn

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/unicorn-run/internal/config"
	"github.com/vovakirdan/unicorn-run/internal/core"
	"github.com/vovakirdan/unicorn-run/internal/registry"
)

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestHandleInputPhases(t *testing.T) {
	s := NewSession(testConfig(), 1, 60)

	HandleInput(s, frame(core.ActionConfirm))
	if s.Phase() != core.PhasePlaying {
		t.Fatalf("Enter in menu should start, phase %s", s.Phase())
	}

	HandleInput(s, frame(core.ActionPause, core.ActionJump))
	if s.Phase() != core.PhasePaused {
		t.Fatalf("P should pause, phase %s", s.Phase())
	}
	if s.Player().Jumps != 2 {
		t.Error("jump in the same frame as pause should be ignored")
	}

	HandleInput(s, frame(core.ActionJump))
	if s.Phase() != core.PhasePlaying {
		t.Fatalf("Space should resume, phase %s", s.Phase())
	}

	HandleInput(s, frame(core.ActionPause))
	HandleInput(s, frame(core.ActionBack))
	if s.Phase() != core.PhaseMenu {
		t.Fatalf("B while paused should go to the menu, phase %s", s.Phase())
	}

	HandleInput(s, frame(core.ActionJump))
	if s.Phase() != core.PhasePlaying {
		t.Fatalf("Space in menu should start, phase %s", s.Phase())
	}
	HandleInput(s, frame(core.ActionRestart))
	if s.Phase() != core.PhasePlaying || s.Rounds() != 2 {
		t.Error("R while playing should be ignored")
	}
}

func TestHandleInputGameOver(t *testing.T) {
	s := started(t)
	landed(t, s)
	s.score.Wishes = 1
	placeObstacleOnPlayer(s)
	s.Step()

	HandleInput(s, frame(core.ActionJump, core.ActionDash))
	if s.Phase() != core.PhaseGameOver {
		t.Fatal("jump and dash should not leave game over")
	}
	HandleInput(s, frame(core.ActionRestart))
	if s.Phase() != core.PhasePlaying || s.State().Wishes != 3 {
		t.Errorf("R should restart, phase %s", s.Phase())
	}
}

func useDefaultConfigFile(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.UnicornFile)
	if err := os.WriteFile(path, config.GetDefaultYAML(GameID), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("unicorn should register itself")
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Unicorn Run" {
		t.Errorf("title = %q", g.Title())
	}
	if _, ok := g.(registry.KeeperAware); !ok {
		t.Error("unicorn should accept a score keeper")
	}
}

func TestGameStepAndRestartKeepsBest(t *testing.T) {
	useDefaultConfigFile(t)
	keeper := &fakeKeeper{best: 42}

	g := New()
	g.SetScoreKeeper(keeper)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	res := g.Step(core.NewInputFrame())
	if !hasEvent(res.Events, core.EventGameStart) {
		t.Error("first step should report the start")
	}
	if res.State.Phase != core.PhasePlaying || res.State.HighScore != 42 {
		t.Errorf("unexpected state %+v", res.State)
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 2})
	if g.State().HighScore != 42 || g.State().Score != 0 {
		t.Errorf("reset should keep best and clear score, got %+v", g.State())
	}
}

func TestReloadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.UnicornFile)
	if err := os.WriteFile(path, config.GetDefaultYAML(GameID), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.DefaultConfig())

	if err := os.WriteFile(path, []byte("player:\n  jump_force: 18\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := g.ReloadConfig(); err != nil {
		t.Fatalf("ReloadConfig: %v", err)
	}
	if got := g.Session().Config().Player.JumpForce; got != 18 {
		t.Errorf("jump force = %v, expected 18", got)
	}

	if err := os.WriteFile(path, []byte("player:\n  max_jumps: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := g.ReloadConfig(); err == nil {
		t.Error("invalid config should be rejected")
	}
	if got := g.Session().Config().Player.JumpForce; got != 18 {
		t.Errorf("rejected reload changed the config, jump force %v", got)
	}
}

func TestRenderHUD(t *testing.T) {
	s := started(t)
	for i := 0; i < 30; i++ {
		s.Step()
	}
	screen := core.NewScreen(80, 24)
	RenderSession(s, SkinAt(0), screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 30") {
		t.Errorf("HUD should show the score, got %q", hud)
	}
	if !strings.Contains(hud, "♥♥♥") {
		t.Errorf("HUD should show three hearts, got %q", hud)
	}
	if !strings.Contains(screen.String(), string(PlatformChar)) {
		t.Error("platforms should be drawn")
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *Session)
		want  string
	}{
		{"menu", func(s *Session) {}, "Press Enter to start"},
		{"paused", func(s *Session) {
			s.Start()       //nolint:errcheck
			s.TogglePause() //nolint:errcheck
		}, "PAUSED"},
		{"game over", func(s *Session) {
			s.Start() //nolint:errcheck
			for i := 0; i < 30; i++ {
				s.Step()
			}
			s.score.Wishes = 1
			placeObstacleOnPlayer(s)
			s.Step()
		}, "NEW HIGH SCORE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(testConfig(), 1, 60)
			tt.setup(s)
			screen := core.NewScreen(80, 24)
			RenderSession(s, SkinAt(0), screen)
			if !strings.Contains(screen.String(), tt.want) {
				t.Errorf("screen should contain %q:\n%s", tt.want, screen.String())
			}
		})
	}
}

func TestSkins(t *testing.T) {
	if SkinAt(-1).Name != SkinAt(0).Name {
		t.Error("negative index should wrap to a valid skin")
	}
	for i := range Skins {
		idx, ok := SkinIndex(Skins[i].Name)
		if !ok || idx != i {
			t.Errorf("SkinIndex(%q) = %d, %v", Skins[i].Name, idx, ok)
		}
	}
	if _, ok := SkinIndex("nope"); ok {
		t.Error("unknown skin should not resolve")
	}
}
