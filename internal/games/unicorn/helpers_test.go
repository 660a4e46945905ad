package unicorn

import (
	"testing"
	"time"

	"github.com/vovakirdan/unicorn-run/internal/config"
	"github.com/vovakirdan/unicorn-run/internal/core"
)

// testConfig returns a world with one endless flat platform and no spawns,
// so the unicorn can run indefinitely without random collisions.
func testConfig() config.UnicornConfig {
	cfg := config.DefaultUnicornConfig()
	cfg.Spawning.ObstacleChance = 0
	cfg.Spawning.PowerUpChance = 0
	cfg.Platforms.MinWidth = 100000
	cfg.Platforms.MaxWidth = 100000
	cfg.Platforms.HeightRange = 0
	return cfg
}

// started returns a playing session on testConfig.
func started(t *testing.T) *Session {
	t.Helper()
	s := NewSession(testConfig(), 1, 60)
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	s.events = nil
	return s
}

// landed steps until the unicorn stands on a platform.
func landed(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < 200; i++ {
		if s.player.Grounded {
			return
		}
		s.Step()
	}
	t.Fatal("unicorn never landed")
}

// placeObstacleOnPlayer puts a static obstacle centered on the unicorn.
func placeObstacleOnPlayer(s *Session) {
	px, py := s.player.Center()
	s.obstacles = append(s.obstacles, Obstacle{
		X:     px - 20,
		Y:     py - 20,
		BaseY: py - 20,
		Size:  40,
		Kind:  ObstacleStatic,
	})
}

// placePowerUpOnPlayer puts a power-up centered on the unicorn.
func placePowerUpOnPlayer(s *Session, kind PowerUpKind) {
	px, py := s.player.Center()
	// Offset by one tick of scroll so it is still centered after moving
	s.powerups = append(s.powerups, PowerUp{
		X:    px - 15 + s.score.Speed,
		Y:    py - 15,
		Size: 30,
		Kind: kind,
	})
}

func hasEvent(events []core.Event, want core.Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

func countEvent(events []core.Event, want core.Event) int {
	n := 0
	for _, e := range events {
		if e == want {
			n++
		}
	}
	return n
}

// fakeKeeper is an in-memory ScoreKeeper.
type fakeKeeper struct {
	best  int
	saves int
}

func (k *fakeKeeper) HighScore() (int, error) { return k.best, nil }

func (k *fakeKeeper) SaveHighScore(score int) (bool, error) {
	k.saves++
	if score > k.best {
		k.best = score
		return true, nil
	}
	return false, nil
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }
