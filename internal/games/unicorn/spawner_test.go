package unicorn

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/unicorn-run/internal/config"
)

func TestInitialPlatforms(t *testing.T) {
	cfg := config.DefaultUnicornConfig()
	sp := NewSpawner(rand.New(rand.NewSource(3)), cfg)
	plats := sp.InitialPlatforms()

	if len(plats) != cfg.Platforms.Count {
		t.Fatalf("platforms = %d, expected %d", len(plats), cfg.Platforms.Count)
	}
	if plats[0].X != 0 {
		t.Errorf("first platform x = %v, expected 0", plats[0].X)
	}
	minY := cfg.Playfield.Height - cfg.Platforms.BaseOffset - cfg.Platforms.HeightRange
	maxY := cfg.Playfield.Height - cfg.Platforms.BaseOffset
	for i, p := range plats {
		if p.W < cfg.Platforms.MinWidth || p.W >= cfg.Platforms.MaxWidth {
			t.Errorf("platform %d width %v out of range", i, p.W)
		}
		if p.Y < minY || p.Y > maxY {
			t.Errorf("platform %d y %v out of [%v, %v]", i, p.Y, minY, maxY)
		}
		if p.H != cfg.Platforms.Height {
			t.Errorf("platform %d height %v, expected %v", i, p.H, cfg.Platforms.Height)
		}
		if i > 0 {
			gap := p.X - plats[i-1].Right()
			if gap < cfg.Platforms.MinGap || gap >= cfg.Platforms.MaxGap {
				t.Errorf("gap before platform %d = %v out of range", i, gap)
			}
		}
	}
}

func TestScrollPlatformsRefills(t *testing.T) {
	cfg := config.DefaultUnicornConfig()
	sp := NewSpawner(rand.New(rand.NewSource(5)), cfg)
	plats := sp.InitialPlatforms()

	for tick := 0; tick < 2000; tick++ {
		plats = sp.ScrollPlatforms(plats, 12)
		if len(plats) < cfg.Platforms.Count {
			t.Fatalf("tick %d: only %d platforms", tick, len(plats))
		}
		for i := 1; i < len(plats); i++ {
			if plats[i].X <= plats[i-1].X {
				t.Fatalf("tick %d: platforms out of order", tick)
			}
			gap := plats[i].X - plats[i-1].Right()
			if gap < cfg.Platforms.MinGap-1e-9 || gap > cfg.Platforms.MaxGap {
				t.Fatalf("tick %d: gap %v out of range", tick, gap)
			}
		}
		if plats[0].Right() <= cfg.Platforms.PruneX {
			t.Fatalf("tick %d: platform past the prune line was kept", tick)
		}
	}
}

func TestRefillEmptyAnchorsAtRightEdge(t *testing.T) {
	cfg := config.DefaultUnicornConfig()
	sp := NewSpawner(rand.New(rand.NewSource(1)), cfg)

	plats := sp.Refill(nil)
	if len(plats) != cfg.Platforms.Count {
		t.Fatalf("platforms = %d, expected %d", len(plats), cfg.Platforms.Count)
	}
	if plats[0].X != cfg.Playfield.Width {
		t.Errorf("first platform x = %v, expected %v", plats[0].X, cfg.Playfield.Width)
	}
}

func TestMaybeObstaclePlacement(t *testing.T) {
	cfg := config.DefaultUnicornConfig()
	cfg.Spawning.ObstacleChance = 1
	sp := NewSpawner(rand.New(rand.NewSource(9)), cfg)
	plats := sp.InitialPlatforms()

	for i := 0; i < 50; i++ {
		o, ok := sp.MaybeObstacle(plats, 0)
		if !ok {
			t.Fatal("chance 1 should always spawn below the cap")
		}
		found := false
		for _, p := range plats[:cfg.Spawning.CandidatePlatforms] {
			if o.X == p.X+p.W/2 && o.Y == p.Y-cfg.Spawning.ObstacleLift {
				found = true
			}
		}
		if !found {
			t.Errorf("obstacle at (%v, %v) is not above a candidate platform", o.X, o.Y)
		}
		if o.BaseY != o.Y || o.Size != cfg.Spawning.ObstacleSize {
			t.Errorf("unexpected obstacle %+v", o)
		}
	}

	if _, ok := sp.MaybeObstacle(plats, cfg.Spawning.MaxObstacles); ok {
		t.Error("obstacle spawned at the live cap")
	}
	if _, ok := sp.MaybeObstacle(nil, 0); ok {
		t.Error("obstacle spawned without platforms")
	}
}

func TestMaybePowerUpPlacement(t *testing.T) {
	cfg := config.DefaultUnicornConfig()
	cfg.Spawning.PowerUpChance = 1
	sp := NewSpawner(rand.New(rand.NewSource(2)), cfg)
	plats := sp.InitialPlatforms()

	p, ok := sp.MaybePowerUp(plats, 0)
	if !ok {
		t.Fatal("chance 1 should always spawn below the cap")
	}
	if p.Size != cfg.Spawning.PowerUpSize || p.Collected {
		t.Errorf("unexpected power-up %+v", p)
	}
	if _, ok := sp.MaybePowerUp(plats, cfg.Spawning.MaxPowerUps); ok {
		t.Error("power-up spawned at the live cap")
	}
}

func TestZeroChanceNeverSpawns(t *testing.T) {
	cfg := testConfig()
	sp := NewSpawner(rand.New(rand.NewSource(4)), cfg)
	plats := sp.InitialPlatforms()

	for i := 0; i < 1000; i++ {
		if _, ok := sp.MaybeObstacle(plats, 0); ok {
			t.Fatal("obstacle spawned with chance 0")
		}
		if _, ok := sp.MaybePowerUp(plats, 0); ok {
			t.Fatal("power-up spawned with chance 0")
		}
	}
}

func TestObstacleKindThresholds(t *testing.T) {
	tests := []struct {
		r    float64
		want ObstacleKind
	}{
		{0, ObstacleStatic},
		{0.69, ObstacleStatic},
		{0.7, ObstacleFloating},
		{0.84, ObstacleFloating},
		{0.85, ObstacleMoving},
		{0.99, ObstacleMoving},
	}
	for _, tt := range tests {
		if got := ObstacleKindFor(tt.r); got != tt.want {
			t.Errorf("ObstacleKindFor(%v) = %s, expected %s", tt.r, got, tt.want)
		}
	}
}

func TestPowerUpKindThresholds(t *testing.T) {
	tests := []struct {
		r    float64
		want PowerUpKind
	}{
		{0, PowerUpInvincibility},
		{0.39, PowerUpInvincibility},
		{0.4, PowerUpMultiplier},
		{0.69, PowerUpMultiplier},
		{0.7, PowerUpLife},
		{0.99, PowerUpLife},
	}
	for _, tt := range tests {
		if got := PowerUpKindFor(tt.r); got != tt.want {
			t.Errorf("PowerUpKindFor(%v) = %s, expected %s", tt.r, got, tt.want)
		}
	}
}

func TestObstacleMovement(t *testing.T) {
	tests := []struct {
		kind     ObstacleKind
		maxDrift float64
	}{
		{ObstacleStatic, 0},
		{ObstacleFloating, 30},
		{ObstacleMoving, 50},
	}
	for _, tt := range tests {
		o := Obstacle{X: 500, Y: 300, BaseY: 300, Size: 40, Kind: tt.kind}
		moved := false
		for i := 0; i < 200; i++ {
			o.update(6)
			drift := o.Y - o.BaseY
			if drift < -tt.maxDrift-1e-9 || drift > tt.maxDrift+1e-9 {
				t.Fatalf("%s: drift %v exceeds %v", tt.kind, drift, tt.maxDrift)
			}
			if drift != 0 {
				moved = true
			}
		}
		if moved != (tt.maxDrift > 0) {
			t.Errorf("%s: moved = %v", tt.kind, moved)
		}
		if o.X != 500-200*6 {
			t.Errorf("%s: x = %v, expected %v", tt.kind, o.X, 500-200*6)
		}
	}
}

func TestStarsWrap(t *testing.T) {
	f := NewStarField(1, 1000, 600, rand.New(rand.NewSource(1)))
	f.Stars[0].X = 0.5
	f.Stars[0].Speed = 1

	f.Update()
	if f.Stars[0].X != 1000 {
		t.Errorf("star x = %v, expected wrap to 1000", f.Stars[0].X)
	}
	if y := f.Stars[0].Y; y < 0 || y >= 600 {
		t.Errorf("star y = %v out of range", y)
	}
}
