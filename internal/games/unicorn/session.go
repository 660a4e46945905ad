package unicorn

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/unicorn-run/internal/config"
	"github.com/vovakirdan/unicorn-run/internal/core"
	"github.com/vovakirdan/unicorn-run/internal/registry"
)

// ErrInvalidTransition is returned when a phase change is not allowed from
// the current phase.
var ErrInvalidTransition = errors.New("invalid phase transition")

// Session owns one player's world: the unicorn, the entity streams, score
// and effects. All state changes happen inside its methods, driven by the
// frontend's tick loop.
type Session struct {
	cfg      config.UnicornConfig
	tickDur  time.Duration
	rng      *rand.Rand // Gameplay randomness
	fxRng    *rand.Rand // Cosmetic randomness, kept apart so visuals never shift gameplay
	spawner  *Spawner
	stars    *StarField
	effects  *VisualEffects
	phase    core.Phase
	now      time.Duration // Session clock; advances only while playing
	frame    time.Duration // Effects clock; advances on every Step
	tick     uint64
	player   Player
	score    ScoreState
	events   []core.Event
	keeper   registry.ScoreKeeper
	best     int
	newBest  bool
	rounds   int
	lastLoss Outcome

	platforms []Platform
	obstacles []Obstacle
	powerups  []PowerUp
}

// NewSession creates a session in the menu phase.
// tickRate sets how much simulated time each Step covers.
func NewSession(cfg config.UnicornConfig, seed int64, tickRate int) *Session {
	if tickRate <= 0 {
		tickRate = 60
	}
	fxRng := rand.New(rand.NewSource(seed + 1))
	s := &Session{
		cfg:     cfg,
		tickDur: time.Second / time.Duration(tickRate),
		rng:     rand.New(rand.NewSource(seed)),
		fxRng:   fxRng,
		effects: NewVisualEffects(seed + 2),
		phase:   core.PhaseMenu,
	}
	s.spawner = NewSpawner(s.rng, cfg)
	s.stars = NewStarField(cfg.World.Stars, cfg.Playfield.Width, cfg.Playfield.Height, fxRng)
	s.score = NewScoreState(cfg.World)
	s.player = NewPlayer(cfg.Player)
	return s
}

// SetScoreKeeper wires persistence and loads the stored best.
func (s *Session) SetScoreKeeper(k registry.ScoreKeeper) {
	s.keeper = k
	if k == nil {
		return
	}
	if best, err := k.HighScore(); err == nil && best > s.best {
		s.best = best
	}
}

// SetHighScore seeds the best score shown in the HUD.
func (s *Session) SetHighScore(best int) {
	if best > s.best {
		s.best = best
	}
}

// Reconfigure swaps tuning in place. Entities already spawned keep their
// geometry; new ones and all per-tick rules use the new values.
func (s *Session) Reconfigure(cfg config.UnicornConfig) {
	s.cfg = cfg
	s.spawner.Configure(cfg)
	s.player.W = cfg.Player.Width
	s.player.H = cfg.Player.Height
	if s.score.Speed > cfg.World.MaxSpeed {
		s.score.Speed = cfg.World.MaxSpeed
	}
}

func (s *Session) transitionErr(action string) error {
	return fmt.Errorf("unicorn: %s from %s: %w", action, s.phase, ErrInvalidTransition)
}

// Start begins a game from the menu.
func (s *Session) Start() error {
	if s.phase != core.PhaseMenu {
		return s.transitionErr("start")
	}
	s.begin()
	return nil
}

// Restart begins a new game after game over.
func (s *Session) Restart() error {
	if s.phase != core.PhaseGameOver {
		return s.transitionErr("restart")
	}
	s.begin()
	return nil
}

// TogglePause switches between playing and paused.
func (s *Session) TogglePause() error {
	switch s.phase {
	case core.PhasePlaying:
		s.phase = core.PhasePaused
	case core.PhasePaused:
		s.phase = core.PhasePlaying
	default:
		return s.transitionErr("pause")
	}
	return nil
}

// Quit abandons the current game, or leaves the game over screen, and
// returns to the menu. An abandoned game records nothing.
func (s *Session) Quit() error {
	switch s.phase {
	case core.PhasePlaying, core.PhasePaused, core.PhaseGameOver:
		s.phase = core.PhaseMenu
		s.score.ClearEffects()
		s.effects.Reset()
		return nil
	default:
		return s.transitionErr("quit")
	}
}

// begin resets every per-game field synchronously and enters playing.
func (s *Session) begin() {
	s.now = 0
	s.player = NewPlayer(s.cfg.Player)
	s.score = NewScoreState(s.cfg.World)
	s.effects.Reset()
	s.platforms = s.spawner.InitialPlatforms()
	s.obstacles = s.obstacles[:0]
	s.powerups = s.powerups[:0]
	s.newBest = false
	s.lastLoss = OutcomeNone
	s.rounds++
	s.phase = core.PhasePlaying
	s.emit(core.EventGameStart)
}

func (s *Session) emit(e core.Event) {
	s.events = append(s.events, e)
}

// Jump makes the unicorn jump if it has a charge left.
func (s *Session) Jump() bool {
	if s.phase != core.PhasePlaying || !s.player.Jump(s.cfg.Player) {
		return false
	}
	s.emit(core.EventJump)
	return true
}

// Dash starts a forward dash if it is off cooldown.
func (s *Session) Dash() bool {
	if s.phase != core.PhasePlaying || !s.player.Dash(s.cfg.Player, s.now) {
		return false
	}
	s.emit(core.EventDash)
	return true
}

// Step advances one tick and returns every event raised since the previous
// Step, including those from Jump, Dash and phase changes.
// Outside the playing phase only the background moves.
func (s *Session) Step() []core.Event {
	s.stars.Update()
	s.frame += s.tickDur
	s.effects.Update(s.frame)

	if s.phase == core.PhasePlaying {
		s.advance()
	}

	events := s.events
	s.events = nil
	return events
}

// advance is one playing tick: timers, physics and collisions, then
// spawning and pruning, then score.
func (s *Session) advance() {
	s.tick++
	s.now += s.tickDur

	s.score.Expire(s.now)

	if outcome := s.simulate(); outcome != OutcomeNone {
		s.resolve(outcome)
		return
	}

	speed := s.score.Speed
	s.platforms = s.spawner.ScrollPlatforms(s.platforms, speed)

	obstacles := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.update(speed)
		if o.X > s.cfg.Platforms.PruneX && !o.Destroyed {
			obstacles = append(obstacles, o)
		}
	}
	s.obstacles = obstacles
	if o, ok := s.spawner.MaybeObstacle(s.platforms, len(s.obstacles)); ok {
		s.obstacles = append(s.obstacles, o)
	}

	powerups := s.powerups[:0]
	for _, p := range s.powerups {
		p.update(speed)
		if p.X > s.cfg.Platforms.PruneX && !p.Collected {
			powerups = append(powerups, p)
		}
	}
	s.powerups = powerups
	for i := range s.powerups {
		if s.player.reaches(s.powerups[i]) {
			s.collect(&s.powerups[i])
		}
	}
	if p, ok := s.spawner.MaybePowerUp(s.platforms, len(s.powerups)); ok {
		s.powerups = append(s.powerups, p)
	}

	s.score.Tick(s.cfg.World)
}

// simulate runs the player's physics and collision pass.
func (s *Session) simulate() Outcome {
	p := &s.player
	p.integrate(s.cfg.Player, s.now)
	p.land(s.platforms, s.cfg.Player.MaxJumps)

	if p.Y > s.cfg.Playfield.Height {
		return OutcomeFell
	}

	for i := range s.obstacles {
		o := &s.obstacles[i]
		if !p.touches(*o) {
			continue
		}
		if !p.Dashing && !s.score.Invincible {
			return OutcomeHit
		}
		o.Destroyed = true
		s.score.AddDestroy(s.cfg.PowerUps.DestroyPoints)
		cx, cy := o.Center()
		p.explode(cx, cy, s.score.Speed, s.fxRng)
		s.emit(core.EventDestroy)
	}

	if s.phase == core.PhasePlaying {
		p.layTrail(s.cfg.Player.TrailLength)
	}
	p.ageCosmetics(s.score.Speed)
	return OutcomeNone
}

// resolve applies a fall or hit: an invincible fall lands the unicorn back
// on a platform, anything else costs a wish.
func (s *Session) resolve(outcome Outcome) {
	if s.score.Invincible {
		if outcome == OutcomeFell {
			s.rescue()
		}
		return
	}

	s.lastLoss = outcome
	s.emit(core.EventHit)
	fx := s.cfg.Effects
	s.effects.HitFlash(fx.HitFlash(), s.frame)
	s.effects.Shake(fx.ShakeIntensity, fx.Shake(), s.frame)
	s.effects.Flash(fx.FlashAlpha, fx.Flash(), s.frame)

	if s.score.LoseWish() {
		s.gameOver()
		return
	}
	s.player.respawn(s.cfg.Player)
}

// rescue puts a falling invincible unicorn on the platform under it. Over a
// gap it hovers at the height of the next platform ahead until that
// platform scrolls underneath.
func (s *Session) rescue() {
	box := s.player.Bounds()
	maxJumps := s.cfg.Player.MaxJumps
	for _, plat := range s.platforms {
		if box.OverlapsX(plat.Bounds()) {
			s.player.settleOn(plat, maxJumps)
			return
		}
	}
	for _, plat := range s.platforms {
		if plat.X >= box.X {
			s.player.hoverAt(plat, maxJumps)
			return
		}
	}
	s.player.respawn(s.cfg.Player)
}

func (s *Session) collect(p *PowerUp) {
	p.Collected = true
	p.Kind.behavior().apply(s)
	s.emit(core.EventPowerUp)
}

// gameOver ends the round and records the score if it is a new best.
func (s *Session) gameOver() {
	s.phase = core.PhaseGameOver
	s.player.freeze()
	s.score.ClearEffects()

	final := s.score.Score
	if s.keeper != nil {
		saved, err := s.keeper.SaveHighScore(final)
		if err != nil {
			saved = final > s.best
		}
		s.newBest = saved
	} else {
		s.newBest = final > s.best
	}
	if s.newBest {
		s.best = final
	}

	s.emit(core.EventGameOver)
	if s.newBest {
		s.emit(core.EventNewHighScore)
	}
}

// State returns the observable values.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:        s.score.Score,
		HighScore:    s.best,
		Wishes:       s.score.Wishes,
		Multiplier:   s.score.Multiplier,
		Invincible:   s.score.Invincible,
		Phase:        s.phase,
		GameOver:     s.phase == core.PhaseGameOver,
		Paused:       s.phase == core.PhasePaused,
		NewHighScore: s.newBest,
	}
}

// Phase returns the lifecycle phase.
func (s *Session) Phase() core.Phase { return s.phase }

// Now returns the session clock.
func (s *Session) Now() time.Duration { return s.now }

// FrameClock returns the effects clock, which keeps running while paused
// and after game over so shakes and flashes fade out.
func (s *Session) FrameClock() time.Duration { return s.frame }

// Tick returns the number of playing ticks simulated across all rounds.
func (s *Session) Tick() uint64 { return s.tick }

// Rounds returns how many games were started.
func (s *Session) Rounds() int { return s.rounds }

// Config returns the active tuning.
func (s *Session) Config() config.UnicornConfig { return s.cfg }

// Player returns a copy of the unicorn.
func (s *Session) Player() Player { return s.player }

// Score returns a copy of the score state.
func (s *Session) Score() ScoreState { return s.score }

// Platforms returns the live platforms. The slice must not be modified.
func (s *Session) Platforms() []Platform { return s.platforms }

// Obstacles returns the live obstacles. The slice must not be modified.
func (s *Session) Obstacles() []Obstacle { return s.obstacles }

// PowerUps returns the live power-ups. The slice must not be modified.
func (s *Session) PowerUps() []PowerUp { return s.powerups }

// Stars returns the background stars.
func (s *Session) Stars() []Star { return s.stars.Stars }

// Effects returns the visual effect timers.
func (s *Session) Effects() *VisualEffects { return s.effects }

// HighScore returns the best score known to the session.
func (s *Session) HighScore() int { return s.best }

// LastLoss returns how the most recent wish was lost.
func (s *Session) LastLoss() Outcome { return s.lastLoss }
