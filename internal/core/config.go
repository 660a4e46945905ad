package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the coarse lifecycle state of a game session.
type Phase string

const (
	PhaseMenu     Phase = "menu"
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "gameOver"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score        int   // Current score (floored)
	HighScore    int   // Best score known to the game
	Wishes       int   // Remaining lives
	Multiplier   int   // Active score multiplier
	Invincible   bool  // Whether the invincibility power-up is active
	Phase        Phase // Lifecycle phase
	GameOver     bool  // Whether the game has ended
	Paused       bool  // Whether the game is paused
	NewHighScore bool  // Whether the finished game set a new best
}

// Event is a fire-and-forget signal raised during a tick.
// Audio and UI layers consume events; the simulation never waits on them.
type Event uint8

const (
	EventJump Event = iota + 1
	EventDash
	EventDestroy
	EventHit
	EventPowerUp
	EventGameStart
	EventGameOver
	EventNewHighScore
)

// String returns a short name for the event.
func (e Event) String() string {
	switch e {
	case EventJump:
		return "jump"
	case EventDash:
		return "dash"
	case EventDestroy:
		return "destroy"
	case EventHit:
		return "hit"
	case EventPowerUp:
		return "powerup"
	case EventGameStart:
		return "start"
	case EventGameOver:
		return "gameover"
	case EventNewHighScore:
		return "highscore"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
