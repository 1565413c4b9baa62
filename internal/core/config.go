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

// TickMillis returns the simulated duration of one tick in milliseconds.
func (c RuntimeConfig) TickMillis() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60.0
	}
	return 1000.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int  // Current score (lane counter)
	GameOver   bool // Whether the game has ended
	Paused     bool // Whether the game is paused
	RetryReady bool // Whether a restart is accepted yet
}

// EventKind identifies something the simulation wants the platform to react to.
type EventKind int

const (
	// EventStepCommitted fires when a queued move finishes animating.
	EventStepCommitted EventKind = iota + 1
	// EventCollision fires once per session when the player is hit.
	EventCollision
	// EventRetryReady fires when the retry prompt becomes available.
	EventRetryReady
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStepCommitted:
		return "StepCommitted"
	case EventCollision:
		return "Collision"
	case EventRetryReady:
		return "RetryReady"
	default:
		return "Unknown"
	}
}

// Event is a single notification produced during a tick.
type Event struct {
	Kind   EventKind
	Action Action // Move that was committed (EventStepCommitted only)
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
