package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The simulation runs in world units; screen size only affects rendering.
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

// Phase is the coarse state of a game session.
type Phase int

const (
	PhaseIntro Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// GameState summarizes the session for the platform layer.
type GameState struct {
	Score          int
	Lives          int
	HighScore      int
	DifficultyStep int
	Frames         int
	Phase          Phase
	GameOver       bool
	Paused         bool
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventCollision EventKind = iota
	EventCrossing
	EventDifficultyUp
	EventGameOver
	EventNewHighScore
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCollision:
		return "collision"
	case EventCrossing:
		return "crossing"
	case EventDifficultyUp:
		return "difficulty_up"
	case EventGameOver:
		return "game_over"
	case EventNewHighScore:
		return "new_high_score"
	default:
		return "unknown"
	}
}

// Event is emitted by a tick. Value carries the relevant number
// (lives left, new score, new difficulty step, final score).
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
