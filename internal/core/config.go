package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the terminal size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second requested from the platform (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState summarizes a running scene for the platform.
// There is no score and no game over: the counters only feed session history.
type GameState struct {
	Frames int // Frames simulated since the scene started
	Jumps  int // Frames in which the jump impulse was applied
	Wraps  int // Times the obstacle wrapped back to the right edge
}

// EventKind identifies something notable that happened during a frame.
type EventKind int

const (
	EventJump         EventKind = iota // Jump impulse applied to a falling body
	EventObstacleWrap                  // Obstacle reset to the right edge
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "Jump"
	case EventObstacleWrap:
		return "ObstacleWrap"
	default:
		return "Unknown"
	}
}

// Event is emitted by systems during a frame and handed to the platform
// through StepResult.
type Event struct {
	Kind   EventKind
	Entity uint64 // Raw id of the entity the event is about
}

// StepResult is returned by Game.Step() after each frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this frame.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
