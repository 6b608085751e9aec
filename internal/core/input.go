package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, Up, W, Enter - apply the jump impulse
	ActionRestart           // R - stop and restart the scene
	ActionHelp              // ? - toggle the full help footer
	ActionScreenshot        // Ctrl+S - dump the screen to a text file
	ActionQuit              // Q, Ctrl+C - exit the game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one frame.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Frame is the per-tick context handed to systems: the real time elapsed
// since the previous frame, the input polled for this frame, and the events
// systems emitted while it ran.
type Frame struct {
	Elapsed time.Duration
	Input   InputFrame
	Events  []Event
}

// NewFrame creates a frame context for one tick.
func NewFrame(elapsed time.Duration, in InputFrame) *Frame {
	return &Frame{
		Elapsed: elapsed,
		Input:   in,
	}
}

// Emit records an event for this frame.
func (f *Frame) Emit(kind EventKind, entity uint64) {
	f.Events = append(f.Events, Event{Kind: kind, Entity: entity})
}
