// Package tui provides the Bubble Tea integration: the frame loop, input
// mapping, screen rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game frame. It carries the time it fired so
// the model can measure real elapsed time between frames.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// maxFrameTime caps a single frame so a stalled terminal does not move the
// scene by seconds at once.
const maxFrameTime = 250 * time.Millisecond

// frameElapsed returns the time between two ticks, clamped to
// [0, maxFrameTime]. A zero previous tick yields one nominal frame.
func frameElapsed(prev, now time.Time, tickRate int) time.Duration {
	if prev.IsZero() {
		if tickRate <= 0 {
			tickRate = 60
		}
		return time.Second / time.Duration(tickRate)
	}
	d := now.Sub(prev)
	if d < 0 {
		return 0
	}
	if d > maxFrameTime {
		return maxFrameTime
	}
	return d
}
