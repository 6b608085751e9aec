package ecs

import (
	"sort"

	"github.com/vovakirdan/rockjump/internal/core"
)

// Phase defines execution ordering within a single frame.
type Phase int

const (
	PhaseInput      Phase = iota // 0: translate input into component state
	PhaseUpdate                  // 1: game logic
	PhasePostUpdate              // 2: derived state (transforms, bookkeeping)
)

// System is the interface every ECS system implements.
type System interface {
	Phase() Phase
	Update(f *core.Frame)
}

// Runner executes systems in phase order each frame. Systems sharing a
// phase run in registration order.
type Runner struct {
	systems []System
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 4),
	}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// Len returns the number of registered systems.
func (r *Runner) Len() int {
	return len(r.systems)
}

func (r *Runner) Tick(f *core.Frame) {
	r.ensureSorted()
	for _, s := range r.systems {
		s.Update(f)
	}
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
