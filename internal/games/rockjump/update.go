package rockjump

import (
	"github.com/vovakirdan/rockjump/internal/core"
	"github.com/vovakirdan/rockjump/internal/ecs"
	"github.com/vovakirdan/rockjump/internal/render"
)

// UpdateSystem moves every falling body and scrolling obstacle once per
// frame and mirrors the result into their transforms.
type UpdateSystem struct {
	scene   *Scene
	physics Physics
}

// NewUpdateSystem creates the system for scene.
func NewUpdateSystem(scene *Scene, physics Physics) *UpdateSystem {
	return &UpdateSystem{scene: scene, physics: physics}
}

// Phase implements ecs.System.
func (s *UpdateSystem) Phase() ecs.Phase {
	return ecs.PhaseUpdate
}

// Update implements ecs.System.
func (s *UpdateSystem) Update(f *core.Frame) {
	s.step(s.physics.DeltaTime(f.Elapsed), f.Input.Has(core.ActionJump), f.Emit)
}

// Step runs one frame with an explicit dt and returns the events it emitted.
func (s *UpdateSystem) Step(dt float64, jump bool) []core.Event {
	var f core.Frame
	s.step(dt, jump, f.Emit)
	return f.Events
}

func (s *UpdateSystem) step(dt float64, jump bool, emit func(core.EventKind, uint64)) {
	ecs.Each2(s.scene.Bodies, s.scene.Transforms, func(id ecs.EntityID, b *FallingBody, t *render.Transform) {
		b.Advance(dt, jump, s.physics)
		t.Y = b.Y
		if jump {
			emit(core.EventJump, uint64(id))
		}
	})

	ecs.Each2(s.scene.Obstacles, s.scene.Transforms, func(id ecs.EntityID, o *ScrollingObstacle, t *render.Transform) {
		if o.Advance(dt, s.physics) {
			emit(core.EventObstacleWrap, uint64(id))
		}
		t.X = o.X
	})
}
