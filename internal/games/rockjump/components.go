package rockjump

import (
	"time"

	"github.com/vovakirdan/rockjump/internal/config"
)

// FallingBody is the rock: a vertical position above the ground and a
// signed velocity, positive upward.
type FallingBody struct {
	Y        float64
	Velocity float64
}

// ScrollingObstacle is the obstacle's horizontal position.
type ScrollingObstacle struct {
	X float64
}

// Physics holds the per-frame kinematics in world units.
type Physics struct {
	Gravity     float64 // Added to velocity per unit of dt
	JumpImpulse float64 // Velocity set when jump is pressed
	TimeScale   float64 // dt = elapsed seconds * TimeScale
	GroundY     float64 // Lowest Y a body can reach
	ScrollSpeed float64 // Obstacle distance per unit of dt
	WrapX       float64 // An obstacle at or left of this X is reset
	ResetX      float64 // Where a reset obstacle reappears
}

// NewPhysics derives the kinematics from the configuration.
func NewPhysics(cfg config.Config) Physics {
	return Physics{
		Gravity:     cfg.Physics.Gravity,
		JumpImpulse: cfg.Physics.JumpImpulse,
		TimeScale:   cfg.Physics.TimeScale,
		GroundY:     cfg.Body.GroundHeight / 2,
		ScrollSpeed: cfg.Physics.ScrollSpeed,
		WrapX:       -cfg.Obstacle.Width / 2,
		ResetX:      cfg.Display.Width,
	}
}

// DefaultPhysics returns the kinematics of the default configuration.
func DefaultPhysics() Physics {
	return NewPhysics(config.Default())
}

// DeltaTime converts real elapsed time to simulation units.
func (p Physics) DeltaTime(elapsed time.Duration) float64 {
	return elapsed.Seconds() * p.TimeScale
}

// Advance integrates the body over dt. A pressed jump replaces the velocity
// before gravity is applied. A body that would end at or below the ground
// is put on it at rest.
func (b *FallingBody) Advance(dt float64, jump bool, p Physics) {
	if jump {
		b.Velocity = p.JumpImpulse
	}

	v := b.Velocity + p.Gravity*dt
	y := b.Y + v*dt
	if y <= p.GroundY {
		v = 0
		y = p.GroundY
	}

	b.Velocity = v
	b.Y = y
}

// Advance scrolls the obstacle left over dt and reports whether it was
// reset to the right edge. The reset is exact: no remainder carries over.
func (o *ScrollingObstacle) Advance(dt float64, p Physics) bool {
	x := o.X - p.ScrollSpeed*dt
	if x <= p.WrapX {
		o.X = p.ResetX
		return true
	}
	o.X = x
	return false
}
