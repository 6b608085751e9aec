package rockjump

import (
	"testing"
	"time"
)

func TestFallingBodyAdvance(t *testing.T) {
	p := DefaultPhysics()

	tests := []struct {
		name    string
		body    FallingBody
		dt      float64
		jump    bool
		wantY   float64
		wantVel float64
	}{
		{"free fall from start", FallingBody{Y: 100}, 1, false, 99.5, -0.5},
		{"falling above ground", FallingBody{Y: 30, Velocity: -2}, 1, false, 27.5, -2.5},
		{"lands on ground", FallingBody{Y: 30, Velocity: -4}, 1, false, 26, 0},
		{"lands exactly on ground", FallingBody{Y: 28.5, Velocity: -2}, 1, false, 26, 0},
		{"jump overrides fall", FallingBody{Y: 60, Velocity: -10}, 1, true, 66.5, 6.5},
		{"jump from ground", FallingBody{Y: 26}, 1, true, 32.5, 6.5},
		{"rising", FallingBody{Y: 50, Velocity: 3}, 2, false, 54, 2},
		{"zero dt", FallingBody{Y: 50, Velocity: 3}, 0, false, 50, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.body
			b.Advance(tt.dt, tt.jump, p)
			if b.Y != tt.wantY || b.Velocity != tt.wantVel {
				t.Errorf("Advance = (y %v, v %v), want (y %v, v %v)", b.Y, b.Velocity, tt.wantY, tt.wantVel)
			}
		})
	}
}

func TestFallingBodyRestIsFixedPoint(t *testing.T) {
	p := DefaultPhysics()
	b := FallingBody{Y: 30, Velocity: -4}

	b.Advance(1, false, p)
	rest := b
	for i := 0; i < 10; i++ {
		b.Advance(1.5, false, p)
		if b != rest {
			t.Fatalf("frame %d: body = %+v, want resting %+v", i, b, rest)
		}
	}
}

func TestFallingBodyNeverBelowGround(t *testing.T) {
	p := DefaultPhysics()
	b := FallingBody{Y: 400, Velocity: 20}

	for i := 0; i < 500; i++ {
		b.Advance(0.7, i%37 == 0, p)
		if b.Y < p.GroundY {
			t.Fatalf("frame %d: y = %v below ground %v", i, b.Y, p.GroundY)
		}
		if b.Y == p.GroundY && b.Velocity != 0 && i%37 != 0 {
			t.Fatalf("frame %d: resting body has velocity %v", i, b.Velocity)
		}
	}
}

func TestScrollingObstacleAdvance(t *testing.T) {
	p := DefaultPhysics()

	tests := []struct {
		name        string
		x           float64
		dt          float64
		wantX       float64
		wantWrapped bool
	}{
		{"scrolls left", 490, 1, 485, false},
		{"scrolls by dt", 490, 2.5, 477.5, false},
		{"wraps past left edge", -150, 1, 500, true},
		{"wraps exactly at threshold", -146.5, 1, 500, true},
		{"just above threshold", -146, 1, -151, false},
		{"large dt resets without remainder", 100, 100, 500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := ScrollingObstacle{X: tt.x}
			wrapped := o.Advance(tt.dt, p)
			if o.X != tt.wantX || wrapped != tt.wantWrapped {
				t.Errorf("Advance = (x %v, wrapped %v), want (x %v, wrapped %v)", o.X, wrapped, tt.wantX, tt.wantWrapped)
			}
		})
	}
}

func TestScrollingObstacleStaysInRange(t *testing.T) {
	p := DefaultPhysics()
	o := ScrollingObstacle{X: 490}

	for i := 0; i < 1000; i++ {
		o.Advance(1.3, p)
		if o.X < p.WrapX || o.X > p.ResetX {
			t.Fatalf("frame %d: x = %v outside [%v, %v]", i, o.X, p.WrapX, p.ResetX)
		}
	}
}

func TestDefaultPhysics(t *testing.T) {
	p := DefaultPhysics()

	want := Physics{
		Gravity:     -0.5,
		JumpImpulse: 7,
		TimeScale:   70,
		GroundY:     26,
		ScrollSpeed: 5,
		WrapX:       -151.5,
		ResetX:      500,
	}
	if p != want {
		t.Errorf("DefaultPhysics() = %+v, want %+v", p, want)
	}
}

func TestDeltaTime(t *testing.T) {
	p := DefaultPhysics()

	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{time.Second, 70},
		{500 * time.Millisecond, 35},
		{2 * time.Second, 140},
	}

	for _, tt := range tests {
		if got := p.DeltaTime(tt.elapsed); got != tt.want {
			t.Errorf("DeltaTime(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}
