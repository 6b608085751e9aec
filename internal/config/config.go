// Package config provides YAML-based game and display configuration
// for Rock Jump.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for the Rock Jump scene.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Body     BodyConfig     `yaml:"body"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// DisplayConfig describes the window: the world area the camera shows,
// the frame rate and the clear color.
type DisplayConfig struct {
	Title      string  `yaml:"title"`
	Width      float64 `yaml:"width"`  // World units visible horizontally
	Height     float64 `yaml:"height"` // World units visible vertically
	FPS        int     `yaml:"fps"`
	Background string  `yaml:"background"` // Hex color, e.g. "#575C85"
}

// PhysicsConfig defines the per-frame kinematics.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity per unit of dt (negative = down)
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set while jump is pressed
	TimeScale   float64 `yaml:"time_scale"`   // dt = elapsed seconds * time_scale
	ScrollSpeed float64 `yaml:"scroll_speed"` // Obstacle leftward speed per unit of dt
}

// BodyConfig places the falling body.
type BodyConfig struct {
	X             float64 `yaml:"x"`
	InitialHeight float64 `yaml:"initial_height"`
	GroundHeight  float64 `yaml:"ground_height"` // The body rests at ground_height / 2
}

// ObstacleConfig places and sizes the scrolling obstacle.
type ObstacleConfig struct {
	StartX float64 `yaml:"start_x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AssetsConfig points at a sprite sheet directory. Empty means the
// embedded sheet.
type AssetsConfig struct {
	Dir         string `yaml:"dir"`
	SpriteSheet string `yaml:"sprite_sheet"` // Description file name inside Dir
}

// Validate checks the values the scene cannot work without.
func (c Config) Validate() error {
	var errs []error
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %gx%g", c.Display.Width, c.Display.Height))
	}
	if c.Display.FPS <= 0 {
		errs = append(errs, fmt.Errorf("display fps must be positive, got %d", c.Display.FPS))
	}
	if c.Physics.TimeScale <= 0 {
		errs = append(errs, fmt.Errorf("physics time_scale must be positive, got %g", c.Physics.TimeScale))
	}
	if c.Obstacle.Width <= 0 {
		errs = append(errs, fmt.Errorf("obstacle width must be positive, got %g", c.Obstacle.Width))
	}
	if c.Body.GroundHeight < 0 {
		errs = append(errs, fmt.Errorf("body ground_height must not be negative, got %g", c.Body.GroundHeight))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
