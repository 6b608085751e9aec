package config

import (
	_ "embed"
)

//go:embed defaults/rockjump.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/rockjump.yaml.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Title:      "Rock Jump",
			Width:      500,
			Height:     500,
			FPS:        60,
			Background: "#575C85",
		},
		Physics: PhysicsConfig{
			Gravity:     -0.5,
			JumpImpulse: 7,
			TimeScale:   70,
			ScrollSpeed: 5,
		},
		Body: BodyConfig{
			X:             125, // display width / 4
			InitialHeight: 100,
			GroundHeight:  52,
		},
		Obstacle: ObstacleConfig{
			StartX: 490, // display height - 10
			Y:      121, // obstacle height / 2 - 30
			Width:  303,
			Height: 302,
		},
		Assets: AssetsConfig{
			SpriteSheet: "spritesheet.toml",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
