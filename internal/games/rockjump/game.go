// Package rockjump implements Rock Jump: a rock falls under gravity and
// jumps on input while an obstacle scrolls across the screen and wraps
// back to the right edge. There is no collision and no scoring.
package rockjump

import (
	"time"

	"github.com/vovakirdan/rockjump/internal/asset"
	"github.com/vovakirdan/rockjump/internal/config"
	"github.com/vovakirdan/rockjump/internal/core"
	"github.com/vovakirdan/rockjump/internal/ecs"
	"github.com/vovakirdan/rockjump/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "rockjump"

// configPath stores the custom config path set via CLI
var configPath string

// assetsDir overrides the configured assets directory when set via CLI
var assetsDir string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetAssetsDir sets the sprite sheet directory, overriding the config.
func SetAssetsDir(dir string) {
	assetsDir = dir
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game wires the scene, its systems and the play state together.
type Game struct {
	cfg    config.Config
	loader *asset.Loader
	scene  *Scene
	play   *PlayState
	runner *ecs.Runner
	stats  *statsSystem
}

// New creates a game that loads its configuration and sprite sheet on the
// first Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game from an already loaded configuration.
// A nil loader uses the embedded sprite sheet.
func NewWithConfig(cfg config.Config, loader *asset.Loader) *Game {
	if loader == nil {
		loader = asset.NewLoader(nil, asset.NewStorage())
	}
	g := &Game{cfg: cfg, loader: loader}
	g.build()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rock Jump"
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Background returns the configured clear color.
func (g *Game) Background() string {
	return g.cfg.Display.Background
}

// Scene exposes the world for inspection.
func (g *Game) Scene() *Scene {
	return g.scene
}

// PlayState exposes the scene state.
func (g *Game) PlayState() *PlayState {
	return g.play
}

// Reset stops the running scene, if any, and starts it again. The world
// size comes from the display config, so the terminal size is not needed.
func (g *Game) Reset(core.RuntimeConfig) error {
	if g.loader == nil {
		if err := g.load(); err != nil {
			return err
		}
	}

	if g.play.Running() {
		g.play.OnStop()
	}
	g.stats.reset()
	return g.play.OnStart()
}

// load reads the configuration and opens the assets directory.
func (g *Game) load() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	dir := cfg.Assets.Dir
	if assetsDir != "" {
		dir = assetsDir
	}
	loader, err := asset.NewDirLoader(dir, asset.NewStorage())
	if err != nil {
		return err
	}

	g.cfg = cfg
	g.loader = loader
	g.build()
	return nil
}

func (g *Game) build() {
	g.scene = NewScene(g.loader.Storage())
	g.play = NewPlayState(g.cfg, g.loader, g.scene)
	g.stats = &statsSystem{}
	g.runner = ecs.NewRunner()
	g.runner.Register(NewUpdateSystem(g.scene, NewPhysics(g.cfg)))
	g.runner.Register(g.stats)
}

// Step runs one frame covering elapsed real time.
func (g *Game) Step(elapsed time.Duration, in core.InputFrame) core.StepResult {
	if g.play == nil || !g.play.Running() {
		return core.StepResult{State: g.State()}
	}

	f := core.NewFrame(elapsed, in)
	g.runner.Tick(f)
	return core.StepResult{State: g.State(), Events: f.Events}
}

// Render draws the scene through its camera. The screen is cleared first.
func (g *Game) Render(dst *core.Screen) {
	if g.scene == nil {
		dst.Clear()
		return
	}
	g.scene.Draw(dst)
}

// State returns the session counters.
func (g *Game) State() core.GameState {
	if g.stats == nil {
		return core.GameState{}
	}
	return g.stats.state
}

// statsSystem counts frames and the events UpdateSystem emitted.
type statsSystem struct {
	state core.GameState
}

func (s *statsSystem) Phase() ecs.Phase {
	return ecs.PhasePostUpdate
}

func (s *statsSystem) Update(f *core.Frame) {
	s.state.Frames++
	for _, e := range f.Events {
		switch e.Kind {
		case core.EventJump:
			s.state.Jumps++
		case core.EventObstacleWrap:
			s.state.Wraps++
		}
	}
}

func (s *statsSystem) reset() {
	s.state = core.GameState{}
}
