package rockjump

import (
	"fmt"

	"github.com/vovakirdan/rockjump/internal/asset"
	"github.com/vovakirdan/rockjump/internal/config"
	"github.com/vovakirdan/rockjump/internal/ecs"
	"github.com/vovakirdan/rockjump/internal/render"
)

// Sprite indices inside the sheet.
const (
	BodySprite     = 0
	ObstacleSprite = 1
)

// Scene is the world and every component store the game uses.
type Scene struct {
	World     *ecs.World
	Bodies    *ecs.Store[FallingBody]
	Obstacles *ecs.Store[ScrollingObstacle]
	*render.Renderer
}

// NewScene creates an empty world. Sprite sheets resolve through assets.
func NewScene(assets *asset.Storage) *Scene {
	w := ecs.NewWorld()
	return &Scene{
		World:     w,
		Bodies:    ecs.NewStore[FallingBody](w),
		Obstacles: ecs.NewStore[ScrollingObstacle](w),
		Renderer:  render.NewRenderer(w, assets),
	}
}

// PlayState is the only scene state. OnStart spawns the camera, the body and
// the obstacle; OnStop deletes everything.
type PlayState struct {
	cfg     config.Config
	loader  *asset.Loader
	scene   *Scene
	running bool

	Sheet    asset.Handle
	Camera   ecs.EntityID
	Body     ecs.EntityID
	Obstacle ecs.EntityID
}

// NewPlayState creates the state for scene, loading sprites through loader.
func NewPlayState(cfg config.Config, loader *asset.Loader, scene *Scene) *PlayState {
	return &PlayState{
		cfg:    cfg,
		loader: loader,
		scene:  scene,
	}
}

// Running reports whether OnStart ran without a matching OnStop.
func (p *PlayState) Running() bool {
	return p.running
}

// OnStart loads the sprite sheet and populates the world.
func (p *PlayState) OnStart() error {
	h, err := p.LoadSpriteSheet()
	if err != nil {
		return err
	}
	p.Sheet = h
	p.Camera = p.SetCamera()
	p.Body = p.SetBody(h)
	p.Obstacle = p.SetObstacle(h)
	p.running = true
	return nil
}

// OnStop deletes every entity. Nothing is saved.
func (p *PlayState) OnStop() {
	p.scene.World.DeleteAll()
	p.Camera, p.Body, p.Obstacle = 0, 0, 0
	p.running = false
}

// LoadSpriteSheet loads the configured sheet and checks that it has the
// sprites the scene draws.
func (p *PlayState) LoadSpriteSheet() (asset.Handle, error) {
	h, err := p.loader.LoadSpriteSheet(p.cfg.Assets.SpriteSheet)
	if err != nil {
		return 0, err
	}
	sheet, ok := p.loader.Storage().Get(h)
	if !ok {
		return 0, fmt.Errorf("rockjump: sprite sheet %s not in storage", p.cfg.Assets.SpriteSheet)
	}
	if sheet.Len() <= ObstacleSprite {
		return 0, fmt.Errorf("rockjump: sprite sheet %s has %d sprites, need %d",
			p.cfg.Assets.SpriteSheet, sheet.Len(), ObstacleSprite+1)
	}
	return h, nil
}

// SetCamera adds a camera centred on the display showing all of it.
func (p *PlayState) SetCamera() ecs.EntityID {
	d := p.cfg.Display
	e := p.scene.World.CreateEntity()
	p.scene.Transforms.Set(e, render.Transform{X: d.Width / 2, Y: d.Height / 2, Z: 1})
	p.scene.Cameras.Set(e, render.Standard2D(d.Width, d.Height))
	return e
}

// SetBody adds the falling body at its initial height.
func (p *PlayState) SetBody(sheet asset.Handle) ecs.EntityID {
	b := p.cfg.Body
	e := p.scene.World.CreateEntity()
	p.scene.Transforms.Set(e, render.Transform{X: b.X, Y: b.InitialHeight})
	p.scene.Bodies.Set(e, FallingBody{Y: b.InitialHeight})
	p.scene.Sprites.Set(e, render.SpriteRender{Sheet: sheet, Index: BodySprite})
	return e
}

// SetObstacle adds the obstacle at its start position.
func (p *PlayState) SetObstacle(sheet asset.Handle) ecs.EntityID {
	o := p.cfg.Obstacle
	e := p.scene.World.CreateEntity()
	p.scene.Transforms.Set(e, render.Transform{X: o.StartX, Y: o.Y})
	p.scene.Obstacles.Set(e, ScrollingObstacle{X: o.StartX})
	p.scene.Sprites.Set(e, render.SpriteRender{Sheet: sheet, Index: ObstacleSprite})
	return e
}
