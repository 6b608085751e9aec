package render

import (
	"sort"

	"github.com/vovakirdan/rockjump/internal/asset"
	"github.com/vovakirdan/rockjump/internal/core"
	"github.com/vovakirdan/rockjump/internal/ecs"
)

// Renderer holds the render component stores of a world and draws them.
type Renderer struct {
	Transforms *ecs.Store[Transform]
	Cameras    *ecs.Store[Camera]
	Sprites    *ecs.Store[SpriteRender]
	assets     *asset.Storage
}

// NewRenderer creates the render stores in w. Sprite sheets are resolved
// through assets.
func NewRenderer(w *ecs.World, assets *asset.Storage) *Renderer {
	return &Renderer{
		Transforms: ecs.NewStore[Transform](w),
		Cameras:    ecs.NewStore[Camera](w),
		Sprites:    ecs.NewStore[SpriteRender](w),
		assets:     assets,
	}
}

type drawItem struct {
	id        ecs.EntityID
	transform Transform
	sprite    SpriteRender
}

// Draw clears dst and draws every sprite through the first camera found.
// Without a camera nothing is drawn.
func (r *Renderer) Draw(dst *core.Screen) {
	dst.Clear()

	_, cam, camTransform, ok := ecs.First(r.Cameras, r.Transforms)
	if !ok || cam.Width <= 0 || cam.Height <= 0 {
		return
	}
	view := cam.Viewport(*camTransform, dst.Width(), dst.Height())

	items := make([]drawItem, 0, r.Sprites.Len())
	ecs.Each2(r.Sprites, r.Transforms, func(id ecs.EntityID, s *SpriteRender, t *Transform) {
		items = append(items, drawItem{id: id, transform: *t, sprite: *s})
	})
	sort.Slice(items, func(i, j int) bool {
		if items[i].transform.Z != items[j].transform.Z {
			return items[i].transform.Z < items[j].transform.Z
		}
		return items[i].id.Index() < items[j].id.Index()
	})

	for _, it := range items {
		sheet, ok := r.assets.Get(it.sprite.Sheet)
		if !ok {
			continue
		}
		sp, ok := sheet.Sprite(it.sprite.Index)
		if !ok {
			continue
		}
		blit(dst, view, sheet, sp, it.transform)
	}
}

// blit scales a sprite (nearest neighbour) onto the cells covered by its
// world rectangle.
func blit(dst *core.Screen, view Viewport, sheet *asset.SpriteSheet, sp asset.Sprite, t Transform) {
	left, top := view.Project(t.X-sp.WorldWidth/2, t.Y+sp.WorldHeight/2)
	right, bottom := view.Project(t.X+sp.WorldWidth/2, t.Y-sp.WorldHeight/2)

	col0, cols := cellSpan(left, right)
	row0, rows := cellSpan(top, bottom)

	// Clip to the screen before sampling
	fromX := core.Max(0, -col0)
	toX := core.Min(cols, dst.Width()-col0)
	fromY := core.Max(0, -row0)
	toY := core.Min(rows, dst.Height()-row0)

	for dy := fromY; dy < toY; dy++ {
		sy := dy * sp.Rect.H / rows
		for dx := fromX; dx < toX; dx++ {
			sx := dx * sp.Rect.W / cols
			g := sheet.Glyph(sp, sx, sy)
			if g == asset.Transparent {
				continue
			}
			dst.SetCell(col0+dx, row0+dy, core.Cell{Rune: g, Color: sp.Color})
		}
	}
}
