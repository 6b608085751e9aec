// Package render owns the components the renderer reads (Transform, Camera,
// SpriteRender) and draws sprites through the camera into a core.Screen.
package render

import (
	"math"

	"github.com/vovakirdan/rockjump/internal/asset"
)

// Transform is an entity's position in world units, y pointing up.
// Sprites are drawn centred on it; higher Z draws on top.
type Transform struct {
	X, Y, Z float64
}

// SetTranslation sets all three coordinates.
func (t *Transform) SetTranslation(x, y, z float64) {
	t.X, t.Y, t.Z = x, y, z
}

// Camera is an orthographic 2D projection of Width x Height world units
// centred on the camera entity's Transform.
type Camera struct {
	Width  float64
	Height float64
}

// Standard2D returns a camera showing width x height world units.
func Standard2D(width, height float64) Camera {
	return Camera{Width: width, Height: height}
}

// SpriteRender attaches a sprite from a sheet to an entity.
type SpriteRender struct {
	Sheet asset.Handle
	Index int
}

// Viewport maps world coordinates onto a cols x rows cell grid.
type Viewport struct {
	left, top      float64
	scaleX, scaleY float64
}

// Viewport builds the mapping for a camera centred at center.
func (c Camera) Viewport(center Transform, cols, rows int) Viewport {
	return Viewport{
		left:   center.X - c.Width/2,
		top:    center.Y + c.Height/2,
		scaleX: float64(cols) / c.Width,
		scaleY: float64(rows) / c.Height,
	}
}

// Project returns the fractional cell column and row of a world point.
func (v Viewport) Project(x, y float64) (col, row float64) {
	return (x - v.left) * v.scaleX, (v.top - y) * v.scaleY
}

// cellSpan converts a projected interval to whole cells, at least one wide.
func cellSpan(from, to float64) (start, size int) {
	start = int(math.Round(from))
	end := int(math.Round(to))
	if end <= start {
		end = start + 1
	}
	return start, end - start
}
