// Package asset loads sprite sheets: a text texture atlas plus a TOML
// description of the sprites cut out of it.
package asset

import (
	"fmt"

	"github.com/vovakirdan/rockjump/internal/core"
)

// Transparent is the atlas rune that leaves the destination cell untouched.
const Transparent = ' '

// SheetDescription is the TOML layout of a sprite sheet description file.
type SheetDescription struct {
	Texture       string              `toml:"texture"`
	TextureWidth  int                 `toml:"texture_width"`
	TextureHeight int                 `toml:"texture_height"`
	Sprites       []SpriteDescription `toml:"sprites"`
}

// SpriteDescription locates one sprite inside the atlas.
type SpriteDescription struct {
	Name        string  `toml:"name"`
	X           int     `toml:"x"`
	Y           int     `toml:"y"`
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	WorldWidth  float64 `toml:"world_width"`
	WorldHeight float64 `toml:"world_height"`
	Color       string  `toml:"color"`
}

// Sprite is a resolved sprite: its atlas rect, the size it occupies in the
// world and its color.
type Sprite struct {
	Name        string
	Rect        core.Rect
	WorldWidth  float64
	WorldHeight float64
	Color       core.Color
}

// SpriteSheet is a loaded texture atlas with its sprites.
type SpriteSheet struct {
	texture [][]rune
	sprites []Sprite
}

// Len returns the number of sprites in the sheet.
func (s *SpriteSheet) Len() int {
	return len(s.sprites)
}

// Sprite returns the sprite at index.
func (s *SpriteSheet) Sprite(index int) (Sprite, bool) {
	if index < 0 || index >= len(s.sprites) {
		return Sprite{}, false
	}
	return s.sprites[index], true
}

// Glyph returns the atlas rune at (x, y) relative to the sprite's rect.
// Coordinates outside the sprite are transparent.
func (s *SpriteSheet) Glyph(sp Sprite, x, y int) rune {
	if x < 0 || y < 0 || x >= sp.Rect.W || y >= sp.Rect.H {
		return Transparent
	}
	return s.texture[sp.Rect.Y+y][sp.Rect.X+x]
}

// newSpriteSheet validates a description against its texture lines.
// Lines shorter than the texture width are padded with transparent cells.
func newSpriteSheet(desc SheetDescription, lines []string) (*SpriteSheet, error) {
	if desc.TextureWidth <= 0 || desc.TextureHeight <= 0 {
		return nil, fmt.Errorf("texture size must be positive, got %dx%d", desc.TextureWidth, desc.TextureHeight)
	}
	if len(lines) > desc.TextureHeight {
		return nil, fmt.Errorf("texture has %d rows, description says %d", len(lines), desc.TextureHeight)
	}

	texture := make([][]rune, desc.TextureHeight)
	for y := range texture {
		row := make([]rune, desc.TextureWidth)
		for x := range row {
			row[x] = Transparent
		}
		if y < len(lines) {
			runes := []rune(lines[y])
			if len(runes) > desc.TextureWidth {
				return nil, fmt.Errorf("texture row %d has %d cells, description says %d", y, len(runes), desc.TextureWidth)
			}
			copy(row, runes)
		}
		texture[y] = row
	}

	bounds := core.NewRect(0, 0, desc.TextureWidth, desc.TextureHeight)
	sprites := make([]Sprite, 0, len(desc.Sprites))
	for i, sd := range desc.Sprites {
		rect := core.NewRect(sd.X, sd.Y, sd.Width, sd.Height)
		if rect.Empty() || !bounds.ContainsRect(rect) {
			return nil, fmt.Errorf("sprite %d (%q): rect %+v outside %dx%d texture", i, sd.Name, rect, desc.TextureWidth, desc.TextureHeight)
		}
		if sd.WorldWidth <= 0 || sd.WorldHeight <= 0 {
			return nil, fmt.Errorf("sprite %d (%q): world size must be positive", i, sd.Name)
		}
		color, ok := core.ParseColor(sd.Color)
		if !ok {
			return nil, fmt.Errorf("sprite %d (%q): unknown color %q", i, sd.Name, sd.Color)
		}
		sprites = append(sprites, Sprite{
			Name:        sd.Name,
			Rect:        rect,
			WorldWidth:  sd.WorldWidth,
			WorldHeight: sd.WorldHeight,
			Color:       color,
		})
	}

	return &SpriteSheet{texture: texture, sprites: sprites}, nil
}
