package render

import (
	"dungeoncrawl/assets"
	"dungeoncrawl/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// TileLook is the glyph and style for one tile state.
type TileLook struct {
	Glyph string
	Style tcell.Style
}

// Palette holds the looks used to draw terrain. Revealed tiles that are not
// currently visible use the dim variants.
type Palette struct {
	Wall     TileLook
	Floor    TileLook
	DimWall  TileLook
	DimFloor TileLook
}

// DefaultPalette draws walls as '#' and floors as '.', greyed out when
// remembered but not seen.
var DefaultPalette = Palette{
	Wall:     TileLook{assets.GlyphWall, base.Foreground(assets.ColorWall)},
	Floor:    TileLook{assets.GlyphFloor, base.Foreground(assets.ColorFloor)},
	DimWall:  TileLook{assets.GlyphWall, base.Foreground(assets.ColorDimmed)},
	DimFloor: TileLook{assets.GlyphFloor, base.Foreground(assets.ColorDimmed)},
}

var base = tcell.StyleDefault.Background(tcell.ColorBlack)

// Look picks the glyph and style for a tile.
func (p Palette) Look(t gamemap.TileType, visible bool) TileLook {
	switch {
	case t == gamemap.TileWall && visible:
		return p.Wall
	case t == gamemap.TileWall:
		return p.DimWall
	case visible:
		return p.Floor
	default:
		return p.DimFloor
	}
}
