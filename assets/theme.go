// Package assets holds the static content of the game: glyphs and the
// monster table.
package assets

import "github.com/gdamore/tcell/v2"

// Map and player glyphs.
const (
	GlyphPlayer = "@"
	GlyphWall   = "#"
	GlyphFloor  = "."
)

// Colors used for the map and the player.
var (
	ColorPlayer = tcell.ColorYellow
	ColorWall   = tcell.ColorGreen
	ColorFloor  = tcell.ColorTeal
	ColorDimmed = tcell.ColorGray
)
