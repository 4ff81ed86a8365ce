// Package render draws the dungeon, its entities and the message log onto a
// tcell screen. It only reads simulation state.
package render

import (
	"sort"

	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDHeight is the number of rows reserved at the bottom for the HUD.
const HUDHeight = 7

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen  tcell.Screen
	camera  *Camera
	palette Palette
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen:  screen,
		camera:  NewCamera(0, 0, w, max(0, h-HUDHeight)),
		palette: DefaultPalette,
	}
}

// Resize fits the map viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(0, h-HUDHeight))
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// WorldToScreen converts world coordinates to screen coordinates.
// visible is false when the position falls outside the viewport.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// DrawFrame clears the screen and renders tiles and entities. Call DrawHUD
// afterwards to finish and show the frame.
func (r *Renderer) DrawFrame(w *ecs.World, gmap *gamemap.GameMap) {
	r.screen.Clear()
	r.drawMap(gmap)
	r.drawEntities(w, gmap)
}

// drawMap renders every revealed tile, dimming those not currently visible.
func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			idx := gmap.Idx(x, y)
			if !gmap.RevealedTiles[idx] {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			look := r.palette.Look(gmap.At(x, y), gmap.VisibleTiles[idx])
			r.putGlyph(sx, sy, look.Glyph, look.Style)
		}
	}
}

// sprite is an entity ready to draw at a screen cell.
type sprite struct {
	sx, sy int
	look   component.Renderable
}

// drawEntities renders entities standing on visible tiles. Lower
// RenderOrder values are drawn first and end up underneath.
func (r *Renderer) drawEntities(w *ecs.World, gmap *gamemap.GameMap) {
	var sprites []sprite
	for _, id := range w.Query(component.CRenderable, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if !gmap.InBounds(pos.X, pos.Y) || !gmap.VisibleTiles[gmap.Idx(pos.X, pos.Y)] {
			continue
		}
		sx, sy, onScreen := r.camera.WorldToScreen(pos.X, pos.Y)
		if !onScreen {
			continue
		}
		sprites = append(sprites, sprite{sx: sx, sy: sy, look: w.Get(id, component.CRenderable).(component.Renderable)})
	}
	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].look.RenderOrder < sprites[j].look.RenderOrder
	})
	for _, sp := range sprites {
		style := tcell.StyleDefault.Foreground(sp.look.FGColor).Background(sp.look.BGColor)
		r.putGlyph(sp.sx, sp.sy, sp.look.Glyph, style)
	}
}

// putGlyph draws glyph at (x, y). The first rune is the base cell and any
// remaining runes combine with it. Wide glyphs blank the next column.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) > 1 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
