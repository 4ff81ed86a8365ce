package gamemap

import (
	"fmt"

	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/geom"
)

const diagonalCost = 1.45

var _ geom.BaseMap = (*GameMap)(nil)

// GameMap holds the tile grid, room list, visibility overlays and the
// per-tick occupancy index for one dungeon level. Every per-tile slice is
// indexed y*Width + x.
type GameMap struct {
	Width, Height int
	Tiles         []TileType
	Rooms         []Rect

	RevealedTiles []bool
	VisibleTiles  []bool

	// Blocked and TileContent are derived by the map indexing system and are
	// stale from the first movement after that pass.
	Blocked     []bool
	TileContent [][]ecs.EntityID
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	size := width * height
	tiles := make([]TileType, size)
	for i := range tiles {
		tiles[i] = TileWall
	}
	return &GameMap{
		Width:         width,
		Height:        height,
		Tiles:         tiles,
		RevealedTiles: make([]bool, size),
		VisibleTiles:  make([]bool, size),
		Blocked:       make([]bool, size),
		TileContent:   make([][]ecs.EntityID, size),
	}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// InInterior reports whether (x, y) lies inside the outer wall ring.
func (m *GameMap) InInterior(x, y int) bool {
	return x >= 1 && x < m.Width-1 && y >= 1 && y < m.Height-1
}

// Idx converts (x, y) to a flat index. An out-of-range coordinate means the
// simulation is corrupt, so Idx panics instead of returning a bad index.
func (m *GameMap) Idx(x, y int) int {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("gamemap: (%d,%d) outside %dx%d map", x, y, m.Width, m.Height))
	}
	return geom.IdxOf(geom.Point{X: x, Y: y}, m.Width)
}

// At returns the tile type at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) TileType {
	return m.Tiles[m.Idx(x, y)]
}

// Set replaces the tile at (x, y). Panics if out of bounds.
func (m *GameMap) Set(x, y int, t TileType) {
	m.Tiles[m.Idx(x, y)] = t
}

// IsWalkable returns true when (x, y) is in bounds and a floor.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y*m.Width+x] == TileFloor
}

// IsBlocked returns true when (x, y) is off the map or flagged blocked.
func (m *GameMap) IsBlocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Blocked[y*m.Width+x]
}

// Dimensions implements geom.BaseMap.
func (m *GameMap) Dimensions() (int, int) {
	return m.Width, m.Height
}

// IsOpaque implements geom.BaseMap: walls block sight.
func (m *GameMap) IsOpaque(idx int) bool {
	return m.Tiles[idx] == TileWall
}

// Neighbors implements geom.BaseMap: the eight surrounding tiles that are
// not blocked, with cardinal steps costing 1 and diagonal steps 1.45.
func (m *GameMap) Neighbors(idx int) []geom.Exit {
	x, y := idx%m.Width, idx/m.Width
	exits := make([]geom.Exit, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if m.IsBlocked(nx, ny) {
				continue
			}
			cost := 1.0
			if dx != 0 && dy != 0 {
				cost = diagonalCost
			}
			exits = append(exits, geom.Exit{Idx: ny*m.Width + nx, Cost: cost})
		}
	}
	return exits
}

// PopulateBlocked resets Blocked to the wall layout alone.
func (m *GameMap) PopulateBlocked() {
	for i, t := range m.Tiles {
		m.Blocked[i] = t == TileWall
	}
}

// ClearContentIndex empties every tile's occupant list.
func (m *GameMap) ClearContentIndex() {
	for i := range m.TileContent {
		m.TileContent[i] = m.TileContent[i][:0]
	}
}

// ResetVisible clears the visible overlay. Revealed tiles are untouched.
func (m *GameMap) ResetVisible() {
	for i := range m.VisibleTiles {
		m.VisibleTiles[i] = false
	}
}

// Reveal marks (x, y) visible and revealed.
func (m *GameMap) Reveal(x, y int) {
	idx := m.Idx(x, y)
	m.VisibleTiles[idx] = true
	m.RevealedTiles[idx] = true
}
