// Package fov computes field of view over any geom.BaseMap using recursive
// shadowcasting.
package fov

import "dungeoncrawl/internal/geom"

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
//
// where dx sweeps horizontally within the row and dy is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// caster carries the per-query state shared by every octant scan.
type caster struct {
	m             geom.BaseMap
	width, height int
	cx, cy        int
	radius        int
	seen          map[int]bool
	out           []geom.Point
}

// FieldOfView returns every tile visible from origin within radius.
// A tile is within radius when dx²+dy² ≤ radius². Opaque tiles are themselves
// visible but hide what lies behind them. Off-map tiles are never returned.
// The origin is always visible when it lies on the map.
func FieldOfView(origin geom.Point, radius int, m geom.BaseMap) []geom.Point {
	w, h := m.Dimensions()
	c := &caster{
		m:      m,
		width:  w,
		height: h,
		cx:     origin.X,
		cy:     origin.Y,
		radius: radius,
		seen:   make(map[int]bool),
	}
	if !geom.Contains(origin, w, h) || radius < 0 {
		return nil
	}
	c.light(origin.X, origin.Y)

	for _, o := range octants {
		c.castLight(1, 1.0, 0.0, o[0], o[1], o[2], o[3])
	}
	return c.out
}

func (c *caster) light(x, y int) {
	idx := y*c.width + x
	if c.seen[idx] {
		return
	}
	c.seen[idx] = true
	c.out = append(c.out, geom.Point{X: x, Y: y})
}

func (c *caster) opaque(x, y int) bool {
	if !geom.Contains(geom.Point{X: x, Y: y}, c.width, c.height) {
		return true
	}
	return c.m.IsOpaque(y*c.width + x)
}

// castLight scans one octant row by row starting at row, between the start
// and end slopes, recursing past each run of opaque cells.
func (c *caster) castLight(row int, start, end float64, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := c.radius * c.radius
	newStart := start

	for j := row; j <= c.radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := c.cx + dx*xx + dy*xy
			wy := c.cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if dx*dx+dy*dy <= radiusSq && geom.Contains(geom.Point{X: wx, Y: wy}, c.width, c.height) {
				c.light(wx, wy)
			}

			opaque := c.opaque(wx, wy)
			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < c.radius {
				blocked = true
				c.castLight(j+1, start, lSlope, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
