package fov

import (
	"testing"

	"dungeoncrawl/internal/geom"

	"pgregory.net/rapid"
)

// grid is a minimal BaseMap: true cells are opaque.
type grid struct {
	w, h  int
	walls []bool
}

func openGrid(w, h int) *grid {
	return &grid{w: w, h: h, walls: make([]bool, w*h)}
}

func (g *grid) wall(x, y int) { g.walls[y*g.w+x] = true }

func (g *grid) Dimensions() (int, int) { return g.w, g.h }

func (g *grid) IsOpaque(idx int) bool { return g.walls[idx] }

func (g *grid) Neighbors(int) []geom.Exit { return nil }

func visibleSet(pts []geom.Point) map[geom.Point]bool {
	set := make(map[geom.Point]bool, len(pts))
	for _, p := range pts {
		set[p] = true
	}
	return set
}

func TestFOVOriginAlwaysVisible(t *testing.T) {
	g := openGrid(20, 20)
	vis := visibleSet(FieldOfView(geom.Point{X: 5, Y: 5}, 5, g))
	if !vis[geom.Point{X: 5, Y: 5}] {
		t.Error("origin must always be visible")
	}
}

func TestFOVNearbyTilesVisible(t *testing.T) {
	g := openGrid(20, 20)
	vis := visibleSet(FieldOfView(geom.Point{X: 10, Y: 10}, 5, g))
	for _, p := range []geom.Point{{X: 10, Y: 7}, {X: 10, Y: 13}, {X: 7, Y: 10}, {X: 13, Y: 10}, {X: 10, Y: 5}} {
		if !vis[p] {
			t.Errorf("tile %v should be visible with radius 5", p)
		}
	}
}

func TestFOVRadiusLimitsVisibility(t *testing.T) {
	g := openGrid(20, 20)
	vis := visibleSet(FieldOfView(geom.Point{X: 10, Y: 10}, 4, g))
	for _, p := range []geom.Point{{X: 10, Y: 15}, {X: 10, Y: 5}, {X: 15, Y: 10}, {X: 5, Y: 10}} {
		if vis[p] {
			t.Errorf("tile %v at distance 5 should not be visible with radius 4", p)
		}
	}
}

func TestFOVWallBlocksLight(t *testing.T) {
	g := openGrid(20, 20)
	g.wall(10, 8)
	vis := visibleSet(FieldOfView(geom.Point{X: 10, Y: 10}, 8, g))

	if !vis[geom.Point{X: 10, Y: 8}] {
		t.Error("the wall tile itself should be visible")
	}
	if vis[geom.Point{X: 10, Y: 7}] {
		t.Error("tile directly behind the wall should not be visible")
	}
}

func TestFOVRangeOneBesideWall(t *testing.T) {
	g := openGrid(10, 10)
	for y := 0; y < 10; y++ {
		g.wall(6, y)
	}
	vis := visibleSet(FieldOfView(geom.Point{X: 5, Y: 5}, 1, g))

	if !vis[geom.Point{X: 6, Y: 5}] {
		t.Error("adjacent wall should be visible")
	}
	for p := range vis {
		if p.X > 6 {
			t.Errorf("tile %v beyond the wall is visible", p)
		}
	}
}

func TestFOVNeverLeavesMap(t *testing.T) {
	g := openGrid(6, 6)
	for _, p := range FieldOfView(geom.Point{X: 0, Y: 0}, 10, g) {
		if !geom.Contains(p, 6, 6) {
			t.Errorf("off-map tile %v returned", p)
		}
	}
}

func TestFOVOffMapOriginReturnsNothing(t *testing.T) {
	g := openGrid(6, 6)
	if pts := FieldOfView(geom.Point{X: -1, Y: 3}, 4, g); len(pts) != 0 {
		t.Errorf("expected no tiles for an off-map origin, got %d", len(pts))
	}
}

func TestFOVNoDuplicates(t *testing.T) {
	g := openGrid(30, 30)
	pts := FieldOfView(geom.Point{X: 15, Y: 15}, 8, g)
	if len(pts) != len(visibleSet(pts)) {
		t.Errorf("FieldOfView returned duplicate tiles")
	}
}

func TestFOVWithinRadiusProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := rapid.IntRange(3, 40).Draw(rt, "w")
		h := rapid.IntRange(3, 40).Draw(rt, "h")
		g := openGrid(w, h)
		for i := range g.walls {
			g.walls[i] = rapid.IntRange(0, 3).Draw(rt, "cell") == 0
		}
		origin := geom.Point{
			X: rapid.IntRange(0, w-1).Draw(rt, "x"),
			Y: rapid.IntRange(0, h-1).Draw(rt, "y"),
		}
		radius := rapid.IntRange(0, 12).Draw(rt, "radius")

		for _, p := range FieldOfView(origin, radius, g) {
			dx, dy := p.X-origin.X, p.Y-origin.Y
			if dx*dx+dy*dy > radius*radius {
				rt.Fatalf("tile %v outside radius %d of %v", p, radius, origin)
			}
		}
	})
}
