package generate

import (
	"math/rand"

	"dungeoncrawl/internal/gamemap"
)

// carveCorridor digs an L-shaped tunnel between (x1,y1) and (x2,y2). The bend
// order is a coin flip.
func carveCorridor(gmap *gamemap.GameMap, x1, y1, x2, y2 int, rng *rand.Rand) {
	if rng.Intn(2) == 1 {
		carveH(gmap, x1, x2, y1)
		carveV(gmap, y1, y2, x2)
	} else {
		carveV(gmap, y1, y2, x1)
		carveH(gmap, x1, x2, y2)
	}
}

func carveH(gmap *gamemap.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if gmap.InBounds(x, y) {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
}

func carveV(gmap *gamemap.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if gmap.InBounds(x, y) {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
}
