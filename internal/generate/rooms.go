// Package generate builds dungeon levels from randomly placed rectangular
// rooms joined by L-shaped corridors.
package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"dungeoncrawl/internal/gamemap"
)

// Config drives procedural generation for one level.
type Config struct {
	MapWidth, MapHeight int
	MaxRooms            int // placement attempts; rejected candidates still count
	MinRoomSize         int
	MaxRoomSize         int // inclusive
	Rand                *rand.Rand
}

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid generator config")

// Validate checks that every candidate room can fit inside the map. Rooms
// need at least two cells per side so their center lies on carved floor.
func (c *Config) Validate() error {
	switch {
	case c.Rand == nil:
		return fmt.Errorf("%w: nil Rand", ErrInvalidConfig)
	case c.MaxRooms < 1:
		return fmt.Errorf("%w: max rooms %d < 1", ErrInvalidConfig, c.MaxRooms)
	case c.MinRoomSize < 2 || c.MaxRoomSize < c.MinRoomSize:
		return fmt.Errorf("%w: room size range [%d,%d]", ErrInvalidConfig, c.MinRoomSize, c.MaxRoomSize)
	case c.MapWidth-c.MaxRoomSize-1 < 1 || c.MapHeight-c.MaxRoomSize-1 < 1:
		return fmt.Errorf("%w: %dx%d map too small for rooms of size %d",
			ErrInvalidConfig, c.MapWidth, c.MapHeight, c.MaxRoomSize)
	}
	return nil
}

// Generate places up to cfg.MaxRooms non-overlapping rooms, carving each and
// connecting it to the previously accepted room. The first candidate always
// fits, so the result has at least one room.
func Generate(cfg *Config) (*gamemap.GameMap, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)

	for range cfg.MaxRooms {
		room := candidateRoom(cfg)

		ok := true
		for _, other := range gmap.Rooms {
			if room.Intersects(other) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		carveRoom(gmap, room)
		if len(gmap.Rooms) > 0 {
			prevX, prevY := gmap.Rooms[len(gmap.Rooms)-1].Center()
			newX, newY := room.Center()
			carveCorridor(gmap, prevX, prevY, newX, newY, cfg.Rand)
		}
		gmap.Rooms = append(gmap.Rooms, room)
	}
	return gmap, nil
}

// candidateRoom draws a random size and a top-left corner that keeps the
// carved interior inside the outer wall ring.
func candidateRoom(cfg *Config) gamemap.Rect {
	span := cfg.MaxRoomSize - cfg.MinRoomSize + 1
	w := cfg.MinRoomSize + cfg.Rand.Intn(span)
	h := cfg.MinRoomSize + cfg.Rand.Intn(span)
	x := cfg.Rand.Intn(cfg.MapWidth - w - 1)
	y := cfg.Rand.Intn(cfg.MapHeight - h - 1)
	return gamemap.NewRect(x, y, w, h)
}

// carveRoom turns the room's interior to floor.
func carveRoom(gmap *gamemap.GameMap, room gamemap.Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
}
