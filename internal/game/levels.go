package game

import (
	"math/rand"

	"dungeoncrawl/internal/config"
	"dungeoncrawl/internal/generate"
)

// levelConfig builds a generate.Config for the configured map.
func levelConfig(m config.MapConfig, rng *rand.Rand) *generate.Config {
	return &generate.Config{
		MapWidth:    m.Width,
		MapHeight:   m.Height,
		MaxRooms:    m.MaxRooms,
		MinRoomSize: m.MinRoomSize,
		MaxRoomSize: m.MaxRoomSize,
		Rand:        rng,
	}
}
