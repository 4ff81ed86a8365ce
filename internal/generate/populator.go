package generate

import (
	"math/rand"

	"dungeoncrawl/internal/gamemap"
)

// SpawnPoint holds a world coordinate where an entity should appear.
type SpawnPoint struct {
	X, Y int
}

// MonsterSpawn describes one monster to create. Template indexes the
// caller's monster table; Ordinal numbers monsters from 1 in room order.
type MonsterSpawn struct {
	Template int
	Ordinal  int
	SpawnPoint
}

// PopulateResult is returned by Populate with entity spawn data.
type PopulateResult struct {
	Player   SpawnPoint
	Monsters []MonsterSpawn
}

// Populate puts the player at the center of the first room and one monster
// at the center of every other room, rolling each monster's template
// uniformly from templateCount choices.
func Populate(gmap *gamemap.GameMap, templateCount int, rng *rand.Rand) PopulateResult {
	var result PopulateResult
	if len(gmap.Rooms) == 0 {
		return result
	}
	px, py := gmap.Rooms[0].Center()
	result.Player = SpawnPoint{X: px, Y: py}

	if templateCount <= 0 {
		return result
	}
	for i, room := range gmap.Rooms[1:] {
		x, y := room.Center()
		result.Monsters = append(result.Monsters, MonsterSpawn{
			Template:   rng.Intn(templateCount),
			Ordinal:    i + 1,
			SpawnPoint: SpawnPoint{X: x, Y: y},
		})
	}
	return result
}
