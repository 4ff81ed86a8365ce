package system

import (
	"testing"

	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var goblinStats = component.CombatStats{MaxHP: 8, HP: 8, Defense: 1, Power: 3}

// prepare runs the passes that precede AI in a pipeline run.
func prepare(s *State) {
	Visibility(s)
	MapIndexing(s)
}

func TestAIAdjacentMonsterAttacks(t *testing.T) {
	s, _ := newState(12, 12, 5, 5)
	gob := addMonster(s, "Goblin #1", 6, 6, goblinStats)
	prepare(s)

	MonsterAI(s)
	c := s.World.Get(gob, component.CWantsToMelee)
	require.NotNil(t, c, "diagonal neighbour is within melee range")
	assert.Equal(t, s.Player, c.(component.WantsToMelee).Target)
	assert.Equal(t, component.Position{X: 6, Y: 6}, posOf(s, gob))
	assert.False(t, viewshedOf(s, gob).Dirty, "attacking in place leaves the viewshed clean")
}

func TestAIChasesVisiblePlayer(t *testing.T) {
	s, _ := newState(20, 12, 3, 5)
	gob := addMonster(s, "Goblin #1", 8, 5, goblinStats)
	prepare(s)

	MonsterAI(s)
	pos := posOf(s, gob)
	assert.Equal(t, component.Position{X: 7, Y: 5}, pos, "one step straight toward the player")
	assert.True(t, viewshedOf(s, gob).Dirty)
	assert.False(t, s.World.Has(gob, component.CWantsToMelee))
}

func TestAIIgnoresUnseenPlayer(t *testing.T) {
	s, _ := newState(20, 12, 3, 5)
	for y := 0; y < 12; y++ {
		s.Map.Set(10, y, gamemap.TileWall)
	}
	gob := addMonster(s, "Goblin #1", 15, 5, goblinStats)
	prepare(s)

	MonsterAI(s)
	assert.Equal(t, component.Position{X: 15, Y: 5}, posOf(s, gob))
	assert.False(t, s.World.Has(gob, component.CWantsToMelee))
	assert.False(t, viewshedOf(s, gob).Dirty, "a monster that stays put is settled")
}

func TestAIMonstersDoNotShareATile(t *testing.T) {
	// Two monsters in a one-tile-wide corridor both want the tile at x=6.
	s, _ := newState(14, 5, 2, 2)
	for x := 1; x < 13; x++ {
		s.Map.Set(x, 1, gamemap.TileWall)
		s.Map.Set(x, 3, gamemap.TileWall)
	}
	a := addMonster(s, "Goblin #1", 7, 2, goblinStats)
	b := addMonster(s, "Goblin #2", 8, 2, goblinStats)
	prepare(s)

	MonsterAI(s)
	pa, pb := posOf(s, a), posOf(s, b)
	assert.NotEqual(t, pa, pb)
	assert.Equal(t, component.Position{X: 6, Y: 2}, pa)
	assert.Equal(t, component.Position{X: 8, Y: 2}, pb, "tile 7 was still blocked when b acted")
}

func TestAINoPlayer(t *testing.T) {
	s, _ := newState(12, 12, 5, 5)
	gob := addMonster(s, "Goblin #1", 6, 6, goblinStats)
	prepare(s)
	s.World.DestroyEntity(s.Player)

	MonsterAI(s)
	assert.False(t, s.World.Has(gob, component.CWantsToMelee))
}

func TestAIUsesPlayerRecord(t *testing.T) {
	s, _ := newState(20, 12, 3, 5)
	gob := addMonster(s, "Goblin #1", 10, 5, goblinStats)
	prepare(s)
	s.PlayerPos = geom.Point{X: 12, Y: 5}

	MonsterAI(s)
	assert.Equal(t, component.Position{X: 11, Y: 5}, posOf(s, gob))
}
