package generate

import (
	"math/rand"
	"testing"

	"dungeoncrawl/internal/gamemap"
)

// makeRoomedMap builds a GameMap pre-populated with the given number of rooms.
func makeRoomedMap(rooms int) *gamemap.GameMap {
	gmap := gamemap.New(80, 40)
	for i := range rooms {
		r := gamemap.NewRect(2+i*10, 2, 6, 6)
		carveRoom(gmap, r)
		gmap.Rooms = append(gmap.Rooms, r)
	}
	return gmap
}

func TestPopulateNoRooms(t *testing.T) {
	res := Populate(gamemap.New(10, 10), 2, rand.New(rand.NewSource(0)))
	if len(res.Monsters) != 0 {
		t.Fatalf("expected no monsters without rooms, got %d", len(res.Monsters))
	}
}

func TestPopulatePlayerInFirstRoom(t *testing.T) {
	gmap := makeRoomedMap(3)
	res := Populate(gmap, 2, rand.New(rand.NewSource(1)))
	cx, cy := gmap.Rooms[0].Center()
	if res.Player.X != cx || res.Player.Y != cy {
		t.Errorf("player at (%d,%d), want first room centre (%d,%d)", res.Player.X, res.Player.Y, cx, cy)
	}
}

func TestPopulateOneMonsterPerLaterRoom(t *testing.T) {
	gmap := makeRoomedMap(4)
	res := Populate(gmap, 2, rand.New(rand.NewSource(7)))
	if len(res.Monsters) != 3 {
		t.Fatalf("expected 3 monsters, got %d", len(res.Monsters))
	}
	for i, m := range res.Monsters {
		cx, cy := gmap.Rooms[i+1].Center()
		if m.X != cx || m.Y != cy {
			t.Errorf("monster %d at (%d,%d), want (%d,%d)", i, m.X, m.Y, cx, cy)
		}
		if m.Ordinal != i+1 {
			t.Errorf("monster %d ordinal = %d", i, m.Ordinal)
		}
		if m.Template < 0 || m.Template >= 2 {
			t.Errorf("monster %d template %d out of range", i, m.Template)
		}
		if !gmap.IsWalkable(m.X, m.Y) {
			t.Errorf("monster %d spawned on a wall", i)
		}
	}
}

func TestPopulateWithoutTemplates(t *testing.T) {
	res := Populate(makeRoomedMap(3), 0, rand.New(rand.NewSource(0)))
	if len(res.Monsters) != 0 {
		t.Errorf("expected no monsters with an empty table, got %d", len(res.Monsters))
	}
}
