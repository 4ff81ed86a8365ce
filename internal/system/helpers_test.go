package system

import (
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamelog"
	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/geom"
)

// recorder is a Sink that keeps every event.
type recorder struct {
	events []gamelog.Event
}

func (r *recorder) Emit(e gamelog.Event) { r.events = append(r.events, e) }

func (r *recorder) kinds() []gamelog.Kind {
	out := make([]gamelog.Kind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

// openMap returns a map whose interior is all floor.
func openMap(w, h int) *gamemap.GameMap {
	gmap := gamemap.New(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
	return gmap
}

// newState builds a state on an open map with a player at (px, py).
func newState(w, h, px, py int) (*State, *recorder) {
	rec := &recorder{}
	s := &State{
		World:     ecs.NewWorld(),
		Map:       openMap(w, h),
		PlayerPos: geom.Point{X: px, Y: py},
		Sink:      rec,
	}
	s.Player = s.World.CreateEntity()
	s.World.Add(s.Player, component.TagPlayer{})
	s.World.Add(s.Player, component.Name{Name: "Player"})
	s.World.Add(s.Player, component.Position{X: px, Y: py})
	s.World.Add(s.Player, component.TagBlocking{})
	s.World.Add(s.Player, component.Viewshed{Range: 8, Dirty: true})
	s.World.Add(s.Player, component.CombatStats{MaxHP: 30, HP: 30, Defense: 2, Power: 5})
	return s, rec
}

// addMonster places a blocking monster with a range-8 viewshed.
func addMonster(s *State, name string, x, y int, stats component.CombatStats) ecs.EntityID {
	id := s.World.CreateEntity()
	s.World.Add(id, component.TagMonster{})
	s.World.Add(id, component.Name{Name: name})
	s.World.Add(id, component.Position{X: x, Y: y})
	s.World.Add(id, component.TagBlocking{})
	s.World.Add(id, component.Viewshed{Range: 8, Dirty: true})
	s.World.Add(id, stats)
	return id
}

func posOf(s *State, id ecs.EntityID) component.Position {
	return s.World.Get(id, component.CPosition).(component.Position)
}

func viewshedOf(s *State, id ecs.EntityID) component.Viewshed {
	return s.World.Get(id, component.CViewshed).(component.Viewshed)
}

func statsOf(s *State, id ecs.EntityID) component.CombatStats {
	return s.World.Get(id, component.CCombatStats).(component.CombatStats)
}

func ids(list []ecs.EntityID) []uint64 {
	if len(list) == 0 {
		return nil
	}
	out := make([]uint64, len(list))
	for i, id := range list {
		out[i] = uint64(id)
	}
	return out
}

func ecsID(id uint64) ecs.EntityID { return ecs.EntityID(id) }
