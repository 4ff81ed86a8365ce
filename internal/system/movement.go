package system

import (
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/geom"
)

// TryMove moves id by (dx, dy) if the destination is inside the map interior
// and not blocked. Every occupant of the destination that has combat stats
// becomes the mover's melee target; the intent slot holds one target, so the
// last such occupant wins. It reports whether the entity moved.
//
// Occupancy comes from the last MapIndexing pass.
func TryMove(s *State, id ecs.EntityID, dx, dy int) bool {
	w, gmap := s.World, s.Map
	c := w.Get(id, component.CPosition)
	if c == nil {
		return false
	}
	pos := c.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy
	if !gmap.InInterior(nx, ny) {
		return false
	}

	dest := gmap.Idx(nx, ny)
	for _, occupant := range gmap.TileContent[dest] {
		if occupant == id || !w.Has(occupant, component.CCombatStats) {
			continue
		}
		w.Add(id, component.WantsToMelee{Target: occupant})
	}

	if gmap.Blocked[dest] {
		return false
	}
	w.Add(id, component.Position{X: nx, Y: ny})
	markDirty(s, id)
	if id == s.Player {
		s.PlayerPos = geom.Point{X: nx, Y: ny}
	}
	return true
}

// markDirty flags id's viewshed for recomputation, if it has one.
func markDirty(s *State, id ecs.EntityID) {
	setDirty(s, id, true)
}

func setDirty(s *State, id ecs.EntityID, dirty bool) {
	c := s.World.Get(id, component.CViewshed)
	if c == nil {
		return
	}
	vs := c.(component.Viewshed)
	vs.Dirty = dirty
	s.World.Add(id, vs)
}

// Settle clears id's dirty flag. The tick driver calls it before the
// entity's next action so that only a real move requests a recompute.
func Settle(s *State, id ecs.EntityID) {
	setDirty(s, id, false)
}
