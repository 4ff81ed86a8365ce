package system

import "dungeoncrawl/internal/component"

// MapIndexing rebuilds the map's blocked flags and tile-content lists from
// the current entity positions. Running it twice in a row is a no-op.
func MapIndexing(s *State) {
	gmap := s.Map
	gmap.PopulateBlocked()
	gmap.ClearContentIndex()

	for _, id := range s.World.Query(component.CPosition) {
		pos := s.World.Get(id, component.CPosition).(component.Position)
		idx := gmap.Idx(pos.X, pos.Y)
		gmap.TileContent[idx] = append(gmap.TileContent[idx], id)
		if s.World.Has(id, component.CTagBlocking) {
			gmap.Blocked[idx] = true
		}
	}
}
