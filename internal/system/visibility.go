package system

import (
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/fov"
	"dungeoncrawl/internal/geom"
)

// Visibility recomputes every dirty viewshed. When the player's viewshed is
// recomputed, the map's visible overlay is replaced by it and every visible
// tile becomes revealed. Dirty flags are left for the movers to clear.
func Visibility(s *State) {
	w, gmap := s.World, s.Map
	for _, id := range w.Query(component.CViewshed, component.CPosition) {
		vs := w.Get(id, component.CViewshed).(component.Viewshed)
		if !vs.Dirty {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)

		tiles := fov.FieldOfView(pos.Point(), vs.Range, gmap)
		vs.VisibleTiles = vs.VisibleTiles[:0]
		for _, p := range tiles {
			if geom.Contains(p, gmap.Width, gmap.Height) {
				vs.VisibleTiles = append(vs.VisibleTiles, p)
			}
		}
		w.Add(id, vs)

		if id != s.Player {
			continue
		}
		gmap.ResetVisible()
		for _, p := range vs.VisibleTiles {
			gmap.Reveal(p.X, p.Y)
		}
	}
}
