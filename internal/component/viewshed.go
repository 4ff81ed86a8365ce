package component

import (
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/geom"
)

const CViewshed ecs.ComponentType = 3

// Viewshed is the set of tiles an entity can currently see.
//
// Dirty is set by whatever changes the entity's position and is consumed by
// the visibility system, which never clears it. The mover clears it once the
// entity acts again without moving.
type Viewshed struct {
	VisibleTiles []geom.Point
	Range        int
	Dirty        bool
}

func (Viewshed) Type() ecs.ComponentType { return CViewshed }

// CanSee reports whether p is in the visible set.
func (v Viewshed) CanSee(p geom.Point) bool {
	for _, t := range v.VisibleTiles {
		if t == p {
			return true
		}
	}
	return false
}
