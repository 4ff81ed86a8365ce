package system

import (
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/geom"
	"dungeoncrawl/internal/pathfind"

	"go.uber.org/zap"
)

// meleeRange is the largest distance from which a monster can strike.
const meleeRange = 1.5

// MonsterAI lets every monster that can see the player act once: attack when
// adjacent, otherwise take one A* step toward the player. A monster whose
// position did not change ends the pass with a clean viewshed.
//
// Blocked flags are not updated while monsters move, so tiles entered during
// this pass are tracked locally to keep two monsters from sharing one.
func MonsterAI(s *State) {
	w, gmap := s.World, s.Map
	if !w.Alive(s.Player) {
		return
	}
	target := s.PlayerPos
	targetIdx := gmap.Idx(target.X, target.Y)
	claimed := make(map[int]bool)

	for _, id := range w.Query(component.CTagMonster, component.CViewshed, component.CPosition) {
		vs := w.Get(id, component.CViewshed).(component.Viewshed)
		pos := w.Get(id, component.CPosition).(component.Position)
		moved := false

		if vs.CanSee(target) {
			if geom.Distance(pos.Point(), target) <= meleeRange {
				w.Add(id, component.WantsToMelee{Target: s.Player})
			} else {
				path := pathfind.AStar(gmap.Idx(pos.X, pos.Y), targetIdx, gmap)
				if path.Success && len(path.Steps) > 1 {
					next := path.Steps[1]
					if next != targetIdx && !gmap.Blocked[next] && !claimed[next] {
						claimed[next] = true
						pos = component.Position{X: next % gmap.Width, Y: next / gmap.Width}
						w.Add(id, pos)
						moved = true
					}
				}
			}
		}

		vs.Dirty = moved
		w.Add(id, vs)
		if moved {
			s.log().Debug("monster moved",
				zap.String("name", nameOf(w, id)),
				zap.Int("x", pos.X), zap.Int("y", pos.Y))
		}
	}
}
