package system

import (
	"fmt"

	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamelog"
)

// ApplyDamage subtracts each entity's accumulated damage from its hp in one
// step, reporting every entry, then clears all pending damage. HP is not
// clamped.
func ApplyDamage(s *State) {
	w := s.World
	for _, id := range w.Query(component.CSufferDamage, component.CCombatStats) {
		pending := w.Get(id, component.CSufferDamage).(component.SufferDamage)
		stats := w.Get(id, component.CCombatStats).(component.CombatStats)
		stats.HP -= pending.Total()
		w.Add(id, stats)

		if n := len(pending.Entries); n > 0 {
			if s.lastHit == nil {
				s.lastHit = make(map[ecs.EntityID]component.DamageEntry)
			}
			s.lastHit[id] = pending.Entries[n-1]
		}

		targetName := nameOf(w, id)
		for _, e := range pending.Entries {
			kind := gamelog.Damage
			if e.Amount == 0 {
				kind = gamelog.Ineffective
			}
			s.emit(gamelog.Event{
				Kind:       kind,
				Source:     e.Source,
				Target:     id,
				SourceName: nameOf(w, e.Source),
				TargetName: targetName,
				Amount:     e.Amount,
			})
		}
	}
	w.Clear(component.CSufferDamage)
}

// DeleteTheDead removes every non-player entity below 1 hp once the scan is
// done. The player is never removed; each sweep that finds it below 1 hp
// emits a PlayerDefeated notice and raises s.PlayerDefeated. Both notices
// name the source and amount of the final hit applied this tick, if any.
func DeleteTheDead(s *State) {
	w := s.World
	var dead []ecs.EntityID
	for _, id := range w.Query(component.CCombatStats) {
		stats := w.Get(id, component.CCombatStats).(component.CombatStats)
		if stats.HP >= 1 {
			continue
		}
		if id == s.Player {
			s.PlayerDefeated = true
			s.emit(s.deathNotice(gamelog.PlayerDefeated, id))
			continue
		}
		dead = append(dead, id)
	}

	for _, id := range dead {
		e := s.deathNotice(gamelog.Death, id)
		if !w.DestroyEntity(id) {
			panic(fmt.Sprintf("system: failed to remove dead entity %d (%q)", id, e.TargetName))
		}
		s.emit(e)
	}
	clear(s.lastHit)
}

// deathNotice builds a notice about id, crediting the last hit it took.
func (s *State) deathNotice(kind gamelog.Kind, id ecs.EntityID) gamelog.Event {
	e := gamelog.Event{Kind: kind, Target: id, TargetName: nameOf(s.World, id)}
	if hit, ok := s.lastHit[id]; ok {
		e.Source = hit.Source
		e.SourceName = nameOf(s.World, hit.Source)
		e.Amount = hit.Amount
	}
	return e
}
