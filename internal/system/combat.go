package system

import (
	"dungeoncrawl/internal/component"

	"go.uber.org/zap"
)

// MeleeCombat turns every melee intent into a pending damage entry on the
// target of max(0, power-defense). Damage from several attackers on the same
// target accumulates. Attackers already below 1 hp do not swing, and targets
// without combat stats are skipped. All intents are cleared afterwards.
func MeleeCombat(s *State) {
	w := s.World
	for _, id := range w.Query(component.CWantsToMelee, component.CCombatStats) {
		attacker := w.Get(id, component.CCombatStats).(component.CombatStats)
		if attacker.HP < 1 {
			continue
		}
		target := w.Get(id, component.CWantsToMelee).(component.WantsToMelee).Target
		tc := w.Get(target, component.CCombatStats)
		if tc == nil {
			continue
		}
		defender := tc.(component.CombatStats)

		damage := max(0, attacker.Power-defender.Defense)
		var pending component.SufferDamage
		if c := w.Get(target, component.CSufferDamage); c != nil {
			pending = c.(component.SufferDamage)
		}
		pending.Entries = append(pending.Entries, component.DamageEntry{Source: id, Amount: damage})
		w.Add(target, pending)

		s.log().Debug("melee",
			zap.Uint64("attacker", uint64(id)),
			zap.Uint64("target", uint64(target)),
			zap.Int("damage", damage))
	}
	w.Clear(component.CWantsToMelee)
}
