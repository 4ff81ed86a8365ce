package component

import "dungeoncrawl/internal/ecs"

const (
	CWantsToMelee ecs.ComponentType = 9
	CSufferDamage ecs.ComponentType = 10
)

// WantsToMelee is a one-tick melee intent. An entity holds at most one.
type WantsToMelee struct {
	Target ecs.EntityID
}

func (WantsToMelee) Type() ecs.ComponentType { return CWantsToMelee }

// DamageEntry is one hit waiting to be applied.
type DamageEntry struct {
	Source ecs.EntityID
	Amount int
}

// SufferDamage accumulates the hits an entity takes within one tick.
type SufferDamage struct {
	Entries []DamageEntry
}

func (SufferDamage) Type() ecs.ComponentType { return CSufferDamage }

// Total returns the sum of every pending amount.
func (s SufferDamage) Total() int {
	total := 0
	for _, e := range s.Entries {
		total += e.Amount
	}
	return total
}
