package component

import "dungeoncrawl/internal/ecs"

const CCombatStats ecs.ComponentType = 4

// CombatStats holds hit points and melee numbers. HP may go negative.
type CombatStats struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
}

func (CombatStats) Type() ecs.ComponentType { return CCombatStats }
