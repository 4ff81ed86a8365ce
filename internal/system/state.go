// Package system holds the per-tick passes that advance the simulation.
// Every pass takes the shared *State explicitly; none keeps state of its own.
package system

import (
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamelog"
	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/geom"

	"go.uber.org/zap"
)

// State is the simulation context owned by the tick driver.
type State struct {
	World *ecs.World
	Map   *gamemap.GameMap

	Player         ecs.EntityID
	PlayerPos      geom.Point // last position recorded by TryMove for the player
	PlayerDefeated bool

	Turn   int
	Sink   gamelog.Sink
	Logger *zap.Logger

	// lastHit is the final damage entry applied to each entity this tick.
	// ApplyDamage fills it and DeleteTheDead consumes it.
	lastHit map[ecs.EntityID]component.DamageEntry
}

// emit stamps e with the current turn and forwards it to the sink.
func (s *State) emit(e gamelog.Event) {
	e.Turn = s.Turn
	s.sink().Emit(e)
}

func (s *State) sink() gamelog.Sink {
	if s.Sink == nil {
		return gamelog.Discard
	}
	return s.Sink
}

func (s *State) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// nameOf returns the entity's display name, or "" when it has none.
func nameOf(w *ecs.World, id ecs.EntityID) string {
	if c := w.Get(id, component.CName); c != nil {
		return c.(component.Name).Name
	}
	return ""
}
