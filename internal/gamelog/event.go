// Package gamelog carries the discrete event notices produced by the
// simulation to whoever wants them: the HUD journal, the structured logger,
// or a test.
package gamelog

import "dungeoncrawl/internal/ecs"

// Kind classifies an event notice.
type Kind uint8

const (
	// Damage reports hp removed from Target by Source.
	Damage Kind = iota + 1
	// Ineffective reports a melee by Source that could not hurt Target.
	Ineffective
	// Death reports the removal of a non-player Target.
	Death
	// PlayerDefeated reports the player dropping below 1 hp.
	PlayerDefeated
)

func (k Kind) String() string {
	switch k {
	case Damage:
		return "damage"
	case Ineffective:
		return "ineffective"
	case Death:
		return "death"
	case PlayerDefeated:
		return "player_defeated"
	}
	return "unknown"
}

// Event is one notice. Names are captured when the event is emitted because
// the entities they refer to may be destroyed before the notice is read.
type Event struct {
	Kind       Kind
	Turn       int
	Source     ecs.EntityID
	Target     ecs.EntityID
	SourceName string
	TargetName string
	Amount     int
}

// Sink receives event notices in emission order.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) { f(e) }

// Multi fans every event out to each sink in order. Nil sinks are skipped.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

type multiSink []Sink

func (m multiSink) Emit(e Event) {
	for _, s := range m {
		if s != nil {
			s.Emit(e)
		}
	}
}

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})
