package component

import "dungeoncrawl/internal/ecs"

const (
	CTagPlayer   ecs.ComponentType = 5
	CTagMonster  ecs.ComponentType = 6
	CTagBlocking ecs.ComponentType = 7
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagMonster marks an AI-controlled entity.
type TagMonster struct{}

func (TagMonster) Type() ecs.ComponentType { return CTagMonster }

// TagBlocking marks an entity that occupies its tile (blocks movement).
type TagBlocking struct{}

func (TagBlocking) Type() ecs.ComponentType { return CTagBlocking }
