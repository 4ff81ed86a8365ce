package component

import "dungeoncrawl/internal/ecs"

const CName ecs.ComponentType = 8

type Name struct {
	Name string
}

func (Name) Type() ecs.ComponentType { return CName }
