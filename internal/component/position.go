package component

import (
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/geom"
)

const CPosition ecs.ComponentType = 1

type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Point returns the position as a geom.Point.
func (p Position) Point() geom.Point { return geom.Point{X: p.X, Y: p.Y} }
