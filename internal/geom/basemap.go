package geom

// Exit is a traversable neighbour of a tile and the cost of stepping onto it.
type Exit struct {
	Idx  int
	Cost float64
}

// BaseMap is the capability a grid offers to field-of-view and pathfinding.
// Indices are flat: idx = y*width + x.
type BaseMap interface {
	Dimensions() (width, height int)
	IsOpaque(idx int) bool
	Neighbors(idx int) []Exit
}

// IdxOf converts p to a flat index for a grid of the given width.
// Callers must bounds-check p first.
func IdxOf(p Point, width int) int {
	return p.Y*width + p.X
}

// PointOf converts a flat index back to a Point.
func PointOf(idx, width int) Point {
	return Point{X: idx % width, Y: idx / width}
}

// Contains reports whether p lies on a width×height grid.
func Contains(p Point, width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}
