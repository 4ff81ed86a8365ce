package gamemap

// TileType classifies one map cell.
type TileType uint8

const (
	TileWall TileType = iota
	TileFloor
)

// String returns a short name for logs and test failures.
func (t TileType) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	}
	return "unknown"
}
