// Package world provides the static level map: tile kinds, wall queries,
// the scatter generator and hand-authored YAML layouts.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileFloor is open ground.
	TileFloor Tile = '.'
	// TileWall blocks movement.
	TileWall Tile = '#'
	// TileDoor is walkable.
	TileDoor Tile = '+'
	// TileWater is walkable.
	TileWater Tile = '~'
)

// IsWall returns true if the tile blocks movement.
func (t Tile) IsWall() bool {
	return t == TileWall
}

// Valid reports whether t is one of the known tile kinds.
func (t Tile) Valid() bool {
	switch t {
	case TileFloor, TileWall, TileDoor, TileWater:
		return true
	default:
		return false
	}
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileDoor:
		return "door"
	case TileWater:
		return "water"
	default:
		return "unknown"
	}
}
