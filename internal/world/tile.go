// Package world provides tile maps, positions and collision queries.
package world

// Tile represents a single map tile after spawn markers have been resolved.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = 'W'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = ' '
	// TileDoor represents a passable tile that leads to the next map.
	TileDoor Tile = 'D'
)

// CodePlayerSpawn marks where the player starts. It becomes floor once parsed.
const CodePlayerSpawn = 'P'

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t != TileWall
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileDoor:
		return "door"
	default:
		return "unknown"
	}
}

// MarkerKind identifies what a spawn marker places.
type MarkerKind int

const (
	MarkerPlayer MarkerKind = iota
	MarkerEnemy
	MarkerItem
)

// String returns a human-readable marker kind.
func (k MarkerKind) String() string {
	switch k {
	case MarkerPlayer:
		return "player"
	case MarkerEnemy:
		return "enemy"
	case MarkerItem:
		return "item"
	default:
		return "unknown"
	}
}

// Marker is a spawn point recorded while parsing a map.
type Marker struct {
	Kind MarkerKind
	Code rune // Authoring code from the map rows, e.g. 'H' for a health potion
	Pos  Position
}
