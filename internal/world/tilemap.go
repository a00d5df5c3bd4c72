package world

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyMap      = errors.New("map has no rows")
	ErrRaggedMap     = errors.New("map rows differ in length")
	ErrNoPlayerSpawn = errors.New("map has no player spawn")
	ErrUnknownCell   = errors.New("unknown cell code")
)

// DefaultSpawn is returned by FindSpawn when a map has no marker of the requested kind.
var DefaultSpawn = Position{X: 1, Y: 1}

// Legend tells the parser which authoring codes are enemy and item spawn markers.
type Legend struct {
	EnemyCodes string
	ItemCodes  string
}

// DefaultLegend knows the goblin and health potion codes.
var DefaultLegend = Legend{EnemyCodes: "g", ItemCodes: "H"}

// TileMap is an immutable grid of tiles plus the spawn markers found in it.
type TileMap struct {
	Name    string
	Width   int
	Height  int
	Tiles   [][]Tile
	Markers []Marker // Row-major order
}

// Parse builds a TileMap from rows of single-character cell codes.
// Spawn markers are recorded and replaced by floor.
func Parse(name string, rows []string, legend Legend) (*TileMap, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("map %q: %w", name, ErrEmptyMap)
	}

	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("map %q: %w", name, ErrEmptyMap)
	}

	m := &TileMap{
		Name:   name,
		Width:  width,
		Height: len(rows),
		Tiles:  make([][]Tile, len(rows)),
	}

	hasPlayer := false
	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != width {
			return nil, fmt.Errorf("map %q row %d has %d cells, want %d: %w",
				name, y, len(cells), width, ErrRaggedMap)
		}

		m.Tiles[y] = make([]Tile, width)
		for x, code := range cells {
			pos := Position{X: x, Y: y}
			switch {
			case code == rune(TileWall), code == rune(TileFloor), code == rune(TileDoor):
				m.Tiles[y][x] = Tile(code)
				continue
			case code == CodePlayerSpawn:
				m.Markers = append(m.Markers, Marker{Kind: MarkerPlayer, Code: code, Pos: pos})
				hasPlayer = true
			case strings.ContainsRune(legend.EnemyCodes, code):
				m.Markers = append(m.Markers, Marker{Kind: MarkerEnemy, Code: code, Pos: pos})
			case strings.ContainsRune(legend.ItemCodes, code):
				m.Markers = append(m.Markers, Marker{Kind: MarkerItem, Code: code, Pos: pos})
			default:
				return nil, fmt.Errorf("map %q cell (%d,%d) %q: %w", name, x, y, code, ErrUnknownCell)
			}
			m.Tiles[y][x] = TileFloor
		}
	}

	if !hasPlayer {
		return nil, fmt.Errorf("map %q: %w", name, ErrNoPlayerSpawn)
	}
	return m, nil
}

// InBounds returns true if the position lies inside the grid.
func (m *TileMap) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < m.Width && pos.Y >= 0 && pos.Y < m.Height
}

// Passable returns true if the position is inside the grid and not a wall.
func (m *TileMap) Passable(pos Position) bool {
	if !m.InBounds(pos) {
		return false
	}
	return m.Tiles[pos.Y][pos.X].IsPassable()
}

// GetTile returns the tile at the given position. Out of bounds reads as wall.
func (m *TileMap) GetTile(pos Position) Tile {
	if !m.InBounds(pos) {
		return TileWall
	}
	return m.Tiles[pos.Y][pos.X]
}

// IsDoor returns true if the position holds a door tile.
func (m *TileMap) IsDoor(pos Position) bool {
	return m.GetTile(pos) == TileDoor
}

// FindSpawn returns the first marker of the given kind in row-major order,
// or DefaultSpawn if there is none.
func (m *TileMap) FindSpawn(kind MarkerKind) Position {
	for _, mk := range m.Markers {
		if mk.Kind == kind {
			return mk.Pos
		}
	}
	return DefaultSpawn
}

// MarkersOf returns every marker of the given kind in row-major order.
func (m *TileMap) MarkersOf(kind MarkerKind) []Marker {
	var out []Marker
	for _, mk := range m.Markers {
		if mk.Kind == kind {
			out = append(out, mk)
		}
	}
	return out
}

// Rows returns the terrain as strings, one per row, for display.
func (m *TileMap) Rows() []string {
	rows := make([]string, m.Height)
	for y, line := range m.Tiles {
		var b strings.Builder
		for _, t := range line {
			b.WriteRune(t.Rune())
		}
		rows[y] = b.String()
	}
	return rows
}
