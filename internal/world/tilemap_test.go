package world

import (
	"errors"
	"testing"
)

func testMap(t *testing.T) *TileMap {
	t.Helper()
	m, err := Parse("test", []string{
		"WWWWW",
		"WP gW",
		"W H D",
		"WWWWW",
	}, DefaultLegend)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return m
}

func TestParseDimensionsAndMarkers(t *testing.T) {
	m := testMap(t)

	if m.Width != 5 || m.Height != 4 {
		t.Errorf("Parse() size = %dx%d, want 5x4", m.Width, m.Height)
	}

	tests := []struct {
		kind MarkerKind
		want Position
	}{
		{MarkerPlayer, Position{1, 1}},
		{MarkerEnemy, Position{3, 1}},
		{MarkerItem, Position{2, 2}},
	}
	for _, tt := range tests {
		if got := m.FindSpawn(tt.kind); got != tt.want {
			t.Errorf("FindSpawn(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}

	// Spawn markers become floor
	for _, pos := range []Position{{1, 1}, {3, 1}, {2, 2}} {
		if got := m.GetTile(pos); got != TileFloor {
			t.Errorf("GetTile(%v) = %v, want floor", pos, got)
		}
	}

	items := m.MarkersOf(MarkerItem)
	if len(items) != 1 || items[0].Code != 'H' {
		t.Errorf("MarkersOf(item) = %+v, want one 'H' marker", items)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"empty", nil, ErrEmptyMap},
		{"blank row", []string{""}, ErrEmptyMap},
		{"ragged", []string{"WWW", "WP", "WWW"}, ErrRaggedMap},
		{"no player", []string{"WWW", "W W", "WWW"}, ErrNoPlayerSpawn},
		{"unknown code", []string{"WWW", "WPX", "WWW"}, ErrUnknownCell},
	}

	for _, tt := range tests {
		_, err := Parse(tt.name, tt.rows, DefaultLegend)
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%s) error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestPassable(t *testing.T) {
	m := testMap(t)

	tests := []struct {
		pos  Position
		want bool
	}{
		{Position{1, 1}, true},   // player spawn
		{Position{2, 1}, true},   // floor
		{Position{0, 0}, false},  // wall
		{Position{4, 2}, true},   // door
		{Position{-1, 1}, false}, // out of bounds left
		{Position{5, 1}, false},  // out of bounds right
		{Position{1, -1}, false}, // out of bounds top
		{Position{1, 4}, false},  // out of bounds bottom
	}
	for _, tt := range tests {
		if got := m.Passable(tt.pos); got != tt.want {
			t.Errorf("Passable(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestFindSpawnFallback(t *testing.T) {
	m, err := Parse("no enemies", []string{"WWW", "WPW", "WWW"}, DefaultLegend)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := m.FindSpawn(MarkerEnemy); got != DefaultSpawn {
		t.Errorf("FindSpawn(enemy) = %v, want default %v", got, DefaultSpawn)
	}
}

func TestIsDoorAndGetTileOutOfBounds(t *testing.T) {
	m := testMap(t)

	if !m.IsDoor(Position{4, 2}) {
		t.Error("IsDoor((4,2)) = false, want true")
	}
	if m.IsDoor(Position{2, 1}) {
		t.Error("IsDoor((2,1)) = true, want false")
	}
	if got := m.GetTile(Position{10, 10}); got != TileWall {
		t.Errorf("GetTile(out of bounds) = %v, want wall", got)
	}
}

func TestRows(t *testing.T) {
	m := testMap(t)
	want := []string{"WWWWW", "W   W", "W   D", "WWWWW"}
	got := m.Rows()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Rows()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPositionStep(t *testing.T) {
	start := Position{3, 3}
	tests := []struct {
		dir  Direction
		want Position
	}{
		{Left, Position{2, 3}},
		{Right, Position{4, 3}},
		{Up, Position{3, 2}},
		{Down, Position{3, 4}},
		{Direction(99), Position{3, 3}},
	}
	for _, tt := range tests {
		if got := start.Step(tt.dir); got != tt.want {
			t.Errorf("Step(%v) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}
