package gamedata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Headmann88/Game-PyRPG/internal/item"
	"github.com/Headmann88/Game-PyRPG/internal/world"
)

const (
	mapsFile    = "maps.yaml"
	itemsFile   = "items.yaml"
	enemiesFile = "enemies.yaml"
)

var (
	ErrNoMaps      = errors.New("no maps loaded")
	ErrBadSpawnDef = errors.New("invalid spawn code")
)

// Catalog indexes item and enemy definitions by their map spawn code.
type Catalog struct {
	items      map[rune]*ItemDef
	enemies    map[rune]*EnemyDef
	itemOrder  []rune
	enemyOrder []rune
}

// NewCatalog creates a catalog from loaded definitions.
// Spawn codes must be a single character and must not collide with terrain,
// the player spawn, or another definition.
func NewCatalog(items []ItemDef, enemies []EnemyDef) (*Catalog, error) {
	c := &Catalog{
		items:   make(map[rune]*ItemDef),
		enemies: make(map[rune]*EnemyDef),
	}
	for i := range items {
		code, err := c.claim(items[i].Code, "item "+items[i].ID)
		if err != nil {
			return nil, err
		}
		c.items[code] = &items[i]
		c.itemOrder = append(c.itemOrder, code)
	}
	for i := range enemies {
		code, err := c.claim(enemies[i].Code, "enemy "+enemies[i].ID)
		if err != nil {
			return nil, err
		}
		c.enemies[code] = &enemies[i]
		c.enemyOrder = append(c.enemyOrder, code)
	}
	return c, nil
}

func (c *Catalog) claim(code, owner string) (rune, error) {
	runes := []rune(code)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%s code %q: %w", owner, code, ErrBadSpawnDef)
	}
	r := runes[0]
	switch world.Tile(r) {
	case world.TileWall, world.TileFloor, world.TileDoor:
		return 0, fmt.Errorf("%s code %q is a terrain code: %w", owner, code, ErrBadSpawnDef)
	}
	if r == world.CodePlayerSpawn {
		return 0, fmt.Errorf("%s code %q is the player spawn: %w", owner, code, ErrBadSpawnDef)
	}
	if _, ok := c.items[r]; ok {
		return 0, fmt.Errorf("%s code %q already used: %w", owner, code, ErrBadSpawnDef)
	}
	if _, ok := c.enemies[r]; ok {
		return 0, fmt.Errorf("%s code %q already used: %w", owner, code, ErrBadSpawnDef)
	}
	return r, nil
}

// Legend returns the spawn codes the map parser should recognise.
func (c *Catalog) Legend() world.Legend {
	return world.Legend{
		EnemyCodes: string(c.enemyOrder),
		ItemCodes:  string(c.itemOrder),
	}
}

// ItemByCode returns the item definition for a spawn code, or nil.
func (c *Catalog) ItemByCode(code rune) *ItemDef {
	return c.items[code]
}

// EnemyByCode returns the enemy definition for a spawn code, or nil.
func (c *Catalog) EnemyByCode(code rune) *EnemyDef {
	return c.enemies[code]
}

// ItemByName returns the first item definition with the given name, ignoring case.
func (c *Catalog) ItemByName(name string) *ItemDef {
	for _, code := range c.itemOrder {
		if item.SameName(c.items[code].Name, name) {
			return c.items[code]
		}
	}
	return nil
}

// Bundle is everything the game needs from data files.
type Bundle struct {
	Maps    []*world.TileMap
	Catalog *Catalog
}

// LoadBundle loads items, enemies, and maps from the filesystem.
// Any malformed map fails the whole load.
func LoadBundle(fsys fs.FS) (*Bundle, error) {
	items, err := LoadFS[ItemsFile](fsys, itemsFile)
	if err != nil {
		return nil, err
	}
	enemies, err := LoadFS[EnemiesFile](fsys, enemiesFile)
	if err != nil {
		return nil, err
	}
	catalog, err := NewCatalog(items.Items, enemies.Enemies)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	file, err := LoadFS[MapsFile](fsys, mapsFile)
	if err != nil {
		return nil, err
	}
	if len(file.Maps) == 0 {
		return nil, ErrNoMaps
	}

	legend := catalog.Legend()
	maps := make([]*world.TileMap, 0, len(file.Maps))
	for i, def := range file.Maps {
		name := def.Name
		if name == "" {
			name = fmt.Sprintf("map %d", i)
		}
		m, err := world.Parse(name, def.Rows, legend)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", mapsFile, err)
		}
		maps = append(maps, m)
	}

	return &Bundle{Maps: maps, Catalog: catalog}, nil
}

// LoadEmbedded loads the bundle compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadBundle(dataFS)
}

// LoadDir loads the bundle from a directory on disk.
func LoadDir(dir string) (*Bundle, error) {
	return LoadBundle(os.DirFS(dir))
}
