package game

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Headmann88/Game-PyRPG/internal/battle"
	"github.com/Headmann88/Game-PyRPG/internal/dice"
	"github.com/Headmann88/Game-PyRPG/internal/entity"
	"github.com/Headmann88/Game-PyRPG/internal/gamedata"
	"github.com/Headmann88/Game-PyRPG/internal/item"
	"github.com/Headmann88/Game-PyRPG/internal/telemetry"
	"github.com/Headmann88/Game-PyRPG/internal/world"
)

// ErrNoMaps is returned by New when the bundle has no maps to play.
var ErrNoMaps = errors.New("game needs at least one map")

// FloorItem is an item lying on the current map.
type FloorItem struct {
	Item item.Item
	Pos  world.Position
}

// Game holds the entire game state.
type Game struct {
	cfg     Config
	maps    []*world.TileMap
	catalog *gamedata.Catalog
	rng     dice.Source
	tracer  trace.Tracer

	mode     Mode
	running  bool
	mapIndex int
	player   *entity.Player
	enemies  []*entity.Enemy // Live enemies on the current map
	items    []FloorItem
	battle   *battle.Session
	banner   battle.Banner

	showInventory bool
	actions       int    // Player actions since the map was loaded
	message       string // Last exploration message
}

// New creates a game on the first map in ModeStart.
// If rng is nil a source is seeded from cfg.Seed.
func New(ctx context.Context, bundle *gamedata.Bundle, cfg Config, rng dice.Source) (*Game, error) {
	if bundle == nil || len(bundle.Maps) == 0 {
		return nil, ErrNoMaps
	}
	if rng == nil {
		r, err := dice.New(cfg.Seed)
		if err != nil {
			return nil, err
		}
		rng = r
	}

	g := &Game{
		cfg:     cfg,
		maps:    bundle.Maps,
		catalog: bundle.Catalog,
		rng:     rng,
		tracer:  telemetry.Tracer("game"),
	}

	_, span := g.tracer.Start(ctx, "game.new")
	g.reset()
	span.SetAttributes(
		attribute.Int("maps.count", len(g.maps)),
		attribute.String("map.name", g.Map().Name),
	)
	span.End()

	return g, nil
}

// Reset rebuilds the player, map, enemies, and items and returns to ModeStart.
func (g *Game) Reset(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "game.reset")
	defer span.End()

	g.reset()
}

func (g *Game) reset() {
	g.mode = ModeStart
	g.running = true
	g.mapIndex = 0
	g.battle = nil
	g.banner = battle.Banner{}
	g.showInventory = false
	g.message = ""
	g.player = entity.NewPlayer(g.Map().FindSpawn(world.MarkerPlayer))
	g.loadMap(0)
}

// Handle consumes one input intent. Quit is honoured in every mode.
func (g *Game) Handle(ctx context.Context, in Intent) {
	if in.Kind == IntentQuit {
		g.running = false
		return
	}

	switch g.mode {
	case ModeStart:
		if in.Kind == IntentConfirm {
			g.mode = ModeExploring
		}
	case ModeExploring:
		g.handleExplore(ctx, in)
	case ModeBattle:
		g.handleBattle(ctx, in)
	case ModeDead:
		if in.Kind == IntentRestart {
			g.Reset(ctx)
		}
	}
}

// Tick advances time-based display state by the elapsed frame time.
func (g *Game) Tick(dt time.Duration) {
	g.banner.Advance(dt)
}

// Running returns false once quit has been requested.
func (g *Game) Running() bool { return g.running }

// Mode returns the active mode.
func (g *Game) Mode() Mode { return g.mode }

// Map returns the current tile map.
func (g *Game) Map() *world.TileMap { return g.maps[g.mapIndex] }

// MapIndex returns the index of the current map.
func (g *Game) MapIndex() int { return g.mapIndex }

// Player returns the player.
func (g *Game) Player() *entity.Player { return g.player }

// Enemies returns the live enemies on the current map.
func (g *Game) Enemies() []*entity.Enemy { return g.enemies }

// Items returns the items lying on the current map.
func (g *Game) Items() []FloorItem { return g.items }

// Battle returns the active battle session, or nil.
func (g *Game) Battle() *battle.Session { return g.battle }

// Banner returns the current banner.
func (g *Game) Banner() battle.Banner { return g.banner }

// Message returns the last exploration message.
func (g *Game) Message() string { return g.message }

// InventoryVisible reports whether the inventory panel is open.
func (g *Game) InventoryVisible() bool { return g.showInventory }
