package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Headmann88/Game-PyRPG/internal/entity"
	"github.com/Headmann88/Game-PyRPG/internal/world"
)

// transition advances to the next map, wrapping after the last one.
// Health and inventory carry over; enemies and items come fresh from the new map.
func (g *Game) transition(ctx context.Context) {
	from := g.mapIndex
	next := (g.mapIndex + 1) % len(g.maps)

	_, span := g.tracer.Start(ctx, "game.transition")
	defer span.End()

	g.loadMap(next)
	g.player.SetPosition(g.Map().FindSpawn(world.MarkerPlayer))
	g.message = "You enter " + g.Map().Name + "."

	span.SetAttributes(
		attribute.Int("map.from", from),
		attribute.Int("map.to", next),
		attribute.String("map.name", g.Map().Name),
		attribute.Int("enemies", len(g.enemies)),
		attribute.Int("items", len(g.items)),
	)
}

// loadMap selects a map and rebuilds its enemy and floor items from markers.
func (g *Game) loadMap(index int) {
	g.mapIndex = index
	g.actions = 0

	m := g.Map()
	g.enemies = nil
	if spawns := m.MarkersOf(world.MarkerEnemy); len(spawns) > 0 {
		// One enemy per map, at the first spawn marker
		g.enemies = []*entity.Enemy{g.spawnEnemy(spawns[0])}
	}

	g.items = nil
	for _, mk := range m.MarkersOf(world.MarkerItem) {
		if g.catalog == nil {
			continue
		}
		def := g.catalog.ItemByCode(mk.Code)
		if def == nil {
			continue
		}
		g.items = append(g.items, FloorItem{Item: def.Item(), Pos: mk.Pos})
	}
}

func (g *Game) spawnEnemy(mk world.Marker) *entity.Enemy {
	if g.catalog != nil {
		if def := g.catalog.EnemyByCode(mk.Code); def != nil {
			return entity.NewEnemyFromDef(def, mk.Pos)
		}
	}
	return entity.NewEnemy("Goblin", mk.Pos, entity.DefaultEnemyHP)
}
