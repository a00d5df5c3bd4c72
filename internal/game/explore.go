package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/Headmann88/Game-PyRPG/internal/entity"
	"github.com/Headmann88/Game-PyRPG/internal/item"
	"github.com/Headmann88/Game-PyRPG/internal/world"
)

// handleExplore processes input while walking the map.
func (g *Game) handleExplore(ctx context.Context, in Intent) {
	if d, ok := in.Kind.direction(); ok {
		g.step(ctx, d)
		return
	}

	switch in.Kind {
	case IntentToggleInventory:
		g.showInventory = !g.showInventory
	case IntentCancel:
		g.showInventory = false
	case IntentUseItem:
		// A missing item is reported through the message line only.
		_ = g.UseItem(in.Item)
	}
}

// step moves the player, then resolves pickups, encounters, doors, and the
// throttled enemy turn, in that order. A blocked move still counts toward the
// enemy turn but resolves nothing at the player's tile.
func (g *Game) step(ctx context.Context, d world.Direction) {
	moved := g.player.Move(d, g.Map())
	g.actions++

	if moved {
		g.pickUp()

		if g.checkEncounter(ctx) {
			return
		}
		if g.Map().IsDoor(g.player.Pos) {
			g.transition(ctx)
			return
		}
	}

	if g.actions%g.cfg.cadence() == 0 {
		for _, e := range g.enemies {
			e.Step(g.rng, g.Map())
		}
		g.checkEncounter(ctx)
	}
}

// pickUp moves an item under the player into the inventory if there is room.
func (g *Game) pickUp() {
	for i, fi := range g.items {
		if fi.Pos != g.player.Pos {
			continue
		}
		if g.player.Inventory.IsFull() {
			g.message = fmt.Sprintf("Your inventory is full. The %s stays here.", fi.Item.Name)
			return
		}
		if _, err := g.player.Inventory.Add(fi.Item); err != nil {
			return
		}
		g.items = append(g.items[:i], g.items[i+1:]...)
		g.message = fmt.Sprintf("You picked up a %s.", fi.Item.Name)
		return
	}
}

// checkEncounter starts a battle if a live enemy shares the player's tile.
func (g *Game) checkEncounter(ctx context.Context) bool {
	if e := g.enemyAt(g.player.Pos); e != nil {
		g.startBattle(ctx, e)
		return true
	}
	return false
}

// enemyAt returns the live enemy standing on pos, or nil.
func (g *Game) enemyAt(pos world.Position) *entity.Enemy {
	for _, e := range g.enemies {
		if e.IsAlive() && e.Pos == pos {
			return e
		}
	}
	return nil
}

// ErrNotExploring is returned by UseItem outside ModeExploring.
var ErrNotExploring = errors.New("items can only be used while exploring")

// UseItem applies the first inventory item with the given name to the player.
// A missing item returns item.ErrItemNotFound and changes nothing.
func (g *Game) UseItem(name string) error {
	if g.mode != ModeExploring {
		return ErrNotExploring
	}
	// Known items are reported under their catalog name.
	if g.catalog != nil {
		if def := g.catalog.ItemByName(name); def != nil {
			name = def.Name
		}
	}

	used, amount, err := g.player.Inventory.Use(name, g.player)
	if err != nil {
		if errors.Is(err, item.ErrItemNotFound) {
			g.message = fmt.Sprintf("You don't have a %s.", name)
		}
		return err
	}
	switch used.Effect.Kind {
	case item.EffectHeal:
		g.message = fmt.Sprintf("You used a %s and recovered %d health.", used.Name, amount)
	default:
		g.message = fmt.Sprintf("You used a %s. Nothing happens.", used.Name)
	}
	return nil
}
