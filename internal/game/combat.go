package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Headmann88/Game-PyRPG/internal/battle"
	"github.com/Headmann88/Game-PyRPG/internal/entity"
)

// startBattle opens a battle session against the enemy and announces it.
func (g *Game) startBattle(ctx context.Context, enemy *entity.Enemy) {
	g.battle = battle.NewSession(g.player, enemy, g.Map(), g.rng)

	_, span := g.tracer.Start(ctx, "battle.start")
	span.SetAttributes(
		attribute.String("battle.id", g.battle.ID),
		attribute.String("enemy.id", enemy.ID),
		attribute.String("enemy.name", enemy.Name),
		attribute.Int("enemy.hp", enemy.HP),
		attribute.Int("player.hp", g.player.HP),
	)
	span.End()

	g.banner.Arm("A wild "+enemy.Name+" appears!", g.cfg.BannerDuration)
	g.battle.Begin()
	g.showInventory = false
	g.mode = ModeBattle
}

// handleBattle processes menu input. Movement and item use are ignored.
func (g *Game) handleBattle(ctx context.Context, in Intent) {
	if g.battle == nil {
		g.mode = ModeExploring
		return
	}

	switch in.Kind {
	case IntentBattleUp:
		g.battle.MoveSelection(-1)
	case IntentBattleDown:
		g.battle.MoveSelection(1)
	case IntentConfirm:
		g.executeBattleTurn(ctx)
	}
}

// executeBattleTurn resolves the selected action and applies its outcome.
func (g *Game) executeBattleTurn(ctx context.Context) {
	ctx, span := g.tracer.Start(ctx, "battle.turn")
	defer span.End()

	result := g.battle.Confirm()
	span.SetAttributes(
		attribute.String("battle.id", g.battle.ID),
		attribute.String("action", result.Action.String()),
		attribute.Int("damage.dealt", result.DamageDealt),
		attribute.Int("damage.taken", result.DamageTaken),
		attribute.String("phase", result.Phase.String()),
	)

	switch result.Phase {
	case battle.PhaseVictory:
		g.removeEnemy(g.battle.Enemy)
		g.message = "You defeated the " + g.battle.Enemy.Name + "!"
		g.endBattle(ctx, ModeExploring)
	case battle.PhaseFled:
		g.banner.Arm("You successfully ran away!", g.cfg.BannerDuration)
		g.endBattle(ctx, ModeExploring)
	case battle.PhaseDefeat:
		g.endBattle(ctx, ModeDead)
	}
}

// endBattle records the outcome, destroys the session, and switches mode.
func (g *Game) endBattle(ctx context.Context, next Mode) {
	_, span := g.tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("battle.id", g.battle.ID),
		attribute.String("outcome", g.battle.Phase.String()),
		attribute.Int("turns_taken", g.battle.Turns),
		attribute.Int("player.hp_remaining", g.player.HP),
	)
	span.End()

	g.battle = nil
	g.mode = next
}

// removeEnemy drops a defeated enemy from the live list.
func (g *Game) removeEnemy(enemy *entity.Enemy) {
	alive := make([]*entity.Enemy, 0, len(g.enemies))
	for _, e := range g.enemies {
		if e != enemy {
			alive = append(alive, e)
		}
	}
	g.enemies = alive
}
