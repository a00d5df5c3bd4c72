package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/Headmann88/Game-PyRPG/internal/dice"
	"github.com/Headmann88/Game-PyRPG/internal/gamedata"
	"github.com/Headmann88/Game-PyRPG/internal/world"
)

// DefaultEnemyHP is used when an enemy is created without a definition.
const DefaultEnemyHP = 20

// Enemy represents a hostile creature on the current map.
type Enemy struct {
	Character
	ID     string             // Unique instance identifier
	Def    *gamedata.EnemyDef // Definition the enemy was built from (nil for ad hoc enemies)
	Name   string             // Display name (e.g., "Goblin")
	Symbol rune               // Display symbol
	Policy Policy             // Movement policy applied each enemy step
}

// NewEnemy creates an enemy with the given name and HP that wanders randomly.
func NewEnemy(name string, pos world.Position, hp int) *Enemy {
	if hp <= 0 {
		hp = DefaultEnemyHP
	}
	return &Enemy{
		Character: NewCharacter(pos, hp),
		ID:        uuid.NewString(),
		Name:      name,
		Symbol:    'g',
		Policy:    RandomWalk{},
	}
}

// NewEnemyFromDef creates an enemy from a data-driven definition.
func NewEnemyFromDef(def *gamedata.EnemyDef, pos world.Position) *Enemy {
	e := NewEnemy(def.Name, pos, def.HP)
	e.Def = def
	e.Symbol = def.GlyphRune()
	if def.Stationary() {
		e.Policy = Stationary{}
	}
	return e
}

// GetName returns the enemy's name.
func (e *Enemy) GetName() string { return e.Name }

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorGreen
}

// Step lets the movement policy pick a direction and applies the shared
// movement rule. It returns true if the enemy actually moved.
func (e *Enemy) Step(src dice.Source, terrain Terrain) bool {
	if e.Policy == nil {
		return false
	}
	d, ok := e.Policy.Choose(src)
	if !ok {
		return false
	}
	return e.Move(d, terrain)
}
