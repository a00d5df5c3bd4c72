// Package entity provides the player, enemies, and their shared movement rules.
package entity

import (
	"github.com/Headmann88/Game-PyRPG/internal/item"
	"github.com/Headmann88/Game-PyRPG/internal/world"
)

// Terrain answers whether a grid position can be entered.
// *world.TileMap satisfies it.
type Terrain interface {
	Passable(pos world.Position) bool
}

// Character is the position, health, and inventory shared by every entity.
type Character struct {
	Pos       world.Position
	HP, MaxHP int
	Inventory *item.Inventory
}

// NewCharacter creates a character at full health with an empty inventory.
func NewCharacter(pos world.Position, maxHP int) Character {
	return Character{
		Pos:       pos,
		HP:        maxHP,
		MaxHP:     maxHP,
		Inventory: item.NewInventory(),
	}
}

// Move steps one tile in the given direction if the destination is passable.
// A blocked move leaves the character where it is and returns false.
func (c *Character) Move(d world.Direction, terrain Terrain) bool {
	next := c.Pos.Step(d)
	if next == c.Pos || !terrain.Passable(next) {
		return false
	}
	c.Pos = next
	return true
}

// SetPosition places the character without any collision check.
func (c *Character) SetPosition(pos world.Position) { c.Pos = pos }

// IsAlive returns true if the character has HP remaining.
func (c *Character) IsAlive() bool { return c.HP > 0 }

// TakeDamage reduces HP, never below zero, and returns actual damage taken.
func (c *Character) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > c.HP {
		actual = c.HP
	}
	c.HP -= actual
	return actual
}

// Heal restores HP up to MaxHP and returns the actual amount healed.
func (c *Character) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if c.HP+actual > c.MaxHP {
		actual = c.MaxHP - c.HP
	}
	if actual < 0 {
		actual = 0
	}
	c.HP += actual
	return actual
}

var _ item.Target = (*Character)(nil)
