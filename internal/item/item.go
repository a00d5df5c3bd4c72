// Package item provides items, their effects, and the player's inventory.
package item

import "github.com/gdamore/tcell/v2"

// MaxHealth is the ceiling healing effects clamp to.
const MaxHealth = 100

// EffectKind enumerates what using an item does.
type EffectKind int

const (
	// EffectNone does nothing when applied.
	EffectNone EffectKind = iota
	// EffectHeal restores health by the effect magnitude.
	EffectHeal
)

// String returns the effect name as written in data files.
func (k EffectKind) String() string {
	switch k {
	case EffectHeal:
		return "heal"
	default:
		return "none"
	}
}

// ParseEffectKind maps a data-file effect name to an EffectKind.
// Unknown names map to EffectNone so newer data stays loadable.
func ParseEffectKind(name string) EffectKind {
	switch name {
	case "heal":
		return EffectHeal
	default:
		return EffectNone
	}
}

// Effect is an effect kind with its magnitude.
type Effect struct {
	Kind      EffectKind
	Magnitude int
}

// Target is anything an item effect can act on.
type Target interface {
	Heal(amount int) int
}

// Item is a usable object that can sit on the map or in an inventory.
type Item struct {
	Name   string
	Symbol rune
	Color  tcell.Color
	Effect Effect
}

// Apply applies the item's effect to the target and returns the amount of
// change it caused. Unknown effect kinds are a no-op.
func (i Item) Apply(target Target) int {
	switch i.Effect.Kind {
	case EffectHeal:
		return target.Heal(i.Effect.Magnitude)
	default:
		return 0
	}
}

// IsZero returns true for the empty item used to represent a free slot.
func (i Item) IsZero() bool {
	return i.Name == ""
}
