package gamedata

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Headmann88/Game-PyRPG/internal/item"
)

// ItemDef defines an item kind loaded from YAML.
type ItemDef struct {
	ID        string `yaml:"id"`        // Unique identifier (e.g., "health_potion")
	Name      string `yaml:"name"`      // Display name, also the lookup key for using it
	Code      string `yaml:"code"`      // Map spawn code (e.g., "H")
	Symbol    string `yaml:"symbol"`    // Single character for rendering
	Color     string `yaml:"color"`     // Hex code or tcell color name
	Effect    string `yaml:"effect"`    // Effect name (e.g., "heal")
	Magnitude int    `yaml:"magnitude"` // Effect strength
}

// CodeRune returns the spawn code as a rune.
func (d *ItemDef) CodeRune() rune {
	return firstRune(d.Code)
}

// SymbolRune returns the symbol as a rune, falling back to the spawn code.
func (d *ItemDef) SymbolRune() rune {
	if d.Symbol == "" {
		return d.CodeRune()
	}
	return firstRune(d.Symbol)
}

// TCellColor returns the color as a tcell.Color.
func (d *ItemDef) TCellColor() tcell.Color {
	return colorOr(d.Color, tcell.ColorWhite)
}

// Item builds a fresh item instance from the definition.
func (d *ItemDef) Item() item.Item {
	return item.Item{
		Name:   d.Name,
		Symbol: d.SymbolRune(),
		Color:  d.TCellColor(),
		Effect: item.Effect{
			Kind:      item.ParseEffectKind(d.Effect),
			Magnitude: d.Magnitude,
		},
	}
}

// ItemsFile represents the structure of items.yaml.
type ItemsFile struct {
	Items []ItemDef `yaml:"items"`
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}
