package gamedata

import "github.com/gdamore/tcell/v2"

// Movement values for EnemyDef.
const (
	MovementWander     = "wander"
	MovementStationary = "stationary"
)

// EnemyDef defines an enemy type loaded from YAML.
type EnemyDef struct {
	ID    string `yaml:"id"`    // Unique identifier (e.g., "goblin")
	Name  string `yaml:"name"`  // Display name (e.g., "Goblin")
	Code  string `yaml:"code"`  // Map spawn code (e.g., "g")
	Glyph string `yaml:"glyph"` // Single character for rendering
	Color string `yaml:"color"` // Hex code (e.g., "#00FF00") or tcell color name
	HP    int    `yaml:"hp"`    // Base hit points

	// Movement is "wander" (default) or "stationary".
	Movement string `yaml:"movement"`
}

// Stationary reports whether enemies of this kind never move.
func (e *EnemyDef) Stationary() bool {
	return e.Movement == MovementStationary
}

// CodeRune returns the spawn code as a rune.
func (e *EnemyDef) CodeRune() rune {
	return firstRune(e.Code)
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return e.CodeRune()
	}
	return firstRune(e.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	return colorOr(e.Color, tcell.ColorGreen)
}

// EnemiesFile represents the structure of enemies.yaml.
type EnemiesFile struct {
	Enemies []EnemyDef `yaml:"enemies"`
}
