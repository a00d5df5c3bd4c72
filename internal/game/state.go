// Package game provides the top-level state machine that routes input to
// exploration, battle, and death handling.
package game

// Mode represents the current top-level game mode.
type Mode int

const (
	// ModeStart shows the title screen and waits for confirm.
	ModeStart Mode = iota
	// ModeExploring lets the player walk the current map.
	ModeExploring
	// ModeBattle runs the battle menu against the engaged enemy.
	ModeBattle
	// ModeDead shows the death screen and waits for restart.
	ModeDead
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModeExploring:
		return "exploring"
	case ModeBattle:
		return "battle"
	case ModeDead:
		return "dead"
	default:
		return "unknown"
	}
}
