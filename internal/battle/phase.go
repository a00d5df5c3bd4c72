package battle

// Phase represents where a battle session is in its turn cycle.
type Phase int

const (
	// PhaseTriggered - the encounter has been detected, the menu is not live yet
	PhaseTriggered Phase = iota
	// PhasePlayerTurn - waiting for the player to pick a menu action
	PhasePlayerTurn
	// PhaseResolving - an action and the enemy response are being applied
	PhaseResolving
	// PhaseVictory - the enemy was defeated
	PhaseVictory
	// PhaseDefeat - the player was defeated
	PhaseDefeat
	// PhaseFled - the player escaped
	PhaseFled
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTriggered:
		return "triggered"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseResolving:
		return "resolving"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	case PhaseFled:
		return "fled"
	default:
		return "unknown"
	}
}

// Over returns true once the session has reached a terminal phase.
func (p Phase) Over() bool {
	return p == PhaseVictory || p == PhaseDefeat || p == PhaseFled
}

// Action is a battle menu entry.
type Action int

const (
	ActionAttack Action = iota
	ActionDefend
	ActionRun
)

// Actions lists the menu entries in display order.
var Actions = []Action{ActionAttack, ActionDefend, ActionRun}

// String returns the menu label.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "Attack"
	case ActionDefend:
		return "Defend"
	case ActionRun:
		return "Run"
	default:
		return "Unknown"
	}
}
