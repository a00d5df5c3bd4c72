package game

import "github.com/Headmann88/Game-PyRPG/internal/world"

// IntentKind is a decoded player input.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentMoveLeft
	IntentMoveRight
	IntentMoveUp
	IntentMoveDown
	IntentConfirm
	IntentCancel
	IntentBattleUp
	IntentBattleDown
	IntentToggleInventory
	IntentUseItem
	IntentQuit
	IntentRestart
)

// String returns a human-readable intent name.
func (k IntentKind) String() string {
	switch k {
	case IntentMoveLeft:
		return "move_left"
	case IntentMoveRight:
		return "move_right"
	case IntentMoveUp:
		return "move_up"
	case IntentMoveDown:
		return "move_down"
	case IntentConfirm:
		return "confirm"
	case IntentCancel:
		return "cancel"
	case IntentBattleUp:
		return "battle_up"
	case IntentBattleDown:
		return "battle_down"
	case IntentToggleInventory:
		return "toggle_inventory"
	case IntentUseItem:
		return "use_item"
	case IntentQuit:
		return "quit"
	case IntentRestart:
		return "restart"
	default:
		return "none"
	}
}

// Intent is one input the state machine consumes.
type Intent struct {
	Kind IntentKind
	Item string // Item name for IntentUseItem
}

// Press returns an intent with no payload.
func Press(kind IntentKind) Intent {
	return Intent{Kind: kind}
}

// UseItem returns an intent to use the named item.
func UseItem(name string) Intent {
	return Intent{Kind: IntentUseItem, Item: name}
}

// Move returns the movement intent for a direction.
func Move(d world.Direction) Intent {
	switch d {
	case world.Left:
		return Press(IntentMoveLeft)
	case world.Right:
		return Press(IntentMoveRight)
	case world.Up:
		return Press(IntentMoveUp)
	case world.Down:
		return Press(IntentMoveDown)
	default:
		return Press(IntentNone)
	}
}

// direction maps movement intents to a direction.
func (k IntentKind) direction() (world.Direction, bool) {
	switch k {
	case IntentMoveLeft:
		return world.Left, true
	case IntentMoveRight:
		return world.Right, true
	case IntentMoveUp:
		return world.Up, true
	case IntentMoveDown:
		return world.Down, true
	default:
		return 0, false
	}
}
