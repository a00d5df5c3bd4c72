package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/Headmann88/Game-PyRPG/internal/game"
)

// QuickUseItem is the item bound to the quick-use key.
const QuickUseItem = "Health Potion"

// KeyIntent decodes a key event into a game intent. Vertical movement keys
// drive the battle menu while a battle is active.
func KeyIntent(ev *tcell.EventKey, mode game.Mode) game.Intent {
	return keyIntent(ev.Key(), ev.Rune(), mode)
}

func keyIntent(key tcell.Key, r rune, mode game.Mode) game.Intent {
	kind := game.IntentNone

	switch key {
	case tcell.KeyCtrlC:
		kind = game.IntentQuit
	case tcell.KeyEscape:
		kind = game.IntentCancel
	case tcell.KeyEnter:
		kind = game.IntentConfirm
	case tcell.KeyUp:
		kind = game.IntentMoveUp
	case tcell.KeyDown:
		kind = game.IntentMoveDown
	case tcell.KeyLeft:
		kind = game.IntentMoveLeft
	case tcell.KeyRight:
		kind = game.IntentMoveRight

	case tcell.KeyRune:
		switch unicode.ToLower(r) {
		case 'q':
			kind = game.IntentQuit
		case 'w':
			kind = game.IntentMoveUp
		case 's':
			kind = game.IntentMoveDown
		case 'a':
			kind = game.IntentMoveLeft
		case 'd':
			kind = game.IntentMoveRight
		case 'i':
			kind = game.IntentToggleInventory
		case 'r':
			kind = game.IntentRestart
		case 'h':
			return game.UseItem(QuickUseItem)
		}
	}

	if mode == game.ModeBattle {
		switch kind {
		case game.IntentMoveUp:
			kind = game.IntentBattleUp
		case game.IntentMoveDown:
			kind = game.IntentBattleDown
		}
	}

	return game.Press(kind)
}
