package entity

import (
	"github.com/Headmann88/Game-PyRPG/internal/item"
	"github.com/Headmann88/Game-PyRPG/internal/world"
)

// Player is the character controlled by the user.
type Player struct {
	Character
	Name   string
	Symbol rune

	// Level and experience are tracked for display only; no rule changes them yet.
	Level        int
	Exp          int
	ExpNextLevel int
}

// NewPlayer creates a level 1 player at full health.
func NewPlayer(pos world.Position) *Player {
	return &Player{
		Character:    NewCharacter(pos, item.MaxHealth),
		Name:         "You",
		Symbol:       '@',
		Level:        1,
		Exp:          0,
		ExpNextLevel: 100,
	}
}
