package entity

import (
	"github.com/Headmann88/Game-PyRPG/internal/dice"
	"github.com/Headmann88/Game-PyRPG/internal/world"
)

// Policy decides which way an enemy tries to move on its turn.
type Policy interface {
	Choose(src dice.Source) (world.Direction, bool)
}

// RandomWalk picks one of the four directions uniformly at random.
// A blocked choice is not retried.
type RandomWalk struct{}

// Choose returns a uniformly random direction.
func (RandomWalk) Choose(src dice.Source) (world.Direction, bool) {
	return world.Directions[src.Intn(len(world.Directions))], true
}

// Stationary never moves.
type Stationary struct{}

// Choose always declines to move.
func (Stationary) Choose(dice.Source) (world.Direction, bool) {
	return 0, false
}
