// Package battle provides the turn-based battle between the player and one enemy.
package battle

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Headmann88/Game-PyRPG/internal/dice"
	"github.com/Headmann88/Game-PyRPG/internal/entity"
	"github.com/Headmann88/Game-PyRPG/internal/world"
)

// Damage ranges, inclusive.
const (
	PlayerMinDamage = 5
	PlayerMaxDamage = 15
	EnemyMinDamage  = 3
	EnemyMaxDamage  = 10
)

// LogSize is how many log lines a session keeps.
const LogSize = 5

// Result summarises one resolution step.
type Result struct {
	Action      Action
	Resolved    bool // False if the action was ignored because it was not the player's turn
	DamageDealt int
	DamageTaken int
	Phase       Phase
}

// Session holds the state of one battle.
type Session struct {
	ID       string
	Player   *entity.Player
	Enemy    *entity.Enemy
	Selected int      // Index into Actions
	Log      []string // Most recent last, at most LogSize entries
	Phase    Phase
	Turns    int

	terrain entity.Terrain
	rng     dice.Source
}

// NewSession creates a session for an encounter. It starts in PhaseTriggered;
// call Begin once the encounter has been announced.
func NewSession(player *entity.Player, enemy *entity.Enemy, terrain entity.Terrain, rng dice.Source) *Session {
	return &Session{
		ID:      uuid.NewString(),
		Player:  player,
		Enemy:   enemy,
		Phase:   PhaseTriggered,
		Log:     make([]string, 0, LogSize),
		terrain: terrain,
		rng:     rng,
	}
}

// Begin opens the menu for the player's first turn.
func (s *Session) Begin() {
	if s.Phase == PhaseTriggered {
		s.Phase = PhasePlayerTurn
		s.logf("A wild %s appears!", s.Enemy.GetName())
	}
}

// Options returns the menu entries in display order.
func (s *Session) Options() []Action {
	return Actions
}

// SelectedAction returns the highlighted menu entry.
func (s *Session) SelectedAction() Action {
	return Actions[s.Selected]
}

// MoveSelection cycles the highlighted entry. It has no other effect.
func (s *Session) MoveSelection(delta int) {
	n := len(Actions)
	s.Selected = ((s.Selected+delta)%n + n) % n
}

// Confirm resolves the highlighted action.
func (s *Session) Confirm() Result {
	return s.Resolve(s.SelectedAction())
}

// Resolve applies one action and the enemy's response. Actions outside the
// player's turn are ignored.
func (s *Session) Resolve(action Action) Result {
	result := Result{Action: action, Phase: s.Phase}
	if s.Phase != PhasePlayerTurn {
		return result
	}

	s.Phase = PhaseResolving
	result.Resolved = true

	switch action {
	case ActionAttack:
		s.attack(&result)
	case ActionDefend:
		s.logf("You brace yourself and defend.")
		result.DamageTaken = s.counterAttack(true)
	case ActionRun:
		s.run(&result)
	default:
		s.Phase = PhasePlayerTurn
		result.Resolved = false
	}

	if result.Resolved {
		s.Turns++
	}
	result.Phase = s.Phase
	return result
}

// attack rolls player damage and ends the battle if the enemy falls.
func (s *Session) attack(result *Result) {
	damage := dice.Between(s.rng, PlayerMinDamage, PlayerMaxDamage)
	s.Enemy.TakeDamage(damage)
	result.DamageDealt = damage
	s.logf("You attack the %s for %d damage!", s.Enemy.GetName(), damage)

	if !s.Enemy.IsAlive() {
		s.logf("You defeated the %s!", s.Enemy.GetName())
		s.Phase = PhaseVictory
		return
	}
	result.DamageTaken = s.counterAttack(false)
}

// run looks for a passable tile next to the player in a shuffled order.
func (s *Session) run(result *Result) {
	dirs := world.Directions
	s.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

	for _, d := range dirs {
		next := s.Player.Pos.Step(d)
		if s.terrain.Passable(next) {
			s.Player.SetPosition(next)
			s.logf("You successfully ran away!")
			s.Phase = PhaseFled
			return
		}
	}

	s.logf("You couldn't find a way to escape!")
	result.DamageTaken = s.counterAttack(false)
}

// counterAttack lets the enemy strike back and returns the damage dealt.
func (s *Session) counterAttack(defending bool) int {
	damage := dice.Between(s.rng, EnemyMinDamage, EnemyMaxDamage)
	if defending {
		damage = DefendedDamage(damage)
	}
	s.Player.TakeDamage(damage)
	s.logf("The %s attacks you for %d damage!", s.Enemy.GetName(), damage)

	if !s.Player.IsAlive() {
		s.logf("You have been defeated...")
		s.Phase = PhaseDefeat
		return damage
	}
	s.Phase = PhasePlayerTurn
	return damage
}

// DefendedDamage halves raw damage, rounding down, with a floor of 1.
func DefendedDamage(raw int) int {
	return max(1, raw/2)
}

func (s *Session) logf(format string, args ...any) {
	s.Log = append(s.Log, fmt.Sprintf(format, args...))
	if len(s.Log) > LogSize {
		s.Log = append(s.Log[:0], s.Log[len(s.Log)-LogSize:]...)
	}
}
