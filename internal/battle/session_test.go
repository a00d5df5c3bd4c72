package battle

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/Headmann88/Game-PyRPG/internal/dice"
	"github.com/Headmann88/Game-PyRPG/internal/entity"
	"github.com/Headmann88/Game-PyRPG/internal/world"
)

// Scripted Intn values are offsets from the bottom of each damage range.
func playerRoll(damage int) int { return damage - PlayerMinDamage }
func enemyRoll(damage int) int  { return damage - EnemyMinDamage }

func openMap(t *testing.T) *world.TileMap {
	t.Helper()
	m, err := world.Parse("open", []string{
		"WWWWW",
		"W   W",
		"W P W",
		"W   W",
		"WWWWW",
	}, world.DefaultLegend)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return m
}

func boxedMap(t *testing.T) *world.TileMap {
	t.Helper()
	m, err := world.Parse("boxed", []string{
		"WWW",
		"WPW",
		"WWW",
	}, world.DefaultLegend)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return m
}

func newTestSession(t *testing.T, m *world.TileMap, rng dice.Source) *Session {
	t.Helper()
	spawn := m.FindSpawn(world.MarkerPlayer)
	player := entity.NewPlayer(spawn)
	enemy := entity.NewEnemy("Goblin", spawn, 20)
	s := NewSession(player, enemy, m, rng)
	s.Begin()
	return s
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseTriggered, "triggered"},
		{PhasePlayerTurn, "player_turn"},
		{PhaseResolving, "resolving"},
		{PhaseVictory, "victory"},
		{PhaseDefeat, "defeat"},
		{PhaseFled, "fled"},
		{Phase(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.phase.String()
		if got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.expected)
		}
	}
}

func TestNewSession(t *testing.T) {
	m := openMap(t)
	player := entity.NewPlayer(world.Position{X: 2, Y: 2})
	enemy := entity.NewEnemy("Goblin", world.Position{X: 2, Y: 2}, 20)
	s := NewSession(player, enemy, m, dice.NewScripted())

	if s.Phase != PhaseTriggered {
		t.Errorf("NewSession().Phase = %v, want triggered", s.Phase)
	}
	if got := s.Resolve(ActionAttack); got.Resolved {
		t.Error("Resolve() before Begin should be ignored")
	}

	s.Begin()
	if s.Phase != PhasePlayerTurn {
		t.Errorf("Phase after Begin = %v, want player_turn", s.Phase)
	}
	if s.ID == "" {
		t.Error("NewSession() should assign an ID")
	}
	if len(s.Log) != 1 || s.Log[0] != "A wild Goblin appears!" {
		t.Errorf("Log after Begin = %q", s.Log)
	}
}

func TestMenuNavigationWraps(t *testing.T) {
	s := newTestSession(t, openMap(t), dice.NewScripted())
	hp := s.Player.HP

	tests := []struct {
		delta int
		want  Action
	}{
		{1, ActionDefend},
		{1, ActionRun},
		{1, ActionAttack},
		{-1, ActionRun},
		{-1, ActionDefend},
	}
	for _, tt := range tests {
		s.MoveSelection(tt.delta)
		if got := s.SelectedAction(); got != tt.want {
			t.Errorf("after MoveSelection(%d) selected = %v, want %v", tt.delta, got, tt.want)
		}
	}

	if s.Phase != PhasePlayerTurn || s.Player.HP != hp || s.Turns != 0 {
		t.Error("menu navigation should have no side effects")
	}
}

func TestAttackDamageRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		s := newTestSession(t, openMap(t), rng)
		s.Enemy.HP = 1000
		s.Enemy.MaxHP = 1000

		r := s.Resolve(ActionAttack)
		if r.DamageDealt < PlayerMinDamage || r.DamageDealt > PlayerMaxDamage {
			t.Fatalf("attack damage = %d, want [%d,%d]", r.DamageDealt, PlayerMinDamage, PlayerMaxDamage)
		}
		if s.Enemy.HP != 1000-r.DamageDealt {
			t.Fatalf("enemy HP = %d, want %d", s.Enemy.HP, 1000-r.DamageDealt)
		}
		if r.DamageTaken < EnemyMinDamage || r.DamageTaken > EnemyMaxDamage {
			t.Fatalf("counter damage = %d, want [%d,%d]", r.DamageTaken, EnemyMinDamage, EnemyMaxDamage)
		}
	}
}

func TestEnemyHealthIsSumOfDamage(t *testing.T) {
	rolls := []int{7, 12, 5}
	var script []int
	for _, r := range rolls {
		script = append(script, playerRoll(r), enemyRoll(3))
	}
	s := newTestSession(t, openMap(t), dice.NewScripted(script...))
	s.Enemy.HP, s.Enemy.MaxHP = 100, 100

	sum := 0
	for _, r := range rolls {
		s.Resolve(ActionAttack)
		sum += r
	}
	if s.Enemy.HP != 100-sum {
		t.Errorf("enemy HP = %d, want %d", s.Enemy.HP, 100-sum)
	}
}

func TestTwoTenDamageAttacksDefeatEnemy(t *testing.T) {
	rng := dice.NewScripted(playerRoll(10), enemyRoll(4), playerRoll(10))
	s := newTestSession(t, openMap(t), rng)

	first := s.Resolve(ActionAttack)
	if first.Phase != PhasePlayerTurn || s.Enemy.HP != 10 {
		t.Fatalf("after first attack phase=%v enemy HP=%d, want player_turn and 10", first.Phase, s.Enemy.HP)
	}
	if first.DamageTaken != 4 || s.Player.HP != 96 {
		t.Errorf("counter attack = %d (player HP %d), want 4 (96)", first.DamageTaken, s.Player.HP)
	}

	second := s.Resolve(ActionAttack)
	if second.Phase != PhaseVictory {
		t.Fatalf("after second attack phase = %v, want victory", second.Phase)
	}
	if second.DamageTaken != 0 || s.Player.HP != 96 {
		t.Errorf("enemy counter-attacked after defeat: took %d", second.DamageTaken)
	}
	if s.Enemy.HP != 0 {
		t.Errorf("enemy HP = %d, want 0", s.Enemy.HP)
	}
	if rng.Remaining() != 0 {
		t.Errorf("unused rolls = %d, want 0", rng.Remaining())
	}

	if third := s.Resolve(ActionAttack); third.Resolved {
		t.Error("Resolve() after victory should be ignored")
	}
	if !strings.Contains(s.Log[len(s.Log)-1], "defeated the Goblin") {
		t.Errorf("last log = %q, want defeat message", s.Log[len(s.Log)-1])
	}
}

func TestDefendedDamage(t *testing.T) {
	tests := []struct {
		raw  int
		want int
	}{
		{3, 1}, {4, 2}, {5, 2}, {6, 3}, {7, 3}, {8, 4}, {9, 4}, {10, 5},
		{1, 1}, {0, 1},
	}
	for _, tt := range tests {
		if got := DefendedDamage(tt.raw); got != tt.want {
			t.Errorf("DefendedDamage(%d) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestDefendHalvesCounterAttack(t *testing.T) {
	for raw := EnemyMinDamage; raw <= EnemyMaxDamage; raw++ {
		s := newTestSession(t, openMap(t), dice.NewScripted(enemyRoll(raw)))

		r := s.Resolve(ActionDefend)
		want := DefendedDamage(raw)
		if r.DamageTaken != want {
			t.Errorf("Defend with raw %d took %d, want %d", raw, r.DamageTaken, want)
		}
		if s.Player.HP != 100-want {
			t.Errorf("Defend with raw %d left HP %d, want %d", raw, s.Player.HP, 100-want)
		}
		if s.Enemy.HP != 20 {
			t.Errorf("Defend changed enemy HP to %d", s.Enemy.HP)
		}
		if r.Phase != PhasePlayerTurn {
			t.Errorf("Defend phase = %v, want player_turn", r.Phase)
		}
	}
}

func TestEnemyKillsPlayer(t *testing.T) {
	s := newTestSession(t, openMap(t), dice.NewScripted(playerRoll(5), enemyRoll(10)))
	s.Player.HP = 8
	s.MoveSelection(2)

	r := s.Resolve(ActionAttack)
	if r.Phase != PhaseDefeat {
		t.Fatalf("phase = %v, want defeat", r.Phase)
	}
	if s.Player.HP != 0 || s.Player.IsAlive() {
		t.Errorf("player HP = %d, want 0", s.Player.HP)
	}
	if !r.Phase.Over() {
		t.Error("defeat should be a terminal phase")
	}
}

func TestRunEscapes(t *testing.T) {
	s := newTestSession(t, openMap(t), dice.NewScripted())
	start := s.Player.Pos

	r := s.Resolve(ActionRun)
	if r.Phase != PhaseFled {
		t.Fatalf("phase = %v, want fled", r.Phase)
	}
	// The scripted source does not shuffle, so left is tried first.
	if want := start.Step(world.Left); s.Player.Pos != want {
		t.Errorf("player fled to %v, want %v", s.Player.Pos, want)
	}
	if r.DamageTaken != 0 || s.Player.HP != 100 {
		t.Errorf("enemy attacked a fleeing player for %d", r.DamageTaken)
	}
	if s.Enemy.Pos != start {
		t.Errorf("enemy moved to %v during escape", s.Enemy.Pos)
	}
}

// reversingSource shuffles by reversing the order.
type reversingSource struct {
	*dice.Scripted
}

func (reversingSource) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

func TestRunOrderComesFromShuffle(t *testing.T) {
	s := newTestSession(t, openMap(t), reversingSource{dice.NewScripted()})
	start := s.Player.Pos

	if r := s.Resolve(ActionRun); r.Phase != PhaseFled {
		t.Fatalf("phase = %v, want fled", r.Phase)
	}
	// Reversed order tries down first
	if want := start.Step(world.Down); s.Player.Pos != want {
		t.Errorf("player fled to %v, want %v", s.Player.Pos, want)
	}
	if world.Directions != [4]world.Direction{world.Left, world.Right, world.Up, world.Down} {
		t.Errorf("Directions mutated to %v", world.Directions)
	}
}

func TestRunPicksOnlyPassableNeighbour(t *testing.T) {
	m, err := world.Parse("corridor", []string{
		"WWWWW",
		"WWPWW",
		"WW WW",
		"WWWWW",
	}, world.DefaultLegend)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 20; i++ {
		s := newTestSession(t, m, rng)
		s.Resolve(ActionRun)
		if s.Player.Pos != (world.Position{X: 2, Y: 2}) {
			t.Fatalf("player fled to %v, want (2,2)", s.Player.Pos)
		}
	}
}

func TestRunBlockedTakesFullCounterAttack(t *testing.T) {
	s := newTestSession(t, boxedMap(t), dice.NewScripted(enemyRoll(9)))
	start := s.Player.Pos

	r := s.Resolve(ActionRun)
	if r.Phase != PhasePlayerTurn {
		t.Fatalf("phase = %v, want player_turn", r.Phase)
	}
	if s.Player.Pos != start {
		t.Errorf("player moved to %v while boxed in", s.Player.Pos)
	}
	if r.DamageTaken != 9 || s.Player.HP != 91 {
		t.Errorf("failed escape took %d (HP %d), want 9 (91)", r.DamageTaken, s.Player.HP)
	}

	found := false
	for _, line := range s.Log {
		if strings.Contains(line, "couldn't find a way to escape") {
			found = true
		}
	}
	if !found {
		t.Errorf("log %q missing escape failure", s.Log)
	}
}

func TestLogKeepsLastFive(t *testing.T) {
	var script []int
	for i := 0; i < 10; i++ {
		script = append(script, enemyRoll(3))
	}
	s := newTestSession(t, openMap(t), dice.NewScripted(script...))

	for i := 0; i < 10; i++ {
		s.Resolve(ActionDefend)
	}
	if len(s.Log) != LogSize {
		t.Fatalf("len(Log) = %d, want %d", len(s.Log), LogSize)
	}
	if !strings.Contains(s.Log[LogSize-1], "attacks you") {
		t.Errorf("newest log line = %q, want enemy attack", s.Log[LogSize-1])
	}
	if s.Turns != 10 {
		t.Errorf("Turns = %d, want 10", s.Turns)
	}
}

func TestConfirmUsesSelection(t *testing.T) {
	s := newTestSession(t, openMap(t), dice.NewScripted(enemyRoll(6)))
	s.MoveSelection(1)

	r := s.Confirm()
	if r.Action != ActionDefend {
		t.Errorf("Confirm() action = %v, want Defend", r.Action)
	}
	if r.DamageTaken != 3 {
		t.Errorf("Confirm() defend damage = %d, want 3", r.DamageTaken)
	}
}

func TestBannerFades(t *testing.T) {
	var b Banner
	if b.Visible() {
		t.Error("zero Banner should not be visible")
	}

	b.Arm("A wild Goblin appears!", 2*time.Second)
	if !b.Visible() || b.Opacity() != 1 {
		t.Errorf("fresh banner visible=%v opacity=%v, want true 1", b.Visible(), b.Opacity())
	}

	b.Advance(500 * time.Millisecond)
	if got := b.Opacity(); got != 0.75 {
		t.Errorf("Opacity() after 0.5s = %v, want 0.75", got)
	}

	b.Advance(2 * time.Second)
	if b.Visible() || b.Opacity() != 0 || b.Remaining != 0 {
		t.Errorf("expired banner visible=%v opacity=%v remaining=%v", b.Visible(), b.Opacity(), b.Remaining)
	}

	b.Arm("You successfully ran away!", 0)
	if b.Duration != DefaultBannerDuration || !b.Visible() {
		t.Errorf("Arm(0) duration = %v, want default", b.Duration)
	}
}
