package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Headmann88/Game-PyRPG/internal/item"
	"github.com/Headmann88/Game-PyRPG/internal/world"
)

// View is a read-only snapshot of everything a renderer draws.
type View struct {
	Mode Mode

	MapName  string
	MapIndex int
	MapCount int
	Rows     []string

	Player PlayerView
	Enemy  *EnemyView // Nil when the map has no live enemy
	Items  []FloorItem

	Inventory        []item.Item // Every slot, empty ones included
	InventoryVisible bool

	Battle *BattleView // Nil outside ModeBattle

	Banner        string
	BannerOpacity float64
	Message       string
}

// PlayerView is the player's displayable state.
type PlayerView struct {
	Pos          world.Position
	Symbol       rune
	HP, MaxHP    int
	Level        int
	Exp          int
	ExpNextLevel int
}

// EnemyView is an enemy's displayable state.
type EnemyView struct {
	Name      string
	Pos       world.Position
	Symbol    rune
	Color     tcell.Color
	HP, MaxHP int
}

// BattleView is the battle screen's displayable state.
type BattleView struct {
	EnemyName   string
	PlayerHP    int
	PlayerMaxHP int
	EnemyHP     int
	EnemyMaxHP  int
	Options     []string
	Selected    int
	Log         []string
}

// View builds a snapshot of the current state.
func (g *Game) View() View {
	m := g.Map()
	p := g.player

	v := View{
		Mode:     g.mode,
		MapName:  m.Name,
		MapIndex: g.mapIndex,
		MapCount: len(g.maps),
		Rows:     m.Rows(),
		Player: PlayerView{
			Pos:          p.Pos,
			Symbol:       p.Symbol,
			HP:           p.HP,
			MaxHP:        p.MaxHP,
			Level:        p.Level,
			Exp:          p.Exp,
			ExpNextLevel: p.ExpNextLevel,
		},
		Items:            append([]FloorItem(nil), g.items...),
		Inventory:        p.Inventory.Slots(),
		InventoryVisible: g.showInventory,
		Message:          g.message,
	}

	for _, e := range g.enemies {
		if !e.IsAlive() {
			continue
		}
		v.Enemy = &EnemyView{
			Name:   e.Name,
			Pos:    e.Pos,
			Symbol: e.Symbol,
			Color:  e.Color(),
			HP:     e.HP,
			MaxHP:  e.MaxHP,
		}
		break
	}

	if s := g.battle; s != nil {
		bv := &BattleView{
			EnemyName:   s.Enemy.Name,
			PlayerHP:    s.Player.HP,
			PlayerMaxHP: s.Player.MaxHP,
			EnemyHP:     s.Enemy.HP,
			EnemyMaxHP:  s.Enemy.MaxHP,
			Selected:    s.Selected,
			Log:         append([]string(nil), s.Log...),
		}
		for _, a := range s.Options() {
			bv.Options = append(bv.Options, a.String())
		}
		v.Battle = bv
	}

	if g.banner.Visible() {
		v.Banner = g.banner.Text
		v.BannerOpacity = g.banner.Opacity()
	}

	return v
}
