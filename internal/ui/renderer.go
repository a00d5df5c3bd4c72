package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/Headmann88/Game-PyRPG/internal/game"
	"github.com/Headmann88/Game-PyRPG/internal/world"
)

const (
	hudGap   = 3  // Columns between the map and the side panel
	barWidth = 20 // Width of HP bars
)

var (
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	selectStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame for the given snapshot.
func (r *Renderer) Render(v game.View) {
	r.screen.Clear()

	switch v.Mode {
	case game.ModeStart:
		r.renderStart()
	case game.ModeExploring:
		r.renderExplore(v)
	case game.ModeBattle:
		r.renderBattle(v)
	case game.ModeDead:
		r.renderDead()
	}

	r.renderBanner(v)
	r.screen.Show()
}

func (r *Renderer) renderStart() {
	r.center(4, "P Y R P G", titleStyle)
	r.center(6, "Press Enter to start", textStyle)
	r.center(8, "arrows/WASD move   i inventory   h potion   q quit", dimStyle)
}

func (r *Renderer) renderDead() {
	r.center(4, "You have died.", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	r.center(6, "Press r to restart or q to quit", textStyle)
}

func (r *Renderer) renderExplore(v game.View) {
	// Tiles
	for y, row := range v.Rows {
		x := 0
		for _, ch := range row {
			tile := world.Tile(ch)
			r.screen.SetContent(x, y, tileGlyph(tile), tileStyle(tile))
			x++
		}
	}

	// Entities on top, player last
	for _, fi := range v.Items {
		r.screen.SetContent(fi.Pos.X, fi.Pos.Y, fi.Item.Symbol, tcell.StyleDefault.Foreground(fi.Item.Color))
	}
	if e := v.Enemy; e != nil {
		r.screen.SetContent(e.Pos.X, e.Pos.Y, e.Symbol, tcell.StyleDefault.Foreground(e.Color).Bold(true))
	}
	r.screen.SetContent(v.Player.Pos.X, v.Player.Pos.Y, v.Player.Symbol, playerStyle)

	// Side panel
	px := mapWidth(v.Rows) + hudGap
	y := 0
	r.screen.DrawText(px, y, fmt.Sprintf("%s (%d/%d)", v.MapName, v.MapIndex+1, v.MapCount), titleStyle)
	y += 2
	r.drawBar(px, y, "HP", v.Player.HP, v.Player.MaxHP)
	y++
	r.screen.DrawText(px, y, fmt.Sprintf("Lv %d  Exp %d/%d", v.Player.Level, v.Player.Exp, v.Player.ExpNextLevel), textStyle)
	y += 2

	if v.InventoryVisible {
		r.screen.DrawText(px, y, "Inventory", titleStyle)
		y++
		for i, it := range v.Inventory {
			label := "-"
			style := dimStyle
			if !it.IsZero() {
				label = it.Name
				style = textStyle
			}
			r.screen.DrawText(px, y, fmt.Sprintf("%d. %s", i+1, label), style)
			y++
		}
	} else {
		r.screen.DrawText(px, y, "i: inventory  h: use potion", dimStyle)
	}

	r.screen.DrawText(0, len(v.Rows)+1, v.Message, textStyle)
}

func (r *Renderer) renderBattle(v game.View) {
	b := v.Battle
	if b == nil {
		return
	}

	y := 1
	r.screen.DrawText(2, y, "Battle: "+b.EnemyName, titleStyle)
	y += 2
	r.drawBar(2, y, "You", b.PlayerHP, b.PlayerMaxHP)
	y++
	r.drawBar(2, y, padRight(b.EnemyName, 3), b.EnemyHP, b.EnemyMaxHP)
	y += 2

	for i, opt := range b.Options {
		style, prefix := textStyle, "  "
		if i == b.Selected {
			style, prefix = selectStyle, "> "
		}
		r.screen.DrawText(2, y, prefix+opt, style)
		y++
	}
	y++

	for _, line := range b.Log {
		r.screen.DrawText(2, y, line, dimStyle)
		y++
	}
}

// renderBanner draws the banner across the top line, fading with its opacity.
func (r *Renderer) renderBanner(v game.View) {
	if v.Banner == "" || v.BannerOpacity <= 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(fadeColor(v.BannerOpacity)).Bold(true)
	r.center(0, v.Banner, style)
}

// drawBar draws "label [#####     ] hp/max".
func (r *Renderer) drawBar(x, y int, label string, hp, maxHP int) {
	x = r.screen.DrawText(x, y, label+" ", textStyle)
	filled := barFill(hp, maxHP, barWidth)

	color := tcell.ColorGreen
	if filled*4 <= barWidth {
		color = tcell.ColorRed
	}
	x = r.screen.DrawText(x, y, "[", textStyle)
	x = r.screen.DrawText(x, y, strings.Repeat("#", filled), tcell.StyleDefault.Foreground(color))
	x = r.screen.DrawText(x, y, strings.Repeat(" ", barWidth-filled), textStyle)
	r.screen.DrawText(x, y, fmt.Sprintf("] %d/%d", hp, maxHP), textStyle)
}

func (r *Renderer) center(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	x := (w - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	r.screen.DrawText(x, y, text, style)
}

// tileGlyph returns the display character for a tile type.
func tileGlyph(tile world.Tile) rune {
	switch tile {
	case world.TileWall:
		return '#'
	case world.TileDoor:
		return '+'
	case world.TileFloor:
		return '.'
	default:
		return '?'
	}
}

// tileStyle returns the appropriate style for a tile type.
func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorOlive).Bold(true)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

// barFill returns how many of width cells an hp/maxHP bar fills.
func barFill(hp, maxHP, width int) int {
	if maxHP <= 0 || hp <= 0 {
		return 0
	}
	if hp >= maxHP {
		return width
	}
	filled := hp * width / maxHP
	if filled == 0 {
		filled = 1
	}
	return filled
}

// fadeColor scales white by opacity in [0, 1].
func fadeColor(opacity float64) tcell.Color {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c := int32(255 * opacity)
	return tcell.NewRGBColor(c, c, c)
}

func mapWidth(rows []string) int {
	w := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	return w
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
