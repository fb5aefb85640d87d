package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/horizon/internal/engine"
	"github.com/samdwyer/horizon/internal/entity"
	"github.com/samdwyer/horizon/internal/journal"
	"github.com/samdwyer/horizon/internal/world"
)

const (
	// SidebarWidth is the number of columns reserved on the right.
	SidebarWidth = 30
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleLabel  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleSelect = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleHP     = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// GameView is everything the game screen draws for one frame.
type GameView struct {
	Map     *world.Map
	Actors  []engine.ActorView
	Player  engine.ActorView
	Turn    int
	Journal []journal.Entry // newest first
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen Canvas
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen Canvas) *Renderer {
	return &Renderer{screen: screen}
}

// RenderMenu draws a titled list with one highlighted item.
func (r *Renderer) RenderMenu(title string, items []string, selected int) {
	r.screen.Clear()
	w, h := r.screen.Size()

	top := max(0, (h-len(items)*2-2)/2)
	r.textCentered(w, top, title, styleTitle)
	for i, item := range items {
		style := styleText
		label := "  " + item + "  "
		if i == selected {
			style = styleSelect
			label = "> " + item + " <"
		}
		r.textCentered(w, top+2+i*2, label, style)
	}
	r.textCentered(w, h-1, "Up/Down: choose  Enter: select  q: quit", styleLabel)
	r.screen.Show()
}

// RenderLines draws a titled block of plain text lines.
func (r *Renderer) RenderLines(title string, lines []string, footer string) {
	r.screen.Clear()
	_, h := r.screen.Size()
	r.text(2, 1, title, styleTitle)
	for i, line := range lines {
		r.text(2, 3+i, line, styleText)
	}
	r.text(2, h-1, footer, styleLabel)
	r.screen.Show()
}

// RenderGame draws the map viewport, the sidebar and the journal panel.
func (r *Renderer) RenderGame(v GameView, journalLines int) {
	r.screen.Clear()
	w, h := r.screen.Size()

	panelH := 0
	if journalLines > 0 {
		panelH = journalLines + 2
	}
	viewW := max(0, w-SidebarWidth)
	viewH := max(0, h-panelH)

	r.renderMap(v, viewW, viewH)
	r.renderSidebar(v, viewW, viewH)
	if panelH > 0 {
		r.renderJournal(v.Journal, journalLines, viewH, w)
	}
	r.screen.Show()
}

func (r *Renderer) renderMap(v GameView, viewW, viewH int) {
	m := v.Map
	ox := ViewportOrigin(v.Player.Pos.X, m.Width, viewW)
	oy := ViewportOrigin(v.Player.Pos.Y, m.Height, viewH)

	for sy := 0; sy < viewH; sy++ {
		for sx := 0; sx < viewW; sx++ {
			x, y := ox+sx, oy+sy
			if !m.InBounds(x, y) {
				continue
			}
			tile := m.GetTile(x, y)
			r.screen.SetContent(sx, sy, tile.Rune(), tileStyle(tile))
		}
	}

	// Enemies first so the player is always on top.
	for _, kind := range []entity.Kind{entity.KindEnemy, entity.KindPlayer} {
		for _, a := range v.Actors {
			if a.Kind != kind {
				continue
			}
			sx, sy := a.Pos.X-ox, a.Pos.Y-oy
			if sx < 0 || sy < 0 || sx >= viewW || sy >= viewH {
				continue
			}
			style := tcell.StyleDefault.Foreground(a.Color)
			if kind == entity.KindPlayer {
				style = style.Bold(true)
			}
			r.screen.SetContent(sx, sy, a.Symbol, style)
		}
	}
}

func (r *Renderer) renderSidebar(v GameView, x0, height int) {
	for y := 0; y < height; y++ {
		r.screen.SetContent(x0, y, '│', styleBorder)
	}
	x := x0 + 2
	p := v.Player
	y := 0
	line := func(label, value string, style tcell.Style) {
		r.text(x, y, label, styleLabel)
		r.text(x+len(label), y, value, style)
		y++
	}

	r.text(x, y, "Character", styleTitle)
	y += 2
	line("Name: ", p.Name, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	line("HP: ", fmt.Sprintf("%d/%d", p.Stats.HP, p.Stats.MaxHP), styleHP)
	line("Attack: ", fmt.Sprint(p.Stats.Attack), styleText)
	line("Defense: ", fmt.Sprint(p.Stats.Defense), styleText)
	line("Position: ", p.Pos.String(), styleText)
	y++
	line("Turn: ", fmt.Sprint(v.Turn), styleText)
	y++
	r.text(x, y, "Controls", styleTitle)
	y += 2
	for _, help := range []string{
		"Move: arrows or WASD",
		"Wait: . or space",
		"Esc: main menu",
		"q: quit",
	} {
		r.text(x, y, help, styleLabel)
		y++
	}
}

func (r *Renderer) renderJournal(entries []journal.Entry, lines, top, width int) {
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, top, '─', styleBorder)
	}
	r.text(1, top, " Journal ", styleTitle)
	for i, e := range entries {
		if i >= lines {
			break
		}
		r.text(1, top+1+i, e.String(), styleText)
	}
}

// ViewportOrigin returns the first map coordinate shown so that center is
// in the middle of a view of size view, clamped to the map edges.
func ViewportOrigin(center, mapSize, view int) int {
	if view >= mapSize {
		return 0
	}
	o := center - view/2
	return min(max(o, 0), mapSize-view)
}

// tileStyle returns the appropriate style for a tile type.
func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TileDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorOlive)
	case world.TileWater:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	default:
		return tcell.StyleDefault
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

func (r *Renderer) textCentered(width, y int, s string, style tcell.Style) {
	r.text(max(0, (width-len([]rune(s)))/2), y, s, style)
}
