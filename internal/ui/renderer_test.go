package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/horizon/internal/engine"
	"github.com/samdwyer/horizon/internal/entity"
	"github.com/samdwyer/horizon/internal/journal"
	"github.com/samdwyer/horizon/internal/world"
)

type cell struct {
	r     rune
	style tcell.Style
}

type fakeCanvas struct {
	w, h  int
	cells map[[2]int]cell
	shown int
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, cells: make(map[[2]int]cell)}
}

func (c *fakeCanvas) Clear()           { c.cells = make(map[[2]int]cell) }
func (c *fakeCanvas) Show()            { c.shown++ }
func (c *fakeCanvas) Size() (int, int) { return c.w, c.h }
func (c *fakeCanvas) at(x, y int) rune { return c.cells[[2]int{x, y}].r }
func (c *fakeCanvas) SetContent(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[[2]int{x, y}] = cell{r: r, style: style}
}

func (c *fakeCanvas) row(y int) string {
	var b strings.Builder
	for x := 0; x < c.w; x++ {
		r := c.at(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestViewportOrigin(t *testing.T) {
	tests := []struct {
		center, mapSize, view int
		want                  int
	}{
		{center: 50, mapSize: 150, view: 20, want: 40},
		{center: 3, mapSize: 150, view: 20, want: 0},
		{center: 148, mapSize: 150, view: 20, want: 130},
		{center: 5, mapSize: 10, view: 20, want: 0},
		{center: 5, mapSize: 10, view: 10, want: 0},
	}
	for _, tt := range tests {
		if got := ViewportOrigin(tt.center, tt.mapSize, tt.view); got != tt.want {
			t.Errorf("ViewportOrigin(%d, %d, %d) = %d, want %d", tt.center, tt.mapSize, tt.view, got, tt.want)
		}
	}
}

func TestRenderGame(t *testing.T) {
	m := world.NewBuilder(10, 6, world.TileFloor).Border().Build()
	player := engine.ActorView{
		Kind:   entity.KindPlayer,
		Name:   "Hero",
		Pos:    entity.Position{X: 2, Y: 2},
		Symbol: '@',
		Color:  tcell.ColorYellow,
		Stats:  entity.NewStats(100, 10, 5),
	}
	goblin := engine.ActorView{
		Kind:   entity.KindEnemy,
		Name:   "Goblin",
		Pos:    entity.Position{X: 4, Y: 3},
		Symbol: 'g',
		Color:  tcell.ColorGreen,
	}
	entries := []journal.Entry{
		{Turn: 2, Event: journal.Event{Kind: journal.EventMove, Name: "Hero", X: 2, Y: 2}},
		{Turn: 1, Event: journal.Event{Kind: journal.EventMove, Name: "Goblin", X: 4, Y: 3}},
	}

	c := newFakeCanvas(10+SidebarWidth, 20)
	NewRenderer(c).RenderGame(GameView{
		Map:     m,
		Actors:  []engine.ActorView{player, goblin},
		Player:  player,
		Turn:    2,
		Journal: entries,
	}, 2)

	if c.shown != 1 {
		t.Errorf("Show called %d times, want 1", c.shown)
	}
	if got := c.at(2, 2); got != '@' {
		t.Errorf("player cell = %q, want '@'", got)
	}
	if got := c.at(4, 3); got != 'g' {
		t.Errorf("goblin cell = %q, want 'g'", got)
	}
	if got := c.at(0, 0); got != '#' {
		t.Errorf("corner = %q, want '#'", got)
	}
	if got := c.at(1, 1); got != '.' {
		t.Errorf("floor = %q, want '.'", got)
	}
	if !strings.Contains(c.row(17), "[Turn: 2]: Hero moved into: (2, 2)") {
		t.Errorf("journal row 1 = %q", c.row(17))
	}
	if !strings.Contains(c.row(18), "[Turn: 1]: Goblin moved into: (4, 3)") {
		t.Errorf("journal row 2 = %q", c.row(18))
	}

	var sidebar strings.Builder
	for y := 0; y < 16; y++ {
		sidebar.WriteString(c.row(y))
	}
	for _, want := range []string{"Name: Hero", "HP: 100/100", "Position: (2, 2)"} {
		if !strings.Contains(sidebar.String(), want) {
			t.Errorf("sidebar missing %q", want)
		}
	}
}

func TestRenderGameScrollsWithPlayer(t *testing.T) {
	m := world.NewOpenMap(100, 100)
	player := engine.ActorView{Kind: entity.KindPlayer, Pos: entity.Position{X: 60, Y: 70}, Symbol: '@'}

	c := newFakeCanvas(20+SidebarWidth, 10)
	NewRenderer(c).RenderGame(GameView{Map: m, Actors: []engine.ActorView{player}, Player: player}, 0)

	if got := c.at(10, 5); got != '@' {
		t.Errorf("centre cell = %q, want '@'", got)
	}
}

func TestRenderMenu(t *testing.T) {
	c := newFakeCanvas(40, 12)
	NewRenderer(c).RenderMenu("Horizon", []string{"New Game", "Quit"}, 1)

	var all strings.Builder
	for y := 0; y < 12; y++ {
		all.WriteString(c.row(y))
		all.WriteByte('\n')
	}
	if !strings.Contains(all.String(), "> Quit <") {
		t.Errorf("selected item not marked:\n%s", all.String())
	}
	if !strings.Contains(all.String(), "  New Game  ") {
		t.Errorf("unselected item missing:\n%s", all.String())
	}
}
