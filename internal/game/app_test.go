package game

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/samdwyer/horizon/internal/config"
	"github.com/samdwyer/horizon/internal/engine"
	"github.com/samdwyer/horizon/internal/entity"
	"github.com/samdwyer/horizon/internal/world"
)

// fixedSession is one player on an open 10x10 floor.
func fixedSession(context.Context) (*Session, error) {
	w := entity.NewWorld()
	w.SpawnPlayer(entity.Position{X: 5, Y: 5}, entity.DefaultPlayer())
	return &Session{
		Seed:   1,
		Engine: engine.New(world.NewOpenMap(10, 10), w, newRand(1), nil),
	}, nil
}

func testApp() *App {
	a := NewApp(config.Default(), zap.NewNop())
	a.newSession = fixedSession
	return a
}

func press(t *testing.T, a *App, key tcell.Key, r rune) {
	t.Helper()
	if err := a.HandleKey(context.Background(), key, r); err != nil {
		t.Fatalf("HandleKey(%v, %q): %v", key, r, err)
	}
	if err := a.Step(context.Background()); err != nil {
		t.Fatalf("Step: %v", err)
	}
}

func TestMenuNavigationClamps(t *testing.T) {
	a := testApp()
	press(t, a, tcell.KeyUp, 0)
	if a.MenuIndex != 0 {
		t.Errorf("MenuIndex = %d after Up at top", a.MenuIndex)
	}
	for i := 0; i < 10; i++ {
		press(t, a, tcell.KeyDown, 0)
	}
	if a.MenuIndex != len(MenuItems)-1 {
		t.Errorf("MenuIndex = %d, want %d", a.MenuIndex, len(MenuItems)-1)
	}
}

func TestNewGamePlayAndReturn(t *testing.T) {
	a := testApp()
	if a.Screen() != ScreenMainMenu {
		t.Fatalf("initial screen = %v", a.Screen())
	}

	press(t, a, tcell.KeyEnter, 0)
	if a.Screen() != ScreenGame || a.Session == nil {
		t.Fatalf("after New Game: screen %v session %v", a.Screen(), a.Session)
	}

	press(t, a, tcell.KeyRune, 'w')
	e := a.Session.Engine
	if e.Turn() != 1 {
		t.Errorf("Turn() = %d, want 1", e.Turn())
	}
	if p, _ := e.Player(); p.Pos != (entity.Position{X: 5, Y: 4}) {
		t.Errorf("player at %v, want (5, 4)", p.Pos)
	}

	// Unbound keys do not run a turn.
	press(t, a, tcell.KeyRune, 'x')
	if e.Turn() != 1 {
		t.Errorf("Turn() = %d after unbound key", e.Turn())
	}

	press(t, a, tcell.KeyEscape, 0)
	if a.Screen() != ScreenMainMenu {
		t.Fatalf("after Esc: screen %v", a.Screen())
	}

	// Continue resumes the same session.
	press(t, a, tcell.KeyDown, 0)
	press(t, a, tcell.KeyEnter, 0)
	if a.Screen() != ScreenGame || a.Session.Engine != e {
		t.Errorf("Continue did not resume the running session")
	}
}

func TestContinueWithoutSessionStartsOne(t *testing.T) {
	a := testApp()
	press(t, a, tcell.KeyDown, 0)
	press(t, a, tcell.KeyEnter, 0)
	if a.Screen() != ScreenGame || a.Session == nil {
		t.Errorf("screen %v session %v", a.Screen(), a.Session)
	}
}

func TestOptionsAndBack(t *testing.T) {
	a := testApp()
	press(t, a, tcell.KeyDown, 0)
	press(t, a, tcell.KeyDown, 0)
	press(t, a, tcell.KeyEnter, 0)
	if a.Screen() != ScreenOptions {
		t.Fatalf("screen = %v, want options", a.Screen())
	}
	if len(a.OptionsLines()) == 0 {
		t.Error("no options lines")
	}
	press(t, a, tcell.KeyEscape, 0)
	if a.Screen() != ScreenMainMenu {
		t.Errorf("screen = %v, want main menu", a.Screen())
	}
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name  string
		keys  []tcell.Key
		runes []rune
	}{
		{"menu q", []tcell.Key{tcell.KeyRune}, []rune{'q'}},
		{"menu item", []tcell.Key{tcell.KeyDown, tcell.KeyDown, tcell.KeyDown, tcell.KeyEnter}, []rune{0, 0, 0, 0}},
		{"in game", []tcell.Key{tcell.KeyEnter, tcell.KeyRune}, []rune{0, 'q'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testApp()
			for i, k := range tt.keys {
				press(t, a, k, tt.runes[i])
			}
			if !a.Quit {
				t.Error("Quit not set")
			}
		})
	}
}

func TestNewGameError(t *testing.T) {
	a := testApp()
	boom := errors.New("no level")
	a.newSession = func(context.Context) (*Session, error) { return nil, boom }

	err := a.HandleKey(context.Background(), tcell.KeyEnter, 0)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
	if a.Screen() != ScreenMainMenu {
		t.Errorf("screen = %v after failed start", a.Screen())
	}
}

func TestStepSurfacesInvariantError(t *testing.T) {
	a := testApp()
	a.newSession = func(context.Context) (*Session, error) {
		// No player: the first turn cannot resolve.
		return &Session{Engine: engine.New(world.NewOpenMap(4, 4), entity.NewWorld(), newRand(1), nil)}, nil
	}
	if err := a.HandleKey(context.Background(), tcell.KeyEnter, 0); err != nil {
		t.Fatal(err)
	}
	if err := a.HandleKey(context.Background(), tcell.KeyRune, '.'); err != nil {
		t.Fatal(err)
	}
	if err := a.Step(context.Background()); !errors.Is(err, engine.ErrInvariant) {
		t.Errorf("Step err = %v, want ErrInvariant", err)
	}
}

const tinyLayout = `
name: tiny
rows:
  - "#####"
  - "#...#"
  - "#...#"
  - "#####"
player: {x: 1, y: 1}
enemies:
  - {x: 3, y: 2, kind: goblin}
`

func TestNewSessionFromLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	if err := os.WriteFile(path, []byte(tinyLayout), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Game.Seed = 9
	cfg.Game.Layout = path

	s, err := NewSession(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Seed != 9 {
		t.Errorf("Seed = %d, want 9", s.Seed)
	}
	m := s.Engine.Map()
	if m.Width != 5 || m.Height != 4 {
		t.Errorf("map = %dx%d, want 5x4", m.Width, m.Height)
	}
	if n := len(s.Engine.Actors()); n != 2 {
		t.Errorf("%d actors, want 2", n)
	}
}

func TestNewSessionGenerated(t *testing.T) {
	cfg := config.Default()
	cfg.Game.Seed = 5
	cfg.Game.MapWidth, cfg.Game.MapHeight = 30, 20
	cfg.Game.EnemyCount = 4
	cfg.Player.Name = "Ash"
	cfg.Player.Color = "teal"

	s, err := NewSession(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	p, ok := s.Engine.Player()
	if !ok || p.Name != "Ash" || p.Symbol != '@' || p.Color != tcell.ColorTeal {
		t.Errorf("player = %+v, %v", p, ok)
	}
	if n := len(s.Engine.Actors()); n != 5 {
		t.Errorf("%d actors, want 5", n)
	}
}

func TestNewSessionRooms(t *testing.T) {
	cfg := config.Default()
	cfg.Game.Seed = 11
	cfg.Game.Generator = config.GeneratorRooms
	cfg.Game.MapWidth, cfg.Game.MapHeight = 60, 30
	cfg.Game.EnemyCount = 6

	s, err := NewSession(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	m := s.Engine.Map()
	for _, a := range s.Engine.Actors() {
		if m.IsWall(a.Pos.X, a.Pos.Y) {
			t.Errorf("%s placed in rock at %v", a.Name, a.Pos)
		}
	}
}
