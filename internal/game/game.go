package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/samdwyer/horizon/internal/config"
	"github.com/samdwyer/horizon/internal/ui"
)

// Game couples the application state to the terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	app      *App
	cfg      *config.Config
	log      *zap.Logger
}

// New opens the terminal and creates a game on the main menu.
func New(cfg *config.Config, log *zap.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		app:      NewApp(cfg, log),
		cfg:      cfg,
		log:      log,
	}, nil
}

// Run executes the main loop until the player quits. An error from turn
// resolution ends the loop and is returned.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	for !g.app.Quit {
		g.render()

		switch ev := g.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if err := g.app.HandleKey(ctx, ev.Key(), ev.Rune()); err != nil {
				return err
			}
		case *tcell.EventResize:
			g.screen.Sync()
		case nil:
			// Screen finalized.
			return nil
		}

		if err := g.app.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) render() {
	switch g.app.Screen() {
	case ScreenMainMenu:
		g.renderer.RenderMenu("Horizon", MenuItems, g.app.MenuIndex)
	case ScreenOptions:
		g.renderer.RenderLines("Options", g.app.OptionsLines(), "Esc/Enter: back  q: quit")
	case ScreenGame:
		e := g.app.Session.Engine
		player, _ := e.Player()
		g.renderer.RenderGame(ui.GameView{
			Map:     e.Map(),
			Actors:  e.Actors(),
			Player:  player,
			Turn:    e.Turn(),
			Journal: e.Recent(g.cfg.UI.JournalLines),
		}, g.cfg.UI.JournalLines)
	}
}
