package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/samdwyer/horizon/internal/config"
)

// Main menu entries, in display order.
const (
	MenuNewGame = iota
	MenuContinue
	MenuOptionsItem
	MenuQuitItem
)

// MenuItems are the main menu labels.
var MenuItems = []string{"New Game", "Continue", "Options", "Quit"}

// App is the application state driven by the main loop: the current
// screen, the menu cursor, the quit flag and the running session.
type App struct {
	cfg     *config.Config
	log     *zap.Logger
	screens *fsm.FSM

	MenuIndex int
	Quit      bool
	Session   *Session

	// newSession builds a fresh game. Replaced in tests.
	newSession func(ctx context.Context) (*Session, error)
}

// NewApp starts on the main menu with no session.
func NewApp(cfg *config.Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{
		cfg:     cfg,
		log:     log,
		screens: newScreenFSM(log),
	}
	a.newSession = func(ctx context.Context) (*Session, error) {
		return NewSession(ctx, cfg, log)
	}
	return a
}

// Screen returns the current screen.
func (a *App) Screen() Screen {
	return screensByName[a.screens.Current()]
}

// HandleKey applies one key press to the current screen.
func (a *App) HandleKey(ctx context.Context, key tcell.Key, r rune) error {
	switch a.Screen() {
	case ScreenMainMenu:
		return a.handleMenu(ctx, TranslateMenuKey(key, r))
	case ScreenOptions:
		return a.handleOptions(ctx, TranslateMenuKey(key, r))
	case ScreenGame:
		return a.handleGame(ctx, key, r)
	}
	return nil
}

func (a *App) handleMenu(ctx context.Context, action MenuAction) error {
	switch action {
	case MenuUp:
		if a.MenuIndex > 0 {
			a.MenuIndex--
		}
	case MenuDown:
		if a.MenuIndex < len(MenuItems)-1 {
			a.MenuIndex++
		}
	case MenuQuit:
		a.Quit = true
	case MenuSelect:
		switch a.MenuIndex {
		case MenuNewGame:
			return a.startSession(ctx)
		case MenuContinue:
			if a.Session == nil {
				return a.startSession(ctx)
			}
			return a.transition(ctx, EventResume)
		case MenuOptionsItem:
			return a.transition(ctx, EventOptions)
		case MenuQuitItem:
			a.Quit = true
		}
	}
	return nil
}

func (a *App) handleOptions(ctx context.Context, action MenuAction) error {
	switch action {
	case MenuBack, MenuSelect:
		return a.transition(ctx, EventBack)
	case MenuQuit:
		a.Quit = true
	}
	return nil
}

func (a *App) handleGame(ctx context.Context, key tcell.Key, r rune) error {
	cmd, intent := TranslateGameKey(key, r)
	switch cmd {
	case GameAct:
		if a.Session != nil {
			a.Session.Engine.ApplyPlayerIntent(intent)
		}
	case GameOpenMenu:
		return a.transition(ctx, EventMenu)
	case GameQuit:
		a.Quit = true
	}
	return nil
}

// Step resolves the pending turn, if any, on the game screen.
func (a *App) Step(ctx context.Context) error {
	if a.Screen() != ScreenGame || a.Session == nil {
		return nil
	}
	return a.Session.Engine.RunTurnIfPending(ctx)
}

func (a *App) startSession(ctx context.Context) error {
	s, err := a.newSession(ctx)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	a.Session = s
	return a.transition(ctx, EventStart)
}

func (a *App) transition(ctx context.Context, event string) error {
	if err := a.screens.Event(ctx, event); err != nil {
		return fmt.Errorf("screen %s on %s: %w", a.screens.Current(), event, err)
	}
	return nil
}

// OptionsLines describes the active configuration for the options screen.
func (a *App) OptionsLines() []string {
	c := a.cfg
	seed := "random"
	if c.Game.Seed != 0 {
		seed = fmt.Sprint(c.Game.Seed)
	}
	lines := []string{
		fmt.Sprintf("Seed:          %s", seed),
		fmt.Sprintf("Map size:      %dx%d", c.Game.MapWidth, c.Game.MapHeight),
		fmt.Sprintf("Generator:     %s", c.Game.Generator),
		fmt.Sprintf("Wall chance:   %.2f", c.Game.WallChance),
		fmt.Sprintf("Enemies:       %d", c.Game.EnemyCount),
		fmt.Sprintf("Player:        %s (%s)", c.Player.Name, c.Player.Symbol),
		fmt.Sprintf("Journal lines: %d", c.UI.JournalLines),
	}
	if c.Game.Layout != "" {
		lines = append(lines, fmt.Sprintf("Layout:        %s", c.Game.Layout))
	}
	if a.Session != nil {
		lines = append(lines, "", fmt.Sprintf("Current game seed: %d", a.Session.Seed))
	}
	return lines
}
