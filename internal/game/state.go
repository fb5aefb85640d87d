// Package game provides the main loop, the application screens and the
// session that owns a running engine.
package game

import (
	"context"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

// Screen is the application screen currently shown.
type Screen int

const (
	ScreenMainMenu Screen = iota
	ScreenOptions
	ScreenGame
)

// String returns the screen name, also used as the transition state.
func (s Screen) String() string {
	switch s {
	case ScreenMainMenu:
		return "main_menu"
	case ScreenOptions:
		return "options"
	case ScreenGame:
		return "game"
	default:
		return "unknown"
	}
}

var screensByName = map[string]Screen{
	ScreenMainMenu.String(): ScreenMainMenu,
	ScreenOptions.String():  ScreenOptions,
	ScreenGame.String():     ScreenGame,
}

// Screen transition events.
const (
	EventStart   = "start"   // main menu -> game, fresh session
	EventResume  = "resume"  // main menu -> game, existing session
	EventOptions = "options" // main menu -> options
	EventBack    = "back"    // options -> main menu
	EventMenu    = "menu"    // game -> main menu
)

// newScreenFSM builds the screen transition table.
func newScreenFSM(log *zap.Logger) *fsm.FSM {
	menu := ScreenMainMenu.String()
	return fsm.NewFSM(
		menu,
		fsm.Events{
			{Name: EventStart, Src: []string{menu}, Dst: ScreenGame.String()},
			{Name: EventResume, Src: []string{menu}, Dst: ScreenGame.String()},
			{Name: EventOptions, Src: []string{menu}, Dst: ScreenOptions.String()},
			{Name: EventBack, Src: []string{ScreenOptions.String()}, Dst: menu},
			{Name: EventMenu, Src: []string{ScreenGame.String()}, Dst: menu},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				log.Debug("screen changed",
					zap.String("event", e.Event),
					zap.String("from", e.Src),
					zap.String("to", e.Dst),
				)
			},
		},
	)
}
