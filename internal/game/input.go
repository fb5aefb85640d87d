package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/horizon/internal/entity"
)

// MenuAction is a key translated on a menu screen.
type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuUp
	MenuDown
	MenuSelect
	MenuBack
	MenuQuit
)

// GameCommand is what a key means on the game screen.
type GameCommand int

const (
	GameNone GameCommand = iota
	GameAct              // the player acts; see the intent
	GameOpenMenu
	GameQuit
)

// TranslateMenuKey maps a key press on a menu screen.
func TranslateMenuKey(key tcell.Key, r rune) MenuAction {
	switch key {
	case tcell.KeyUp:
		return MenuUp
	case tcell.KeyDown:
		return MenuDown
	case tcell.KeyEnter:
		return MenuSelect
	case tcell.KeyEscape:
		return MenuBack
	case tcell.KeyCtrlC:
		return MenuQuit
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return MenuQuit
		case 'w', 'k':
			return MenuUp
		case 's', 'j':
			return MenuDown
		}
	}
	return MenuNone
}

// TranslateGameKey maps a key press on the game screen. The intent is
// meaningful only when the command is GameAct.
func TranslateGameKey(key tcell.Key, r rune) (GameCommand, entity.Intent) {
	switch key {
	case tcell.KeyEscape:
		return GameOpenMenu, entity.Intent{}
	case tcell.KeyCtrlC:
		return GameQuit, entity.Intent{}
	case tcell.KeyUp:
		return GameAct, entity.Move(entity.DirUp)
	case tcell.KeyDown:
		return GameAct, entity.Move(entity.DirDown)
	case tcell.KeyLeft:
		return GameAct, entity.Move(entity.DirLeft)
	case tcell.KeyRight:
		return GameAct, entity.Move(entity.DirRight)
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return GameQuit, entity.Intent{}
		case 'w', 'W':
			return GameAct, entity.Move(entity.DirUp)
		case 's', 'S':
			return GameAct, entity.Move(entity.DirDown)
		case 'a', 'A':
			return GameAct, entity.Move(entity.DirLeft)
		case 'd', 'D':
			return GameAct, entity.Move(entity.DirRight)
		case '.', ' ':
			return GameAct, entity.Wait()
		}
	}
	return GameNone, entity.Intent{}
}
