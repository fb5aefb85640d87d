package entity

import "github.com/gdamore/tcell/v2"

// PlayerSpec describes the player actor.
type PlayerSpec struct {
	Name   string
	Symbol rune
	Color  tcell.Color
	Stats  Stats
}

// DefaultPlayer returns the stock hero.
func DefaultPlayer() PlayerSpec {
	return PlayerSpec{
		Name:   "Hero",
		Symbol: '@',
		Color:  tcell.ColorYellow,
		Stats:  NewStats(100, 10, 5),
	}
}
