// Package entity defines the actor components of the turn engine and the
// World that bundles their stores.
package entity

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Position is an actor's grid coordinate.
type Position struct {
	X, Y int
}

// Step returns the neighbouring position in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Chebyshev returns the king-move distance between two positions.
func (p Position) Chebyshev(o Position) int {
	return max(abs(p.X-o.X), abs(p.Y-o.Y))
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Stats holds an actor's combat numbers. Nothing in the turn engine
// changes them yet.
type Stats struct {
	HP, MaxHP int
	Attack    int
	Defense   int
}

// NewStats returns stats at full health.
func NewStats(hp, attack, defense int) Stats {
	return Stats{HP: hp, MaxHP: hp, Attack: attack, Defense: defense}
}

// Name is an actor's display name.
type Name string

// Renderable describes how an actor is drawn.
type Renderable struct {
	Symbol rune
	Color  tcell.Color
}

// PlayerTag marks the single player actor.
type PlayerTag struct{}

// EnemyTag marks an enemy actor.
type EnemyTag struct{}

// BlocksTile marks an actor that occupies its tile exclusively.
type BlocksTile struct{}

// Kind is the identity variant of an actor.
type Kind int

const (
	KindNone Kind = iota
	KindPlayer
	KindEnemy
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "none"
	}
}
