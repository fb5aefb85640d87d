package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/horizon/internal/gamedata"
)

// DefaultFOVRadius is the sight radius used when a definition omits one.
const DefaultFOVRadius = 8

// EnemySpec describes an enemy to spawn.
type EnemySpec struct {
	ID        string // definition id (e.g., "goblin")
	Name      string
	Symbol    rune
	Color     tcell.Color
	Stats     Stats
	FOVRadius int
}

// EnemySpecFromDef converts a data-driven definition into an EnemySpec.
func EnemySpecFromDef(def *gamedata.EnemyDef) EnemySpec {
	fov := def.FOVRadius
	if fov <= 0 {
		fov = DefaultFOVRadius
	}
	return EnemySpec{
		ID:        def.ID,
		Name:      def.Name,
		Symbol:    def.GlyphRune(),
		Color:     def.TCellColor(),
		Stats:     NewStats(def.HP, def.Attack, def.Defense),
		FOVRadius: fov,
	}
}

// Goblin is the stock enemy used when no definitions are loaded.
func Goblin() EnemySpec {
	return EnemySpec{
		ID:        "goblin",
		Name:      "Goblin",
		Symbol:    'g',
		Color:     tcell.ColorGreen,
		Stats:     NewStats(20, 5, 2),
		FOVRadius: DefaultFOVRadius,
	}
}
