package world

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Placement is a fixed actor position declared by a layout.
type Placement struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Kind string `yaml:"kind,omitempty"` // enemy definition id; empty means any
}

// Layout is a hand-authored level loaded from YAML. Rows use the tile
// display characters; every row must have the same width.
type Layout struct {
	Name    string      `yaml:"name"`
	Rows    []string    `yaml:"rows"`
	Player  *Placement  `yaml:"player,omitempty"`
	Enemies []Placement `yaml:"enemies,omitempty"`
}

// LoadLayout reads and parses a YAML layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}

// ParseLayout decodes a layout document and validates its shape.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

func (l *Layout) validate() error {
	if len(l.Rows) == 0 {
		return errors.New("layout has no rows")
	}
	width := len([]rune(l.Rows[0]))
	if width == 0 {
		return errors.New("layout row 0 is empty")
	}
	for y, row := range l.Rows {
		runes := []rune(row)
		if len(runes) != width {
			return fmt.Errorf("row %d has width %d, want %d", y, len(runes), width)
		}
		for x, r := range runes {
			if !Tile(r).Valid() {
				return fmt.Errorf("unknown tile %q at (%d,%d)", r, x, y)
			}
		}
	}
	m := l.Map()
	check := func(what string, p Placement) error {
		if m.IsWall(p.X, p.Y) {
			return fmt.Errorf("%s at (%d,%d) is on a wall or off the map", what, p.X, p.Y)
		}
		return nil
	}
	seen := make(map[[2]int]bool, len(l.Enemies)+1)
	if l.Player != nil {
		if err := check("player", *l.Player); err != nil {
			return err
		}
		seen[[2]int{l.Player.X, l.Player.Y}] = true
	}
	for i, e := range l.Enemies {
		if err := check(fmt.Sprintf("enemy %d", i), e); err != nil {
			return err
		}
		key := [2]int{e.X, e.Y}
		if seen[key] {
			return fmt.Errorf("enemy %d at (%d,%d) overlaps another actor", i, e.X, e.Y)
		}
		seen[key] = true
	}
	return nil
}

// Map builds the static map described by the layout rows.
func (l *Layout) Map() *Map {
	height := len(l.Rows)
	width := 0
	if height > 0 {
		width = len([]rune(l.Rows[0]))
	}
	b := NewBuilder(width, height, TileWall)
	for y, row := range l.Rows {
		for x, r := range []rune(row) {
			b.Set(x, y, Tile(r))
		}
	}
	return b.Build()
}
