package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/horizon/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 150
	DefaultHeight = 120

	// DefaultWallChance is the probability of an interior tile being a wall.
	DefaultWallChance = 0.1
)

// Map is the immutable per-game tile grid. Nothing in the turn engine
// writes to it after construction.
type Map struct {
	Width  int
	Height int
	tiles  [][]Tile
}

// NewMap creates a map filled with the given tile.
func NewMap(width, height int, fill Tile) *Map {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = fill
		}
	}
	return &Map{
		Width:  width,
		Height: height,
		tiles:  tiles,
	}
}

// NewOpenMap creates an all-floor map with no border walls.
func NewOpenMap(width, height int) *Map {
	return NewMap(width, height, TileFloor)
}

// InBounds returns true if the coordinates are on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsWall returns true if the position blocks movement. Out-of-bounds
// coordinates are walls.
func (m *Map) IsWall(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.tiles[y][x].IsWall()
}

// GetTile returns the tile at the given position.
func (m *Map) GetTile(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.tiles[y][x]
}

// FloorCount returns the number of non-wall tiles.
func (m *Map) FloorCount() int {
	n := 0
	for y := range m.tiles {
		for _, t := range m.tiles[y] {
			if !t.IsWall() {
				n++
			}
		}
	}
	return n
}

// Builder mutates a map before it is handed to the engine.
type Builder struct {
	m *Map
}

// NewBuilder starts a map of the given size filled with fill.
func NewBuilder(width, height int, fill Tile) *Builder {
	return &Builder{m: NewMap(width, height, fill)}
}

// Set places a tile. Out-of-bounds writes are ignored.
func (b *Builder) Set(x, y int, t Tile) *Builder {
	if b.m.InBounds(x, y) {
		b.m.tiles[y][x] = t
	}
	return b
}

// Border surrounds the map with walls.
func (b *Builder) Border() *Builder {
	m := b.m
	for x := 0; x < m.Width; x++ {
		m.tiles[0][x] = TileWall
		m.tiles[m.Height-1][x] = TileWall
	}
	for y := 0; y < m.Height; y++ {
		m.tiles[y][0] = TileWall
		m.tiles[y][m.Width-1] = TileWall
	}
	return b
}

// Build returns the finished map. The builder must not be used afterwards.
func (b *Builder) Build() *Map {
	m := b.m
	b.m = nil
	return m
}

// Generate creates a map of scattered walls with a solid border. Each
// interior tile becomes a wall with probability wallChance.
func Generate(ctx context.Context, width, height int, wallChance float64, rng *rand.Rand) *Map {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.generate")
	defer span.End()

	startTime := time.Now()

	b := NewBuilder(width, height, TileFloor)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if rng.Float64() < wallChance {
				b.Set(x, y, TileWall)
			}
		}
	}
	m := b.Border().Build()

	span.SetAttributes(
		attribute.Int("map.width", width),
		attribute.Int("map.height", height),
		attribute.Int("map.floor_tiles", m.FloorCount()),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return m
}
