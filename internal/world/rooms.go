package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/horizon/internal/telemetry"
)

// BSP parameters for GenerateRooms.
const (
	minRoomSize = 4
	maxRoomSize = 12
	minLeafSize = 8
)

// Room is a rectangular carved area.
type Room struct {
	X, Y          int // top-left corner
	Width, Height int
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// GenerateRooms carves rooms joined by corridors out of solid rock using
// binary space partitioning. The outer border is always wall.
func GenerateRooms(ctx context.Context, width, height int, rng *rand.Rand) (*Map, []Room) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.generate_rooms")
	defer span.End()

	startTime := time.Now()

	c := &roomCarver{
		b:   NewBuilder(width, height, TileWall),
		w:   width,
		h:   height,
		rng: rng,
	}
	root := &bspNode{x: 1, y: 1, width: width - 2, height: height - 2}
	c.split(root)
	c.carveRooms(root)
	c.connect(root)
	m := c.b.Build()

	span.SetAttributes(
		attribute.Int("map.width", width),
		attribute.Int("map.height", height),
		attribute.Int("map.room_count", len(c.rooms)),
		attribute.Int("map.floor_tiles", m.FloorCount()),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return m, c.rooms
}

type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *Room
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

type roomCarver struct {
	b     *Builder
	w, h  int
	rng   *rand.Rand
	rooms []Room
}

func (c *roomCarver) split(n *bspNode) {
	canW := n.width >= minLeafSize*2
	canH := n.height >= minLeafSize*2

	var horizontal bool
	switch {
	case canW && n.width > n.height:
		horizontal = false
	case canH:
		horizontal = true
	case canW:
		horizontal = false
	default:
		return
	}

	size := n.width
	if horizontal {
		size = n.height
	}
	lo, hi := minLeafSize, size-minLeafSize
	if hi < lo {
		return
	}
	at := lo + c.rng.Intn(hi-lo+1)

	if horizontal {
		n.left = &bspNode{x: n.x, y: n.y, width: n.width, height: at}
		n.right = &bspNode{x: n.x, y: n.y + at, width: n.width, height: n.height - at}
	} else {
		n.left = &bspNode{x: n.x, y: n.y, width: at, height: n.height}
		n.right = &bspNode{x: n.x + at, y: n.y, width: n.width - at, height: n.height}
	}
	c.split(n.left)
	c.split(n.right)
}

func (c *roomCarver) carveRooms(n *bspNode) {
	if n == nil {
		return
	}
	if !n.isLeaf() {
		c.carveRooms(n.left)
		c.carveRooms(n.right)
		return
	}

	maxW := min(maxRoomSize, n.width-2)
	maxH := min(maxRoomSize, n.height-2)
	if maxW < minRoomSize || maxH < minRoomSize {
		return
	}
	rw := minRoomSize + c.rng.Intn(maxW-minRoomSize+1)
	rh := minRoomSize + c.rng.Intn(maxH-minRoomSize+1)
	room := Room{
		X:      n.x + 1 + c.rng.Intn(n.width-rw-1),
		Y:      n.y + 1 + c.rng.Intn(n.height-rh-1),
		Width:  rw,
		Height: rh,
	}
	n.room = &room
	c.rooms = append(c.rooms, room)

	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			c.floor(x, y)
		}
	}
}

func (c *roomCarver) connect(n *bspNode) {
	if n == nil || n.isLeaf() {
		return
	}
	c.connect(n.left)
	c.connect(n.right)

	a, b := anyRoom(n.left), anyRoom(n.right)
	if a == nil || b == nil {
		return
	}
	x1, y1 := a.Center()
	x2, y2 := b.Center()
	if c.rng.Intn(2) == 0 {
		c.hTunnel(x1, x2, y1)
		c.vTunnel(y1, y2, x2)
	} else {
		c.vTunnel(y1, y2, x1)
		c.hTunnel(x1, x2, y2)
	}
}

func anyRoom(n *bspNode) *Room {
	if n == nil {
		return nil
	}
	if n.room != nil {
		return n.room
	}
	if r := anyRoom(n.left); r != nil {
		return r
	}
	return anyRoom(n.right)
}

func (c *roomCarver) hTunnel(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		c.floor(x, y)
	}
}

func (c *roomCarver) vTunnel(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		c.floor(x, y)
	}
}

// floor carves one tile, never touching the border.
func (c *roomCarver) floor(x, y int) {
	if x > 0 && x < c.w-1 && y > 0 && y < c.h-1 {
		c.b.Set(x, y, TileFloor)
	}
}
