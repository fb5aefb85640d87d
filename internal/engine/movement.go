package engine

import (
	"github.com/samdwyer/horizon/internal/ecs"
	"github.com/samdwyer/horizon/internal/entity"
)

// Rejection says why a move resolved to no change. It is not an error.
type Rejection int

const (
	RejectNone Rejection = iota
	RejectBounds
	RejectWall
	RejectOccupied
	RejectPlayer // bumping the player; attack-on-bump is not modelled
)

// String returns the rejection reason.
func (r Rejection) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectBounds:
		return "out_of_bounds"
	case RejectWall:
		return "wall"
	case RejectOccupied:
		return "occupied"
	case RejectPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// occupancy maps tiles to the blocking actor standing on them and is
// updated as each move is applied.
type occupancy struct {
	tiles map[entity.Position]ecs.EntityID
}

func newOccupancy(w *entity.World) *occupancy {
	ids := w.Query(w.Blockers, w.Positions)
	o := &occupancy{tiles: make(map[entity.Position]ecs.EntityID, len(ids))}
	for _, id := range ids {
		p, _ := w.Positions.Get(id)
		o.tiles[*p] = id
	}
	return o
}

func (o *occupancy) at(p entity.Position) (ecs.EntityID, bool) {
	id, ok := o.tiles[p]
	return id, ok
}

func (o *occupancy) move(id ecs.EntityID, from, to entity.Position) {
	if cur, ok := o.tiles[from]; ok && cur == id {
		delete(o.tiles, from)
	}
	o.tiles[to] = id
}

// checkMove validates dest for mover against the map and live occupancy.
func checkMove(t *Turn, occ *occupancy, mover ecs.EntityID, dest entity.Position) Rejection {
	if !t.Map.InBounds(dest.X, dest.Y) {
		return RejectBounds
	}
	if t.Map.IsWall(dest.X, dest.Y) {
		return RejectWall
	}
	if other, ok := occ.at(dest); ok && other != mover {
		if t.World.Players.Has(other) {
			return RejectPlayer
		}
		return RejectOccupied
	}
	return RejectNone
}
