package engine

import (
	"fmt"

	"github.com/samdwyer/horizon/internal/ecs"
	"github.com/samdwyer/horizon/internal/entity"
)

// Snapshot is a by-value copy of committed positions taken before the
// turn's stages run. Enemy decisions read only from it.
type Snapshot struct {
	PlayerID  ecs.EntityID
	PlayerPos entity.Position
	Enemies   []ecs.EntityID // creation order
	positions map[ecs.EntityID]entity.Position
}

// PositionOf returns the committed position of an actor at turn start.
func (s *Snapshot) PositionOf(id ecs.EntityID) (entity.Position, bool) {
	p, ok := s.positions[id]
	return p, ok
}

func takeSnapshot(w *entity.World) (*Snapshot, error) {
	pid, err := w.Player()
	if err != nil {
		return nil, fmt.Errorf("%w: player lookup: %w", ErrInvariant, err)
	}
	ppos, ok := w.PositionOf(pid)
	if !ok {
		return nil, missingComponent(pid, "position")
	}

	enemies := w.Query(w.Enemies)
	s := &Snapshot{
		PlayerID:  pid,
		PlayerPos: ppos,
		Enemies:   enemies,
		positions: make(map[ecs.EntityID]entity.Position, len(enemies)+1),
	}
	s.positions[pid] = ppos
	for _, id := range enemies {
		p, ok := w.PositionOf(id)
		if !ok {
			return nil, missingComponent(id, "position")
		}
		s.positions[id] = p
	}
	return s, nil
}
