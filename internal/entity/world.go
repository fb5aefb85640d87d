package entity

import (
	"github.com/samdwyer/horizon/internal/ecs"
)

// World is the actor store: entity identities plus one store per
// component kind. Only the turn pipeline mutates it once play starts.
type World struct {
	ecs *ecs.World

	Positions   *ecs.Store[Position]
	Stats       *ecs.Store[Stats]
	Names       *ecs.Store[Name]
	Renderables *ecs.Store[Renderable]
	Players     *ecs.Store[PlayerTag]
	Enemies     *ecs.Store[EnemyTag]
	Blockers    *ecs.Store[BlocksTile]
	Brains      *ecs.Store[AIMemory]
	Intents     *ecs.Store[Intent]
}

// NewWorld creates an empty actor store.
func NewWorld() *World {
	return &World{
		ecs:         ecs.NewWorld(),
		Positions:   ecs.NewStore[Position](),
		Stats:       ecs.NewStore[Stats](),
		Names:       ecs.NewStore[Name](),
		Renderables: ecs.NewStore[Renderable](),
		Players:     ecs.NewStore[PlayerTag](),
		Enemies:     ecs.NewStore[EnemyTag](),
		Blockers:    ecs.NewStore[BlocksTile](),
		Brains:      ecs.NewStore[AIMemory](),
		Intents:     ecs.NewStore[Intent](),
	}
}

// Commands returns the deferred command queue.
func (w *World) Commands() *ecs.CommandQueue {
	return w.ecs.Commands()
}

// ApplyDeferred commits queued structural changes.
func (w *World) ApplyDeferred() int {
	return w.ecs.ApplyDeferred()
}

// Query returns actors matching all filters in creation order.
func (w *World) Query(filters ...ecs.Filter) []ecs.EntityID {
	return w.ecs.Query(filters...)
}

// Player returns the unique player actor.
func (w *World) Player() (ecs.EntityID, error) {
	return w.ecs.Single(w.Players)
}

// EnemyIDs returns every positioned enemy in creation order.
func (w *World) EnemyIDs() []ecs.EntityID {
	return w.ecs.Query(w.Enemies, w.Positions)
}

// Count returns the number of actors.
func (w *World) Count() int {
	return w.ecs.Count()
}

// Kind returns the identity variant of an actor.
func (w *World) Kind(id ecs.EntityID) Kind {
	switch {
	case w.Players.Has(id):
		return KindPlayer
	case w.Enemies.Has(id):
		return KindEnemy
	default:
		return KindNone
	}
}

// NameOf returns the actor's display name, or its kind if unnamed.
func (w *World) NameOf(id ecs.EntityID) string {
	if n, ok := w.Names.Get(id); ok {
		return string(*n)
	}
	return w.Kind(id).String()
}

// PositionOf returns a copy of the actor's position.
func (w *World) PositionOf(id ecs.EntityID) (Position, bool) {
	p, ok := w.Positions.Get(id)
	if !ok {
		return Position{}, false
	}
	return *p, true
}

// OccupantAt returns the blocking actor standing on p, if any.
func (w *World) OccupantAt(p Position) (ecs.EntityID, bool) {
	for _, id := range w.ecs.Query(w.Blockers, w.Positions) {
		pos, _ := w.Positions.Get(id)
		if *pos == p {
			return id, true
		}
	}
	return 0, false
}

// SpawnPlayer creates the player actor. Callers ensure only one exists.
func (w *World) SpawnPlayer(pos Position, spec PlayerSpec) ecs.EntityID {
	id := w.ecs.CreateEntity()
	w.Positions.Set(id, &pos)
	stats := spec.Stats
	w.Stats.Set(id, &stats)
	name := Name(spec.Name)
	w.Names.Set(id, &name)
	w.Renderables.Set(id, &Renderable{Symbol: spec.Symbol, Color: spec.Color})
	w.Players.Set(id, &PlayerTag{})
	w.Blockers.Set(id, &BlocksTile{})
	return id
}

// SpawnEnemy creates an enemy actor with a fresh idle memory.
func (w *World) SpawnEnemy(pos Position, spec EnemySpec) ecs.EntityID {
	id := w.ecs.CreateEntity()
	w.Positions.Set(id, &pos)
	stats := spec.Stats
	w.Stats.Set(id, &stats)
	name := Name(spec.Name)
	w.Names.Set(id, &name)
	w.Renderables.Set(id, &Renderable{Symbol: spec.Symbol, Color: spec.Color})
	w.Enemies.Set(id, &EnemyTag{})
	w.Blockers.Set(id, &BlocksTile{})
	mem := NewAIMemory(spec.FOVRadius)
	w.Brains.Set(id, &mem)
	return id
}
