package ecs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Single when no entity matches.
	ErrNotFound = errors.New("ecs: no matching entity")
	// ErrAmbiguous is returned by Single when more than one entity matches.
	ErrAmbiguous = errors.New("ecs: more than one matching entity")
)

// World is the top-level ECS container. It owns entity allocation and the
// deferred command queue; component stores are owned by the caller.
type World struct {
	pool     *entityPool
	commands *CommandQueue
}

func NewWorld() *World {
	return &World{
		pool:     newEntityPool(),
		commands: NewCommandQueue(),
	}
}

func (w *World) CreateEntity() EntityID {
	return w.pool.create()
}

// Count returns the number of entities ever created.
func (w *World) Count() int {
	return len(w.pool.order)
}

// Commands returns the deferred command queue.
func (w *World) Commands() *CommandQueue {
	return w.commands
}

// ApplyDeferred is the barrier between stages: it commits every queued
// structural change.
func (w *World) ApplyDeferred() int {
	return w.commands.Flush()
}

// Query returns every entity matching all filters, in creation order.
func (w *World) Query(filters ...Filter) []EntityID {
	out := make([]EntityID, 0, len(w.pool.order))
	for _, id := range w.pool.order {
		if matchAll(id, filters) {
			out = append(out, id)
		}
	}
	return out
}

// Single returns the unique entity matching all filters. It fails with
// ErrNotFound if none match and ErrAmbiguous if several do.
func (w *World) Single(filters ...Filter) (EntityID, error) {
	var found EntityID
	n := 0
	for _, id := range w.pool.order {
		if !matchAll(id, filters) {
			continue
		}
		n++
		if n == 1 {
			found = id
		}
	}
	switch n {
	case 0:
		return 0, ErrNotFound
	case 1:
		return found, nil
	default:
		return 0, fmt.Errorf("%w: %d matches", ErrAmbiguous, n)
	}
}

func matchAll(id EntityID, filters []Filter) bool {
	for _, f := range filters {
		if !f.Has(id) {
			return false
		}
	}
	return true
}
