// Package ecs provides the entity-component storage used by the turn engine:
// opaque entity identities, typed component stores, ordered queries and a
// deferred command queue applied at explicit barriers.
package ecs

// EntityID is an opaque actor identity. The zero value never names a live entity.
type EntityID uint32

// entityPool hands out identities in creation order.
type entityPool struct {
	next  EntityID
	order []EntityID
}

func newEntityPool() *entityPool {
	return &entityPool{
		next:  1,
		order: make([]EntityID, 0, 64),
	}
}

func (p *entityPool) create() EntityID {
	id := p.next
	p.next++
	p.order = append(p.order, id)
	return id
}
