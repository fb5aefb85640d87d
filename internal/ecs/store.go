package ecs

// Filter selects entities by capability. Every component store is a Filter.
type Filter interface {
	Has(id EntityID) bool
}

// Store is a generic typed map store for one component kind.
type Store[T any] struct {
	data map[EntityID]*T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		data: make(map[EntityID]*T, 64),
	}
}

func (s *Store[T]) Set(id EntityID, c *T) {
	s.data[id] = c
}

func (s *Store[T]) Get(id EntityID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *Store[T]) Remove(id EntityID) {
	delete(s.data, id)
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.data)
}

// Without inverts a filter: it matches entities the wrapped filter rejects.
func Without(f Filter) Filter {
	return notFilter{f}
}

type notFilter struct{ f Filter }

func (n notFilter) Has(id EntityID) bool { return !n.f.Has(id) }
