package ecs

// Command is a structural change recorded during a stage and applied later.
type Command interface {
	Apply()
}

// CommandQueue holds structural changes until the next apply barrier, so no
// stage iterates a store while changing which entities it contains.
type CommandQueue struct {
	pending []Command
}

func NewCommandQueue() *CommandQueue {
	return &CommandQueue{pending: make([]Command, 0, 32)}
}

// Push records a command.
func (q *CommandQueue) Push(c Command) {
	q.pending = append(q.pending, c)
}

// Len returns the number of commands waiting for the barrier.
func (q *CommandQueue) Len() int {
	return len(q.pending)
}

// Flush applies all pending commands in the order they were pushed and
// returns how many were applied.
func (q *CommandQueue) Flush() int {
	n := len(q.pending)
	for i, c := range q.pending {
		c.Apply()
		q.pending[i] = nil
	}
	q.pending = q.pending[:0]
	return n
}

// Discard drops every pending command without applying it.
func (q *CommandQueue) Discard() {
	for i := range q.pending {
		q.pending[i] = nil
	}
	q.pending = q.pending[:0]
}

type insertCommand[T any] struct {
	store *Store[T]
	id    EntityID
	value T
}

func (c insertCommand[T]) Apply() {
	v := c.value
	c.store.Set(c.id, &v)
}

type removeCommand[T any] struct {
	store *Store[T]
	id    EntityID
}

func (c removeCommand[T]) Apply() {
	c.store.Remove(c.id)
}

// DeferInsert queues attaching value to id in s.
func DeferInsert[T any](q *CommandQueue, s *Store[T], id EntityID, value T) {
	q.Push(insertCommand[T]{store: s, id: id, value: value})
}

// DeferRemove queues detaching the component in s from id.
func DeferRemove[T any](q *CommandQueue, s *Store[T], id EntityID) {
	q.Push(removeCommand[T]{store: s, id: id})
}
