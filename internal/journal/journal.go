// Package journal records what happened during play: an append-only log of
// resolved events and the monotonic turn counter.
package journal

import (
	"fmt"
	"sort"

	"github.com/samdwyer/horizon/internal/ecs"
)

// EventKind classifies a journal record.
type EventKind int

const (
	EventMove EventKind = iota
	EventAttack
)

// String returns a human-readable kind name.
func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// Event is one resolved action.
type Event struct {
	Kind   EventKind
	Actor  ecs.EntityID
	Name   string // actor display name at the time of the event
	Player bool   // actor is the player

	// EventMove
	X, Y int

	// EventAttack
	Target     ecs.EntityID
	TargetName string
	Damage     int
}

// Entry is a journal record.
type Entry struct {
	Turn  int
	Event Event
}

// String renders the entry for the action journal panel.
func (e Entry) String() string {
	var msg string
	switch e.Event.Kind {
	case EventMove:
		msg = fmt.Sprintf("%s moved into: (%d, %d)", e.Event.Name, e.Event.X, e.Event.Y)
	case EventAttack:
		msg = fmt.Sprintf("%s attacks %s for %d damage", e.Event.Name, e.Event.TargetName, e.Event.Damage)
	default:
		msg = e.Event.Kind.String()
	}
	return fmt.Sprintf("[Turn: %d]: %s", e.Turn, msg)
}

// Journal is append-only: insertion order is chronological order and
// nothing is ever rewritten or pruned.
type Journal struct {
	entries []Entry
}

func New() *Journal {
	return &Journal{entries: make([]Entry, 0, 256)}
}

// Append adds a record.
func (j *Journal) Append(turn int, ev Event) {
	j.entries = append(j.entries, Entry{Turn: turn, Event: ev})
}

// Len returns the number of records.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Recent returns copies of the last n records, newest first.
func (j *Journal) Recent(n int) []Entry {
	if n > len(j.entries) {
		n = len(j.entries)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Entry, 0, n)
	for i := len(j.entries) - 1; i >= len(j.entries)-n; i-- {
		out = append(out, j.entries[i])
	}
	return out
}

// All returns a copy of every record in chronological order.
func (j *Journal) All() []Entry {
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Turn returns the records for one turn in chronological order. Records are
// appended in turn order, so the range is found by binary search.
func (j *Journal) Turn(turn int) []Entry {
	lo := sort.Search(len(j.entries), func(i int) bool { return j.entries[i].Turn >= turn })
	hi := sort.Search(len(j.entries), func(i int) bool { return j.entries[i].Turn > turn })
	if lo == hi {
		return nil
	}
	out := make([]Entry, hi-lo)
	copy(out, j.entries[lo:hi])
	return out
}
