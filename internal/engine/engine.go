// Package engine resolves one game turn at a time over the actor world,
// the static map and the action journal.
package engine

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/horizon/internal/ecs"
	"github.com/samdwyer/horizon/internal/entity"
	"github.com/samdwyer/horizon/internal/journal"
	"github.com/samdwyer/horizon/internal/telemetry"
	"github.com/samdwyer/horizon/internal/world"
)

// Engine owns a running session. Turns advance only through
// RunTurnIfPending; everything else is a read-only view.
type Engine struct {
	world    *entity.World
	level    *world.Map
	journal  *journal.Journal
	turns    journal.Counter
	pipeline *Pipeline
	rng      *rand.Rand
	log      *zap.Logger

	pending *entity.Intent
}

// New creates an engine over a populated world. A nil logger discards.
func New(level *world.Map, w *entity.World, rng *rand.Rand, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		world:    w,
		level:    level,
		journal:  journal.New(),
		pipeline: DefaultPipeline(),
		rng:      rng,
		log:      log,
	}
}

// ApplyPlayerIntent queues the player's action for the next turn. A later
// call before the turn runs replaces the earlier intent.
func (e *Engine) ApplyPlayerIntent(in entity.Intent) {
	e.pending = &in
}

// HasPending reports whether a player intent is waiting.
func (e *Engine) HasPending() bool {
	return e.pending != nil
}

// RunTurnIfPending resolves exactly one turn if the player has acted.
// Without a pending intent it returns nil and changes nothing. If the
// world is found corrupt the turn is abandoned and the returned error
// wraps ErrInvariant; positions, the counter and the journal are left
// as they were.
func (e *Engine) RunTurnIfPending(ctx context.Context) error {
	if e.pending == nil {
		return nil
	}
	input := *e.pending
	e.pending = nil

	tracer := telemetry.Tracer("engine")
	ctx, span := tracer.Start(ctx, "turn.resolve")
	defer span.End()

	turn := e.turns.Next()
	span.SetAttributes(
		attribute.Int("turn", turn),
		attribute.String("input", input.String()),
	)
	startTime := time.Now()

	snap, err := takeSnapshot(e.world)
	if err != nil {
		return e.abort(span, turn, err)
	}

	t := &Turn{
		World:    e.world,
		Map:      e.level,
		Journal:  e.journal,
		Counter:  &e.turns,
		Rand:     e.rng,
		Log:      e.log,
		Input:    input,
		Snapshot: snap,
	}

	if err := e.pipeline.Run(ctx, t); err != nil {
		return e.abort(span, turn, err)
	}

	span.SetAttributes(
		attribute.Int("turn.moved", t.Moved),
		attribute.Int("turn.rejected", t.Rejected),
		attribute.Int("turn.attacks", t.Attacks),
		attribute.Int("journal.appended", len(e.journal.Turn(turn))),
	)
	e.log.Debug("turn resolved",
		zap.Int("turn", e.turns.Current()),
		zap.Stringer("input", input),
		zap.Int("moved", t.Moved),
		zap.Int("rejected", t.Rejected),
		zap.Int("attacks", t.Attacks),
		zap.Duration("elapsed", time.Since(startTime)),
	)
	return nil
}

func (e *Engine) abort(span trace.Span, turn int, err error) error {
	e.world.Commands().Discard()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	e.log.Error("turn abandoned", zap.Int("turn", turn), zap.Error(err))
	if !errors.Is(err, ErrInvariant) {
		return errors.Join(ErrInvariant, err)
	}
	return err
}

// Turn returns the number of resolved turns.
func (e *Engine) Turn() int {
	return e.turns.Current()
}

// Journal returns the action journal. Callers must not append to it.
func (e *Engine) Journal() *journal.Journal {
	return e.journal
}

// Recent returns the last n journal records, newest first.
func (e *Engine) Recent(n int) []journal.Entry {
	return e.journal.Recent(n)
}

// Map returns the static level.
func (e *Engine) Map() *world.Map {
	return e.level
}

// World returns the actor store for inspection.
func (e *Engine) World() *entity.World {
	return e.world
}

// ActorView is a by-value summary of one actor for display.
type ActorView struct {
	ID      ecs.EntityID
	Kind    entity.Kind
	Name    string
	Pos     entity.Position
	Symbol  rune
	Color   tcell.Color
	Stats   entity.Stats
	AIState entity.AIState // enemies only
}

// Actors returns every positioned actor in creation order.
func (e *Engine) Actors() []ActorView {
	w := e.world
	ids := w.Query(w.Positions)
	out := make([]ActorView, 0, len(ids))
	for _, id := range ids {
		out = append(out, e.view(id))
	}
	return out
}

// Player returns the player's view. ok is false if the world has no
// unique player.
func (e *Engine) Player() (ActorView, bool) {
	id, err := e.world.Player()
	if err != nil || !e.world.Positions.Has(id) {
		return ActorView{}, false
	}
	return e.view(id), true
}

func (e *Engine) view(id ecs.EntityID) ActorView {
	w := e.world
	v := ActorView{
		ID:   id,
		Kind: w.Kind(id),
		Name: w.NameOf(id),
	}
	v.Pos, _ = w.PositionOf(id)
	if r, ok := w.Renderables.Get(id); ok {
		v.Symbol, v.Color = r.Symbol, r.Color
	}
	if s, ok := w.Stats.Get(id); ok {
		v.Stats = *s
	}
	if m, ok := w.Brains.Get(id); ok {
		v.AIState = m.State
	}
	return v
}
