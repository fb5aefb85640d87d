package engine

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/horizon/internal/ai"
	"github.com/samdwyer/horizon/internal/ecs"
	"github.com/samdwyer/horizon/internal/entity"
	"github.com/samdwyer/horizon/internal/journal"
)

// inputStage attaches the player's intent. Phase 0.
type inputStage struct{}

func (inputStage) Phase() Phase { return PhaseInput }

func (inputStage) Run(_ context.Context, t *Turn) error {
	w := t.World
	ecs.DeferInsert(w.Commands(), w.Intents, t.Snapshot.PlayerID, t.Input)
	return nil
}

// decideStage asks every enemy's AI for an intent. Decisions read only the
// snapshot, so no enemy sees another's choice from this turn. Phase 1.
type decideStage struct{}

func (decideStage) Phase() Phase { return PhaseDecide }

func (decideStage) Run(ctx context.Context, t *Turn) error {
	w := t.World
	snap := t.Snapshot

	// Validate everything before any memory is written.
	brains := make([]*entity.AIMemory, len(snap.Enemies))
	for i, id := range snap.Enemies {
		mem, ok := w.Brains.Get(id)
		if !ok {
			return missingComponent(id, "AI memory")
		}
		if !mem.State.Valid() {
			return invariantf("enemy %d has AI state %d", id, mem.State)
		}
		brains[i] = mem
	}

	chasing := 0
	for i, id := range snap.Enemies {
		self, _ := snap.PositionOf(id)
		intent := ai.Decide(brains[i], ai.View{
			Self:     self,
			Player:   snap.PlayerPos,
			PlayerID: snap.PlayerID,
		}, t.Rand)
		if brains[i].State == entity.AIChasing {
			chasing++
		}
		ecs.DeferInsert(w.Commands(), w.Intents, id, intent)
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("enemies", len(snap.Enemies)),
		attribute.Int("chasing", chasing),
	)
	return nil
}

// applyStage is the barrier that commits every attached intent. Phase 2.
type applyStage struct{}

func (applyStage) Phase() Phase { return PhaseApply }

func (applyStage) Run(ctx context.Context, t *Turn) error {
	n := t.World.ApplyDeferred()
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("applied", n))
	return nil
}

// resolveStage moves actors, player first then enemies in creation order.
// Each move is checked against live occupancy, so earlier movers have
// already vacated or claimed their tiles. Phase 3.
type resolveStage struct{}

func (resolveStage) Phase() Phase { return PhaseResolve }

func (resolveStage) Run(ctx context.Context, t *Turn) error {
	w := t.World

	movers, err := resolveOrder(w)
	if err != nil {
		return err
	}

	occ := newOccupancy(w)
	turn := t.Counter.Next()

	for _, id := range movers {
		intent, _ := w.Intents.Get(id)
		pos, _ := w.Positions.Get(id)

		switch intent.Action {
		case entity.ActionMove:
			dest := pos.Step(intent.Dir)
			if reason := checkMove(t, occ, id, dest); reason != RejectNone {
				t.Rejected++
				t.Log.Debug("move rejected",
					zap.Uint32("actor", uint32(id)),
					zap.String("dir", intent.Dir.String()),
					zap.String("reason", reason.String()),
				)
				break
			}
			occ.move(id, *pos, dest)
			*pos = dest
			t.Moved++
			t.Journal.Append(turn, journal.Event{
				Kind:   journal.EventMove,
				Actor:  id,
				Name:   w.NameOf(id),
				Player: w.Players.Has(id),
				X:      dest.X,
				Y:      dest.Y,
			})
		case entity.ActionAttack:
			// Damage is not modelled; the strike is only recorded.
			t.Attacks++
			t.Journal.Append(turn, journal.Event{
				Kind:       journal.EventAttack,
				Actor:      id,
				Name:       w.NameOf(id),
				Player:     w.Players.Has(id),
				Target:     intent.Target,
				TargetName: w.NameOf(intent.Target),
			})
		}

		ecs.DeferRemove(w.Commands(), w.Intents, id)
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("movers", len(movers)),
		attribute.Int("moved", t.Moved),
		attribute.Int("rejected", t.Rejected),
	)
	return nil
}

// resolveOrder lists actors holding an intent: the player first, then the
// rest in creation order. Every one must have a position.
func resolveOrder(w *entity.World) ([]ecs.EntityID, error) {
	holders := w.Query(w.Intents)
	order := make([]ecs.EntityID, 0, len(holders))
	for _, id := range holders {
		if w.Players.Has(id) {
			order = append(order, id)
		}
	}
	for _, id := range holders {
		if !w.Players.Has(id) {
			order = append(order, id)
		}
	}
	for _, id := range order {
		if !w.Positions.Has(id) {
			return nil, missingComponent(id, "position")
		}
	}
	return order, nil
}

// turnEndStage drops spent intents and advances the counter. Phase 4.
type turnEndStage struct{}

func (turnEndStage) Phase() Phase { return PhaseTurnEnd }

func (turnEndStage) Run(_ context.Context, t *Turn) error {
	t.World.ApplyDeferred()
	t.Counter.Advance()
	return nil
}
