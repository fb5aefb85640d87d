package engine

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/samdwyer/horizon/internal/ecs"
	"github.com/samdwyer/horizon/internal/entity"
	"github.com/samdwyer/horizon/internal/journal"
	"github.com/samdwyer/horizon/internal/world"
)

func nopLogger() *zap.Logger { return zap.NewNop() }

type recordStage struct {
	phase Phase
	name  string
	log   *[]string
	err   error
}

func (s recordStage) Phase() Phase { return s.phase }

func (s recordStage) Run(_ context.Context, _ *Turn) error {
	*s.log = append(*s.log, s.name)
	return s.err
}

func emptyTurn() *Turn {
	return &Turn{
		World:   entity.NewWorld(),
		Map:     world.NewOpenMap(4, 4),
		Journal: journal.New(),
		Counter: &journal.Counter{},
		Rand:    testRand(),
		Log:     nopLogger(),
	}
}

func TestPipelinePhaseOrder(t *testing.T) {
	var got []string
	p := NewPipeline()
	p.Register(recordStage{phase: PhaseTurnEnd, name: "end", log: &got})
	p.Register(recordStage{phase: PhaseResolve, name: "resolve", log: &got})
	p.Register(recordStage{phase: PhaseInput, name: "input-a", log: &got})
	p.Register(recordStage{phase: PhaseDecide, name: "decide", log: &got})
	p.Register(recordStage{phase: PhaseInput, name: "input-b", log: &got})

	if err := p.Run(context.Background(), emptyTurn()); err != nil {
		t.Fatal(err)
	}
	want := []string{"input-a", "input-b", "decide", "resolve", "end"}
	if len(got) != len(want) {
		t.Fatalf("ran %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stage %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPipelineErrorStopsAndDiscards(t *testing.T) {
	var got []string
	boom := errors.New("boom")
	turn := emptyTurn()
	id := turn.World.SpawnPlayer(entity.Position{}, entity.DefaultPlayer())

	p := NewPipeline()
	p.Register(recordStage{phase: PhaseInput, name: "input", log: &got})
	p.Register(recordStage{phase: PhaseDecide, name: "decide", log: &got, err: boom})
	p.Register(recordStage{phase: PhaseResolve, name: "resolve", log: &got})

	ecs.DeferInsert(turn.World.Commands(), turn.World.Intents, id, entity.Wait())
	err := p.Run(context.Background(), turn)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if len(got) != 2 {
		t.Errorf("ran %v, want input and decide only", got)
	}
	if turn.World.Commands().Len() != 0 {
		t.Error("queued commands survived a failed stage")
	}
	turn.World.ApplyDeferred()
	if turn.World.Intents.Has(id) {
		t.Error("discarded intent was applied")
	}
}

func TestDefaultPipelineStages(t *testing.T) {
	stages := DefaultPipeline().Stages()
	want := []Phase{PhaseInput, PhaseDecide, PhaseApply, PhaseResolve, PhaseTurnEnd}
	if len(stages) != len(want) {
		t.Fatalf("%d stages, want %d", len(stages), len(want))
	}
	for i, s := range stages {
		if s.Phase() != want[i] {
			t.Errorf("stage %d phase = %v, want %v", i, s.Phase(), want[i])
		}
	}
}

func TestIntentsInvisibleBeforeBarrier(t *testing.T) {
	turn := emptyTurn()
	w := turn.World
	id := w.SpawnPlayer(entity.Position{X: 1, Y: 1}, entity.DefaultPlayer())
	snap, err := takeSnapshot(w)
	if err != nil {
		t.Fatal(err)
	}
	turn.Snapshot = snap
	turn.Input = entity.Move(entity.DirRight)

	if err := (inputStage{}).Run(context.Background(), turn); err != nil {
		t.Fatal(err)
	}
	if w.Intents.Has(id) {
		t.Fatal("intent visible before the apply barrier")
	}
	if err := (applyStage{}).Run(context.Background(), turn); err != nil {
		t.Fatal(err)
	}
	in, ok := w.Intents.Get(id)
	if !ok || *in != entity.Move(entity.DirRight) {
		t.Errorf("intent after barrier = %v, %v", in, ok)
	}
}

func TestRejectionString(t *testing.T) {
	tests := []struct {
		r    Rejection
		want string
	}{
		{RejectNone, "none"},
		{RejectBounds, "out_of_bounds"},
		{RejectWall, "wall"},
		{RejectOccupied, "occupied"},
		{RejectPlayer, "player"},
		{Rejection(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.r), got, tt.want)
		}
	}
}
