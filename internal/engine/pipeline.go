package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/samdwyer/horizon/internal/entity"
	"github.com/samdwyer/horizon/internal/journal"
	"github.com/samdwyer/horizon/internal/telemetry"
	"github.com/samdwyer/horizon/internal/world"
)

// Phase defines execution ordering within a single turn.
type Phase int

const (
	PhaseInput   Phase = iota // 0: stamp the player's intent
	PhaseDecide               // 1: every enemy proposes an intent
	PhaseApply                // 2: commit attached intents
	PhaseResolve              // 3: movement and collision
	PhaseTurnEnd              // 4: drop spent intents, advance the counter
)

// String returns the phase name used in span and log fields.
func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseDecide:
		return "decide"
	case PhaseApply:
		return "apply"
	case PhaseResolve:
		return "resolve"
	case PhaseTurnEnd:
		return "turn_end"
	default:
		return "unknown"
	}
}

// Stage is one step of turn resolution.
type Stage interface {
	Phase() Phase
	Run(ctx context.Context, t *Turn) error
}

// Turn is the scoped state handed to each stage in order. A stage holds
// it only for the duration of its Run call.
type Turn struct {
	World   *entity.World
	Map     *world.Map
	Journal *journal.Journal
	Counter *journal.Counter
	Rand    *rand.Rand
	Log     *zap.Logger

	// Input is the player's intent for this turn.
	Input entity.Intent
	// Snapshot is the committed world as it stood before any stage ran.
	Snapshot *Snapshot

	Moved    int
	Rejected int
	Attacks  int
}

// Pipeline executes stages in phase order. Stages sharing a phase keep
// their registration order.
type Pipeline struct {
	stages []Stage
	sorted bool
}

func NewPipeline() *Pipeline {
	return &Pipeline{
		stages: make([]Stage, 0, 8),
	}
}

func (p *Pipeline) Register(s Stage) {
	p.stages = append(p.stages, s)
	p.sorted = false
}

// Stages returns the stages in execution order.
func (p *Pipeline) Stages() []Stage {
	p.ensureSorted()
	out := make([]Stage, len(p.stages))
	copy(out, p.stages)
	return out
}

// Run executes every stage once. The first error aborts the turn: queued
// structural changes are discarded and later stages do not run.
func (p *Pipeline) Run(ctx context.Context, t *Turn) error {
	p.ensureSorted()
	tracer := telemetry.Tracer("engine")
	for _, s := range p.stages {
		stageCtx, span := tracer.Start(ctx, "stage."+s.Phase().String())
		err := s.Run(stageCtx, t)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.End()
			t.World.Commands().Discard()
			return fmt.Errorf("%s stage: %w", s.Phase(), err)
		}
		span.SetAttributes(attribute.Int("pending_commands", t.World.Commands().Len()))
		span.End()
	}
	return nil
}

func (p *Pipeline) ensureSorted() {
	if !p.sorted {
		sort.SliceStable(p.stages, func(i, j int) bool {
			return p.stages[i].Phase() < p.stages[j].Phase()
		})
		p.sorted = true
	}
}

// DefaultPipeline returns the five stages of a turn.
func DefaultPipeline() *Pipeline {
	p := NewPipeline()
	p.Register(inputStage{})
	p.Register(decideStage{})
	p.Register(applyStage{})
	p.Register(resolveStage{})
	p.Register(turnEndStage{})
	return p
}
