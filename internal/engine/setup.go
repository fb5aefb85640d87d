package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/horizon/internal/entity"
	"github.com/samdwyer/horizon/internal/gamedata"
	"github.com/samdwyer/horizon/internal/telemetry"
	"github.com/samdwyer/horizon/internal/world"
)

// maxPlacementAttempts bounds the random search for a free tile.
const maxPlacementAttempts = 10000

// ErrNoFreeTile is returned when no unoccupied floor tile could be found.
var ErrNoFreeTile = errors.New("no free floor tile")

// PopulateOptions controls how a level is filled with actors.
type PopulateOptions struct {
	Player     entity.PlayerSpec
	EnemyCount int // ignored when Layout places enemies

	// Registry supplies enemy definitions. Nil spawns the stock goblin.
	Registry *gamedata.EnemyRegistry
	// Layout, when set, fixes the player and enemy placements.
	Layout *world.Layout
}

// Populate creates a world holding one player and the requested enemies,
// each on a distinct floor tile of level.
func Populate(ctx context.Context, level *world.Map, opts PopulateOptions, rng *rand.Rand) (*entity.World, error) {
	tracer := telemetry.Tracer("engine")
	_, span := tracer.Start(ctx, "world.populate")
	defer span.End()

	w, err := populate(level, opts, rng)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("actors", w.Count()),
		attribute.Int("enemies", len(w.EnemyIDs())),
	)
	return w, nil
}

func populate(level *world.Map, opts PopulateOptions, rng *rand.Rand) (*entity.World, error) {
	w := entity.NewWorld()
	blocked := func(p entity.Position) bool {
		if level.IsWall(p.X, p.Y) {
			return true
		}
		_, occupied := w.OccupantAt(p)
		return occupied
	}

	place := func(fixed *world.Placement) (entity.Position, error) {
		if fixed == nil {
			return freeTile(level, blocked, rng)
		}
		p := entity.Position{X: fixed.X, Y: fixed.Y}
		if level.IsWall(p.X, p.Y) {
			return p, fmt.Errorf("placement %v is rock", p)
		}
		if id, ok := w.OccupantAt(p); ok {
			return p, fmt.Errorf("placement %v is occupied by %s", p, w.NameOf(id))
		}
		return p, nil
	}

	var playerAt *world.Placement
	if opts.Layout != nil {
		playerAt = opts.Layout.Player
	}
	pos, err := place(playerAt)
	if err != nil {
		return nil, fmt.Errorf("place player: %w", err)
	}
	w.SpawnPlayer(pos, opts.Player)

	if opts.Layout != nil && len(opts.Layout.Enemies) > 0 {
		for i := range opts.Layout.Enemies {
			pl := &opts.Layout.Enemies[i]
			spec, err := enemySpec(opts.Registry, pl.Kind, rng)
			if err != nil {
				return nil, fmt.Errorf("enemy %d: %w", i, err)
			}
			pos, err := place(pl)
			if err != nil {
				return nil, fmt.Errorf("place enemy %d: %w", i, err)
			}
			w.SpawnEnemy(pos, spec)
		}
		return w, nil
	}

	for i := 0; i < opts.EnemyCount; i++ {
		spec, err := enemySpec(opts.Registry, "", rng)
		if err != nil {
			return nil, fmt.Errorf("enemy %d: %w", i, err)
		}
		pos, err := place(nil)
		if err != nil {
			return nil, fmt.Errorf("place enemy %d: %w", i, err)
		}
		w.SpawnEnemy(pos, spec)
	}
	return w, nil
}

// enemySpec resolves a definition id, or a weighted random pick when id
// is empty.
func enemySpec(reg *gamedata.EnemyRegistry, id string, rng *rand.Rand) (entity.EnemySpec, error) {
	if reg == nil {
		if id != "" && id != "goblin" {
			return entity.EnemySpec{}, fmt.Errorf("unknown enemy kind %q", id)
		}
		return entity.Goblin(), nil
	}
	var def *gamedata.EnemyDef
	if id == "" {
		def = reg.SpawnRandom(rng)
	} else {
		def = reg.GetByID(id)
	}
	if def == nil {
		if id == "" {
			return entity.EnemySpec{}, errors.New("registry has nothing to spawn")
		}
		return entity.EnemySpec{}, fmt.Errorf("unknown enemy kind %q", id)
	}
	return entity.EnemySpecFromDef(def), nil
}

// freeTile picks a random tile that is not blocked, falling back to a
// linear scan once the random attempts run out.
func freeTile(level *world.Map, blocked func(entity.Position) bool, rng *rand.Rand) (entity.Position, error) {
	for i := 0; i < maxPlacementAttempts; i++ {
		p := entity.Position{X: rng.Intn(level.Width), Y: rng.Intn(level.Height)}
		if !blocked(p) {
			return p, nil
		}
	}
	for y := 0; y < level.Height; y++ {
		for x := 0; x < level.Width; x++ {
			p := entity.Position{X: x, Y: y}
			if !blocked(p) {
				return p, nil
			}
		}
	}
	return entity.Position{}, ErrNoFreeTile
}
