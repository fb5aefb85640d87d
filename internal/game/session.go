package game

import (
	"context"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/horizon/internal/config"
	"github.com/samdwyer/horizon/internal/engine"
	"github.com/samdwyer/horizon/internal/gamedata"
	"github.com/samdwyer/horizon/internal/telemetry"
	"github.com/samdwyer/horizon/internal/world"
)

// Session is one game in progress.
type Session struct {
	Seed   int64
	Engine *engine.Engine
}

// NewSession builds a level and its actors from cfg.
func NewSession(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Session, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	seed := sessionSeed(cfg)
	rng := newRand(seed)

	reg, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, fmt.Errorf("load enemies: %w", err)
	}

	var (
		level  *world.Map
		layout *world.Layout
	)
	if cfg.Game.Layout != "" {
		layout, err = world.LoadLayout(cfg.Game.Layout)
		if err != nil {
			return nil, err
		}
		level = layout.Map()
	} else {
		level = generate(ctx, cfg.Game, rng)
	}

	w, err := engine.Populate(ctx, level, engine.PopulateOptions{
		Player:     playerSpec(cfg),
		EnemyCount: cfg.Game.EnemyCount,
		Registry:   reg,
		Layout:     layout,
	}, rng)
	if err != nil {
		return nil, fmt.Errorf("populate: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("map.width", level.Width),
		attribute.Int("map.height", level.Height),
		attribute.Int("actors", w.Count()),
	)
	log.Info("session started",
		zap.Int64("seed", seed),
		zap.Int("width", level.Width),
		zap.Int("height", level.Height),
		zap.Int("enemies", len(w.EnemyIDs())),
		zap.String("generator", cfg.Game.Generator),
		zap.String("layout", cfg.Game.Layout),
	)

	return &Session{
		Seed:   seed,
		Engine: engine.New(level, w, rng, log.Named("engine")),
	}, nil
}

func generate(ctx context.Context, g config.GameConfig, rng *rand.Rand) *world.Map {
	if g.Generator == config.GeneratorRooms {
		m, _ := world.GenerateRooms(ctx, g.MapWidth, g.MapHeight, rng)
		return m
	}
	return world.Generate(ctx, g.MapWidth, g.MapHeight, g.WallChance, rng)
}
