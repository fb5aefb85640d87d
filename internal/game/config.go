package game

import (
	"math/rand"
	"time"

	"github.com/samdwyer/horizon/internal/config"
	"github.com/samdwyer/horizon/internal/entity"
)

// playerSpec builds the player from the [player] config section.
func playerSpec(cfg *config.Config) entity.PlayerSpec {
	p := cfg.Player
	return entity.PlayerSpec{
		Name:   p.Name,
		Symbol: cfg.PlayerSymbol(),
		Color:  cfg.PlayerColor(),
		Stats:  entity.NewStats(p.HP, p.Attack, p.Defense),
	}
}

// sessionSeed returns the configured seed, or a time based one when the
// seed is 0.
func sessionSeed(cfg *config.Config) int64 {
	if cfg.Game.Seed != 0 {
		return cfg.Game.Seed
	}
	return time.Now().UnixNano()
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
