package gamedata

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
)

// EnemyRegistry holds loaded enemy definitions and provides spawning utilities.
type EnemyRegistry struct {
	enemies     []EnemyDef
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
// Definitions with a non-positive weight are never picked by SpawnRandom.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	totalWeight := 0
	for _, e := range enemies {
		if e.SpawnWeight > 0 {
			totalWeight += e.SpawnWeight
		}
	}
	return &EnemyRegistry{
		enemies:     enemies,
		totalWeight: totalWeight,
	}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	return LoadEnemyRegistryFrom(dataFS)
}

// LoadEnemyRegistryFrom loads enemies.json from fsys.
func LoadEnemyRegistryFrom(fsys fs.FS) (*EnemyRegistry, error) {
	file, err := LoadFrom[EnemiesFile](fsys, "enemies.json")
	if err != nil {
		return nil, err
	}
	if len(file.Enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	seen := make(map[string]bool, len(file.Enemies))
	for _, e := range file.Enemies {
		if e.ID == "" {
			return nil, fmt.Errorf("enemy %q has no id", e.Name)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("duplicate enemy id %q", e.ID)
		}
		seen[e.ID] = true
	}
	r := NewEnemyRegistry(file.Enemies)
	if r.totalWeight == 0 {
		return nil, errors.New("enemies.json has no positive spawn weights")
	}
	return r, nil
}

// SpawnRandom selects a random enemy definition using weighted probability.
// It returns nil if the registry has nothing to pick.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	if r.totalWeight <= 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)
	cumulative := 0
	for i := range r.enemies {
		if r.enemies[i].SpawnWeight <= 0 {
			continue
		}
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return &r.enemies[i]
		}
	}
	return nil
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}
