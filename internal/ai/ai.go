// Package ai decides what each enemy wants to do this turn. Decisions are
// made from a read-only view of positions; the only state written is the
// deciding enemy's own memory.
package ai

import (
	"fmt"

	"github.com/samdwyer/horizon/internal/ecs"
	"github.com/samdwyer/horizon/internal/entity"
)

// Rand is the random source consumed by idle wandering.
type Rand interface {
	Intn(n int) int
}

// View is what one enemy may observe when deciding: its own position and
// the player's committed position from the start of the turn.
type View struct {
	Self     entity.Position
	Player   entity.Position
	PlayerID ecs.EntityID
}

// Decide runs the state machine for one enemy and returns its intent.
// Visibility is recomputed from scratch every call; there is no memory of
// a player who just stepped out of sight.
func Decide(mem *entity.AIMemory, v View, rng Rand) entity.Intent {
	if Visible(v.Self, v.Player, mem.FOVRadius) {
		mem.TargetVisible = true
		last := v.Player
		mem.LastKnown = &last
		mem.State = entity.AIChasing
	} else {
		mem.TargetVisible = false
		mem.State = entity.AIIdle
	}

	switch mem.State {
	case entity.AIIdle:
		return Wander(rng)
	case entity.AIChasing:
		return chase(v.Self, *mem.LastKnown, v.PlayerID)
	default:
		panic(fmt.Sprintf("ai: unknown state %d", mem.State))
	}
}

// Visible reports whether target lies within Chebyshev distance radius of
// self. The boundary is inclusive.
func Visible(self, target entity.Position, radius int) bool {
	return self.Chebyshev(target) <= radius
}

// wanderChoices holds the five equally likely idle outcomes.
var wanderChoices = [...]entity.Intent{
	entity.Move(entity.DirUp),
	entity.Move(entity.DirDown),
	entity.Move(entity.DirLeft),
	entity.Move(entity.DirRight),
	entity.Wait(),
}

// Wander picks one of four steps or staying put, uniformly.
func Wander(rng Rand) entity.Intent {
	return wanderChoices[rng.Intn(len(wanderChoices))]
}

func chase(self, target entity.Position, targetID ecs.EntityID) entity.Intent {
	if self.Chebyshev(target) <= 1 {
		return entity.Attack(targetID)
	}
	return StepToward(self, target)
}

// StepToward returns a single orthogonal step that closes the larger axis
// gap first. Horizontal wins only when strictly larger.
func StepToward(self, target entity.Position) entity.Intent {
	dx := target.X - self.X
	dy := target.Y - self.Y

	switch {
	case abs(dx) > abs(dy):
		if dx > 0 {
			return entity.Move(entity.DirRight)
		}
		return entity.Move(entity.DirLeft)
	case dy > 0:
		return entity.Move(entity.DirDown)
	case dy < 0:
		return entity.Move(entity.DirUp)
	default:
		return entity.Wait()
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
