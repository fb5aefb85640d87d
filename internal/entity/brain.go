package entity

// AIState is the closed set of enemy behaviour states.
type AIState int

const (
	AIIdle AIState = iota
	AIChasing
)

// String returns a human-readable state name.
func (s AIState) String() string {
	switch s {
	case AIIdle:
		return "idle"
	case AIChasing:
		return "chasing"
	default:
		return "unknown"
	}
}

// AIMemory is attached only to enemies and written only by the decision
// step evaluating that enemy.
type AIMemory struct {
	State         AIState
	TargetVisible bool
	LastKnown     *Position // last seen player position, nil until first sighting
	FOVRadius     int
}

// NewAIMemory returns an idle memory with the given sight radius.
func NewAIMemory(fovRadius int) AIMemory {
	return AIMemory{State: AIIdle, FOVRadius: fovRadius}
}

// Valid reports whether s is a known state.
func (s AIState) Valid() bool {
	return s == AIIdle || s == AIChasing
}
