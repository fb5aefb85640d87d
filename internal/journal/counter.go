package journal

// Counter is the turn number. It only moves forward, one step per
// resolved turn.
type Counter struct {
	turn int
}

// Current returns the number of resolved turns.
func (c *Counter) Current() int {
	return c.turn
}

// Next returns the value the counter will hold once the turn in progress
// ends. Records produced during a turn carry this number.
func (c *Counter) Next() int {
	return c.turn + 1
}

// Advance ends a turn and returns the new value.
func (c *Counter) Advance() int {
	c.turn++
	return c.turn
}
