package match

import "time"

// Clock accrues think time per side. At most one side runs at a time; the
// orchestrator folds a side's slice in with Stop before starting the other.
// Purely arithmetic, no goroutines: readings are derived from the caller's
// "now" so rendering jitter cannot skew them.
type Clock struct {
	accumulated [2]time.Duration
	running     bool
	side        Color
	startedAt   time.Time
}

func NewClock() *Clock {
	return &Clock{}
}

// Start begins accruing time for side. The other side's clock, if it was
// running, must already have been stopped.
func (c *Clock) Start(side Color, now time.Time) {
	c.running = true
	c.side = side
	c.startedAt = now
}

// Stop folds the running slice into side's accumulator. Stopping a side that
// is not running is a no-op.
func (c *Clock) Stop(side Color, now time.Time) {
	if !c.running || c.side != side {
		return
	}
	c.accumulated[side] += now.Sub(c.startedAt)
	c.running = false
}

// Elapsed returns side's total think time as of now.
func (c *Clock) Elapsed(side Color, now time.Time) time.Duration {
	total := c.accumulated[side]
	if c.running && c.side == side {
		total += now.Sub(c.startedAt)
	}
	return total
}

// Running reports which side's clock is ticking, if any.
func (c *Clock) Running() (Color, bool) {
	return c.side, c.running
}
