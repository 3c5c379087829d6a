package game

import "time"

// TickClock decides when the next fixed-rate tick is due, independent of how
// often the caller renders.
type TickClock struct {
	interval   time.Duration
	lastUpdate time.Time
}

// NewTickClock returns a clock for rate ticks per second. A rate of zero
// yields a clock that is never due.
func NewTickClock(rate int, start time.Time) *TickClock {
	var interval time.Duration
	if rate > 0 {
		interval = time.Second / time.Duration(rate)
	}
	return &TickClock{interval: interval, lastUpdate: start}
}

func (c *TickClock) Interval() time.Duration {
	return c.interval
}

// Due reports whether a tick should run at now, and if so starts the next period.
func (c *TickClock) Due(now time.Time) bool {
	if c.interval <= 0 {
		return false
	}
	if now.Sub(c.lastUpdate) < c.interval {
		return false
	}
	c.lastUpdate = now
	return true
}
