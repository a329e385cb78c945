package clock

import "time"

// FakeClock pins Now to a fixed instant so date-sensitive pipeline
// logic (candidate selection, publication-date validation) stays
// deterministic under test.
type FakeClock struct {
	now time.Time
}

// NewFakeClock returns a clock frozen at t, normalized to UTC like the
// system clock.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t.UTC()}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

// Advance moves the frozen instant forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
