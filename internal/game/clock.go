package game

import "time"

// Clock measures run time. Elapsed only advances while the clock is running
// and freezes while it is suspended.
type Clock struct {
	now         func() time.Time
	start       time.Time
	suspendedAt time.Time
	suspended   time.Duration
	elapsed     time.Duration
	running     bool
	started     bool
}

// NewClock creates a suspended clock reading time from now.
// A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	c := &Clock{now: now}
	c.Reset()
	return c
}

// Reset restarts the clock at zero elapsed time, suspended.
func (c *Clock) Reset() {
	t := c.now()
	c.start = t
	c.suspendedAt = t
	c.suspended = 0
	c.elapsed = 0
	c.running = false
	c.started = false
}

// Suspend freezes elapsed time.
func (c *Clock) Suspend() {
	if !c.running {
		return
	}
	c.suspendedAt = c.now()
	c.running = false
}

// Resume continues counting; the time spent suspended is excluded.
func (c *Clock) Resume() {
	if c.running {
		return
	}
	c.suspended += c.now().Sub(c.suspendedAt)
	c.running = true
	c.started = true
}

// Update refreshes the elapsed time if the clock is running.
func (c *Clock) Update() {
	if c.running {
		c.elapsed = c.now().Sub(c.start) - c.suspended
	}
}

// Elapsed returns the run time as of the last Update.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// Started reports whether the clock was resumed since the last Reset.
func (c *Clock) Started() bool {
	return c.started
}

// Running reports whether the clock is counting.
func (c *Clock) Running() bool {
	return c.running
}

// ManualTime is a settable time source for headless runs and tests.
type ManualTime struct {
	t time.Time
}

// NewManualTime creates a time source starting at the Unix epoch.
func NewManualTime() *ManualTime {
	return &ManualTime{t: time.Unix(0, 0)}
}

// Now returns the current manual time.
func (m *ManualTime) Now() time.Time {
	return m.t
}

// Advance moves the time forward by d.
func (m *ManualTime) Advance(d time.Duration) {
	m.t = m.t.Add(d)
}
