package game

// Clock gates a display-refresh callback down to a target frame rate.
// Refreshes arriving sooner than one frame duration after the last
// accepted one are skipped rather than slept.
type Clock struct {
	frameDuration float64 // Milliseconds
	last          float64 // Timestamp of the last accepted tick
}

// NewClock creates a clock for the given target frame rate.
func NewClock(targetFPS int) *Clock {
	return &Clock{frameDuration: 1000.0 / float64(targetFPS)}
}

// FrameDuration returns the gating threshold in milliseconds.
func (c *Clock) FrameDuration() float64 {
	return c.frameDuration
}

// Tick reports whether a step should run for a refresh at timestamp
// (milliseconds, monotonically increasing) and the milliseconds elapsed
// since the last accepted tick.
func (c *Clock) Tick(timestamp float64) (delta float64, ok bool) {
	delta = timestamp - c.last
	if delta < c.frameDuration {
		return 0, false
	}
	c.last = timestamp
	return delta, true
}
