package game

import "time"

// MaxFrameTime caps a single wall-clock step. Longer gaps (window drag,
// breakpoint) would teleport boxes far past the walls.
const MaxFrameTime = 0.25

// Clock reports the time elapsed since its previous tick, in seconds
type Clock interface {
	Tick() float64
}

// FixedClock always reports the same step
type FixedClock struct {
	DT float64
}

// Tick returns the fixed step
func (c FixedClock) Tick() float64 {
	return c.DT
}

// WallClock measures real elapsed time on the monotonic clock.
// The first tick returns the nominal step.
type WallClock struct {
	nominal float64
	now     func() time.Time
	last    time.Time
}

// NewWallClock creates a wall clock; nominal is used for the first frame
func NewWallClock(nominal float64) *WallClock {
	return &WallClock{nominal: nominal, now: time.Now}
}

// Tick returns the seconds since the previous tick, capped at MaxFrameTime
func (c *WallClock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return c.nominal
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > MaxFrameTime {
		return MaxFrameTime
	}
	return dt
}
