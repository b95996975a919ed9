package clock

import "time"

// Clock is the engine's source of wall time. Game start and end stamps, the
// timed-mode deadline and score timestamps all read it.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

var _ Clock = (*RealClock)(nil)

func New() *RealClock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}
