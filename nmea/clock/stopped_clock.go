package clock

import "time"

// StoppedClock is a Clock that always returns the same time.
type StoppedClock struct {
	time time.Time
}

var _ Clock = (*StoppedClock)(nil)

// NewStoppedClock creates a StoppedClock set to the given moment.
func NewStoppedClock(year int, month time.Month, day, hour, minute, second, nanosecond int, location *time.Location) Clock {
	return &StoppedClock{time: time.Date(year, month, day, hour, minute, second, nanosecond, location)}
}

// SetTime sets a new unchanging time.
func (c *StoppedClock) SetTime(t time.Time) {
	c.time = t
}

// Now always returns the same time.
func (c *StoppedClock) Now() time.Time {
	return c.time
}
