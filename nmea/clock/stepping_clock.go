package clock

import (
	"sync"
	"time"
)

// SteppingClock is a Clock that returns a given series of time values, one
// at a time. Useful in a test case that drives a burst-timeout state
// machine through a sequence of elapsed times.
//
// Each call to Now returns the next value from the list passed to
// NewSteppingClock. Once the list is exhausted, subsequent calls keep
// returning the last value.
type SteppingClock struct {
	mutex    sync.Mutex
	nextTime int
	times    []time.Time
}

var _ Clock = (*SteppingClock)(nil)

// NewSteppingClock creates a SteppingClock.
func NewSteppingClock(times []time.Time) Clock {
	return &SteppingClock{times: times}
}

// SetTimes replaces the array of times to return.
func (c *SteppingClock) SetTimes(times []time.Time) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.times = times
	c.nextTime = 0
}

// Now returns the next time value from the configured array. If the array
// is empty it returns the UNIX epoch; once exhausted it keeps returning
// the final value.
func (c *SteppingClock) Now() time.Time {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if len(c.times) == 0 {
		return time.Unix(0, 0).UTC()
	}
	if c.nextTime >= len(c.times) {
		return c.times[len(c.times)-1]
	}
	result := c.times[c.nextTime]
	c.nextTime++
	return result
}
