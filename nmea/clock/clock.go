// Package clock provides a clock service as an alternative to using the
// standard time package, so that code driven by wall-clock time - here,
// the satellite tracker's Flush staleness check and the capture log's
// midnight blackout window - can be tested without a real clock. Production code uses SystemClock; tests use SteppingClock or
// StoppedClock.
package clock

import "time"

// Clock is satisfied by SystemClock, SteppingClock and StoppedClock.
type Clock interface {
	Now() time.Time
}
