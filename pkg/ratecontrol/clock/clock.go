// Package clock defines the timer facility the rate controllers run against.
//
// Production code uses SystemClock. Tests substitute a virtual clock so that
// timing behaviour can be verified without sleeping.
package clock

import "time"

// Timer is a pending callback scheduled with Clock.AfterFunc.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback has already run or the timer was already stopped.
	Stop() bool
}

// Clock provides the current time and schedules callbacks after a delay.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock implements Clock using the time package.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// AfterFunc runs f in its own goroutine once d has elapsed.
func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
