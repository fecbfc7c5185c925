package clock

import (
	"testing"
	"time"
)

func TestSystemClockAfterFunc(t *testing.T) {
	var c Clock = SystemClock{}

	start := c.Now()
	done := make(chan time.Time, 1)
	c.AfterFunc(10*time.Millisecond, func() { done <- time.Now() })

	select {
	case fired := <-done:
		if elapsed := fired.Sub(start); elapsed < 10*time.Millisecond {
			t.Errorf("callback ran after %v, want at least 10ms", elapsed)
		}
	case <-time.After(time.Second):
		t.Fatal("callback did not run")
	}
}

func TestSystemClockStop(t *testing.T) {
	fired := make(chan struct{}, 1)
	timer := SystemClock{}.AfterFunc(50*time.Millisecond, func() { fired <- struct{}{} })

	if !timer.Stop() {
		t.Fatal("Stop should report that the timer was pending")
	}
	if timer.Stop() {
		t.Error("second Stop should report false")
	}

	select {
	case <-fired:
		t.Error("stopped timer fired")
	case <-time.After(100 * time.Millisecond):
	}
}
