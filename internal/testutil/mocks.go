package testutil

import (
	"sort"
	"sync"
	"time"

	"github.com/vnykmshr/callkit/pkg/ratecontrol/clock"
)

// MockClock implements clock.Clock with controllable time. Callbacks
// scheduled with AfterFunc run synchronously inside Advance, in deadline
// order, with Now reporting each callback's deadline while it runs.
type MockClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*MockTimer
}

// MockTimer is a callback scheduled on a MockClock.
type MockTimer struct {
	clock   *MockClock
	when    time.Time
	seq     uint64
	f       func()
	stopped bool
	fired   bool
}

// NewMockClock creates a new MockClock starting at the given time.
// If zero time is provided, uses current time.
func NewMockClock(start time.Time) *MockClock {
	if start.IsZero() {
		start = time.Now()
	}
	return &MockClock{now: start}
}

// Now returns the current mock time.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc schedules f to run once the mock time reaches Now()+d.
func (m *MockClock) AfterFunc(d time.Duration, f func()) clock.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &MockTimer{
		clock: m,
		when:  m.now.Add(d),
		seq:   m.seq,
		f:     f,
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the mock clock forward by d, firing every timer whose
// deadline falls within the new window. Timers armed by a firing callback
// also run if their deadline is reached.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDueLocked(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		if next.when.After(m.now) {
			m.now = next.when
		}
		next.fired = true
		m.removeLocked(next)
		m.mu.Unlock()

		next.f()
	}
}

// Set sets the mock clock to a specific time without firing timers.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (m *MockClock) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// Stop cancels the timer. It returns false if the timer already fired or
// was already stopped.
func (t *MockTimer) Stop() bool {
	m := t.clock
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	m.removeLocked(t)
	return true
}

func (m *MockClock) nextDueLocked(target time.Time) *MockTimer {
	if len(m.timers) == 0 {
		return nil
	}
	sort.SliceStable(m.timers, func(i, j int) bool {
		a, b := m.timers[i], m.timers[j]
		if a.when.Equal(b.when) {
			return a.seq < b.seq
		}
		return a.when.Before(b.when)
	})
	if first := m.timers[0]; !first.when.After(target) {
		return first
	}
	return nil
}

func (m *MockClock) removeLocked(t *MockTimer) {
	for i, candidate := range m.timers {
		if candidate == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}
