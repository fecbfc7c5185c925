package throttle

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vnykmshr/callkit/internal/invoke"
	ckerrors "github.com/vnykmshr/callkit/pkg/common/errors"
	"github.com/vnykmshr/callkit/pkg/common/validation"
	"github.com/vnykmshr/callkit/pkg/metrics"
	"github.com/vnykmshr/callkit/pkg/ratecontrol/clock"
	"github.com/vnykmshr/callkit/pkg/ratecontrol/internal/instrument"
)

const module = "throttle"

var _ metrics.Instrumentable = (*Throttler[int])(nil)

// DefaultWait is the window used when Config.Wait is zero.
const DefaultWait = 300 * time.Millisecond

// Config holds configuration for a Throttler.
type Config struct {
	// Wait is the minimum spacing between invocations. Zero means DefaultWait.
	Wait time.Duration

	// Clock is the time source. Defaults to clock.SystemClock.
	Clock clock.Clock

	// Name identifies the instance in logs and metrics. Defaults to "default".
	Name string

	// Metrics configures Prometheus instrumentation. Disabled by default.
	Metrics metrics.Config

	// Logger receives debug events and recovered panics. Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultConfig returns a configuration with DefaultWait.
func DefaultConfig() Config {
	return Config{
		Wait:  DefaultWait,
		Clock: clock.SystemClock{},
		Name:  "default",
	}
}

// Throttler wraps an action so that it runs at most once per window.
type Throttler[T any] struct {
	action func(T)
	wait   time.Duration
	clock  clock.Clock
	rec    *instrument.Recorder

	mu       sync.Mutex
	timer    clock.Timer
	gen      uint64
	previous time.Time
}

// New creates a Throttler with the given window. Unlike Config.Wait, an
// explicit wait of zero is honoured and lets every call through.
func New[T any](action func(T), wait time.Duration) (*Throttler[T], error) {
	cfg := DefaultConfig()
	cfg.Wait = wait
	return newThrottler(action, cfg, false)
}

// NewWithConfig creates a Throttler with custom configuration. A zero
// Config.Wait selects DefaultWait.
func NewWithConfig[T any](action func(T), config Config) (*Throttler[T], error) {
	return newThrottler(action, config, true)
}

func newThrottler[T any](action func(T), config Config, defaultWait bool) (*Throttler[T], error) {
	if err := validation.ValidateCallable(module, "action", action); err != nil {
		return nil, err
	}
	if err := validation.ValidateNonNegativeDuration(module, "wait", config.Wait); err != nil {
		return nil, err
	}

	if config.Wait == 0 && defaultWait {
		config.Wait = DefaultWait
	}
	if config.Clock == nil {
		config.Clock = clock.SystemClock{}
	}
	if config.Name == "" {
		config.Name = "default"
	}

	return &Throttler[T]{
		action: action,
		wait:   config.Wait,
		clock:  config.Clock,
		rec:    instrument.New(module, config.Name, config.Metrics, config.Logger),
	}, nil
}

// Wrap returns the throttled form of action as a plain function. A wait of
// zero is honoured as in New.
func Wrap[T any](action func(T), wait time.Duration) (func(T), error) {
	t, err := New(action, wait)
	if err != nil {
		return nil, err
	}
	return t.Call, nil
}

// WrapFunc throttles an action that takes no arguments.
func WrapFunc(action func(), wait time.Duration) (func(), error) {
	if err := validation.ValidateCallable(module, "action", action); err != nil {
		return nil, err
	}
	t, err := New(func(struct{}) { action() }, wait)
	if err != nil {
		return nil, err
	}
	return func() { t.Call(struct{}{}) }, nil
}

// NewDynamic throttles a function of any signature. The returned function
// forwards its arguments positionally to action.
func NewDynamic(action any, config Config) (func(args ...any), error) {
	if err := validation.ValidateCallable(module, "action", action); err != nil {
		return nil, err
	}
	call, err := invoke.Func(action)
	if err != nil {
		return nil, ckerrors.NewArgumentError(module, "action", action, err.Error())
	}
	t, err := NewWithConfig(func(args []any) { call(args...) }, config)
	if err != nil {
		return nil, err
	}
	return func(args ...any) { t.Call(args) }, nil
}

// Call registers a call with arg. The action runs now if the window since
// the last invocation has elapsed. Otherwise the first call inside the window
// arms a trailing invocation with its own argument and later calls are dropped.
func (t *Throttler[T]) Call(arg T) {
	t.rec.Call()

	t.mu.Lock()
	now := t.clock.Now()
	remaining := t.wait - now.Sub(t.previous)

	if t.previous.IsZero() || remaining <= 0 {
		if t.timer != nil {
			t.timer.Stop()
			t.timer = nil
			t.gen++
		}
		t.advance(now)
		t.rec.Pending(false)
		t.mu.Unlock()

		t.invoke(arg, metrics.EdgeLeading)
		return
	}

	if t.timer == nil {
		t.gen++
		gen := t.gen
		t.timer = t.clock.AfterFunc(remaining, func() { t.expire(gen, arg) })
		t.rec.Pending(true)
		t.mu.Unlock()

		t.rec.Logger().Debug("armed", zap.Duration("remaining", remaining))
		return
	}

	t.rec.Coalesced()
	t.mu.Unlock()
	t.rec.Logger().Debug("dropped")
}

// Pending reports whether a trailing invocation is armed.
func (t *Throttler[T]) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}

// LastFire returns the time of the most recent invocation, or the zero time
// if the action has never run.
func (t *Throttler[T]) LastFire() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.previous
}

// EnableMetrics enables metrics collection.
func (t *Throttler[T]) EnableMetrics(config metrics.Config) error {
	return t.rec.EnableMetrics(config)
}

// DisableMetrics disables metrics collection.
func (t *Throttler[T]) DisableMetrics() {
	t.rec.DisableMetrics()
}

// MetricsEnabled returns true if metrics are currently enabled.
func (t *Throttler[T]) MetricsEnabled() bool {
	return t.rec.MetricsEnabled()
}

func (t *Throttler[T]) expire(gen uint64, arg T) {
	t.mu.Lock()
	if gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.timer = nil
	t.advance(t.clock.Now())
	t.rec.Pending(false)
	t.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			t.rec.Panicked(ckerrors.PanicError(module, "trailing", r))
		}
	}()
	t.invoke(arg, metrics.EdgeTrailing)
}

// advance moves the last-fire time forward; it never moves backwards.
// Callers must hold t.mu.
func (t *Throttler[T]) advance(now time.Time) {
	if now.After(t.previous) {
		t.previous = now
	}
}

func (t *Throttler[T]) invoke(arg T, edge string) {
	t.rec.Fired(edge)
	start := time.Now()
	defer func() { t.rec.Observe(time.Since(start)) }()
	t.action(arg)
}
