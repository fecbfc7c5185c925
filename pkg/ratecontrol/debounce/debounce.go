package debounce

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

const module = "debounce"

var _ metrics.Instrumentable = (*Debouncer[int])(nil)

// DefaultWait is the quiet period used when Config.Wait is zero.
const DefaultWait = 300 * time.Millisecond

// Config holds configuration for a Debouncer.
type Config struct {
	// Wait is the quiet period after the last call. Zero means DefaultWait.
	Wait time.Duration

	// Immediate runs the action on the leading edge of a burst instead of
	// the trailing edge.
	Immediate bool

	// Clock is the time source. Defaults to clock.SystemClock.
	Clock clock.Clock

	// Name identifies the instance in logs and metrics. Defaults to "default".
	Name string

	// Metrics configures Prometheus instrumentation. Disabled by default.
	Metrics metrics.Config

	// Logger receives debug events and recovered panics. Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultConfig returns a trailing-edge configuration with DefaultWait.
func DefaultConfig() Config {
	return Config{
		Wait:  DefaultWait,
		Clock: clock.SystemClock{},
		Name:  "default",
	}
}

// Debouncer wraps an action so that bursts of calls produce one invocation.
type Debouncer[T any] struct {
	action    func(T)
	wait      time.Duration
	immediate bool
	clock     clock.Clock
	rec       *instrument.Recorder

	mu     sync.Mutex
	timer  clock.Timer
	gen    uint64
	latest T
}

// New creates a Debouncer with the given wait and edge. Unlike Config.Wait,
// an explicit wait of zero is honoured: the quiet period ends on the next
// timer tick.
func New[T any](action func(T), wait time.Duration, immediate bool) (*Debouncer[T], error) {
	cfg := DefaultConfig()
	cfg.Wait = wait
	cfg.Immediate = immediate
	return newDebouncer(action, cfg, false)
}

// NewWithConfig creates a Debouncer with custom configuration. A zero
// Config.Wait selects DefaultWait.
func NewWithConfig[T any](action func(T), config Config) (*Debouncer[T], error) {
	return newDebouncer(action, config, true)
}

func newDebouncer[T any](action func(T), config Config, defaultWait bool) (*Debouncer[T], error) {
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

	return &Debouncer[T]{
		action:    action,
		wait:      config.Wait,
		immediate: config.Immediate,
		clock:     config.Clock,
		rec:       instrument.New(module, config.Name, config.Metrics, config.Logger),
	}, nil
}

// Wrap returns the debounced form of action as a plain function. A wait of
// zero is honoured as in New.
func Wrap[T any](action func(T), wait time.Duration, immediate bool) (func(T), error) {
	d, err := New(action, wait, immediate)
	if err != nil {
		return nil, err
	}
	return d.Call, nil
}

// WrapFunc debounces an action that takes no arguments.
func WrapFunc(action func(), wait time.Duration, immediate bool) (func(), error) {
	if err := validation.ValidateCallable(module, "action", action); err != nil {
		return nil, err
	}
	d, err := New(func(struct{}) { action() }, wait, immediate)
	if err != nil {
		return nil, err
	}
	return func() { d.Call(struct{}{}) }, nil
}

// NewDynamic debounces a function of any signature. The returned function
// forwards its arguments positionally to action.
func NewDynamic(action any, config Config) (func(args ...any), error) {
	if err := validation.ValidateCallable(module, "action", action); err != nil {
		return nil, err
	}
	call, err := invoke.Func(action)
	if err != nil {
		return nil, ckerrors.NewArgumentError(module, "action", action, err.Error())
	}
	d, err := NewWithConfig(func(args []any) { call(args...) }, config)
	if err != nil {
		return nil, err
	}
	return func(args ...any) { d.Call(args) }, nil
}

// Call registers a call with arg. In trailing mode the action runs with the
// most recent argument once Wait passes without another call. In leading mode
// the action runs now if no burst is in progress.
func (d *Debouncer[T]) Call(arg T) {
	d.rec.Call()

	d.mu.Lock()
	callNow := d.immediate && d.timer == nil
	superseded := d.timer != nil
	if superseded {
		d.timer.Stop()
		d.rec.Coalesced()
	}
	d.gen++
	gen := d.gen
	d.latest = arg
	d.timer = d.clock.AfterFunc(d.wait, func() { d.expire(gen) })
	d.rec.Pending(true)
	d.mu.Unlock()

	if superseded {
		d.rec.Logger().Debug("superseded pending timer")
	}
	d.rec.Logger().Debug("armed", zap.Duration("wait", d.wait))

	if callNow {
		d.invoke(arg, metrics.EdgeLeading)
	}
}

// Pending reports whether a quiet-period timer is armed.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// EnableMetrics enables metrics collection.
func (d *Debouncer[T]) EnableMetrics(config metrics.Config) error {
	return d.rec.EnableMetrics(config)
}

// DisableMetrics disables metrics collection.
func (d *Debouncer[T]) DisableMetrics() {
	d.rec.DisableMetrics()
}

// MetricsEnabled returns true if metrics are currently enabled.
func (d *Debouncer[T]) MetricsEnabled() bool {
	return d.rec.MetricsEnabled()
}

// expire runs when the quiet period of generation gen ends. A timer that was
// superseded after it started firing finds a newer generation and does nothing.
func (d *Debouncer[T]) expire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	arg := d.latest
	var zero T
	d.latest = zero
	d.rec.Pending(false)
	d.mu.Unlock()

	if d.immediate {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			d.rec.Panicked(ckerrors.PanicError(module, "trailing", r))
		}
	}()
	d.invoke(arg, metrics.EdgeTrailing)
}

func (d *Debouncer[T]) invoke(arg T, edge string) {
	d.rec.Fired(edge)
	start := time.Now()
	defer func() { d.rec.Observe(time.Since(start)) }()
	d.action(arg)
}
