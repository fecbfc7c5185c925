/*
Package throttle limits how often a function runs.

A throttled function runs the wrapped action at most once per Wait. The first
call runs immediately. A call arriving inside the window arms a single
trailing invocation for the moment the window ends; further calls in the same
window are dropped.

Basic usage:

	onScroll, err := throttle.Wrap(func(y int) {
		updateHeader(y)
	}, 100*time.Millisecond)
	if err != nil {
		log.Fatal(err)
	}

	for y := range positions {
		onScroll(y)
	}

Trailing Arguments:

The trailing invocation receives the argument of the call that armed it, not
the most recent call. Calls dropped while the timer is armed do not refresh
it.

Configuration Options:

	config := throttle.Config{
		Wait:    100 * time.Millisecond,
		Clock:   clock,  // Custom time source (for testing)
		Name:    "scroll",
		Metrics: metrics.Config{Enabled: true},
		Logger:  logger, // *zap.Logger
	}
	t, err := throttle.NewWithConfig(action, config)

A Throttler is safe for concurrent use and each instance keeps its own timer
and last-fire time. Panics follow the same rules as package debounce:
synchronous invocations propagate them, trailing invocations recover and log
them.
*/
package throttle
