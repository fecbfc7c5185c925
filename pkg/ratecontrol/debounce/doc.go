/*
Package debounce delays invocations of a function until calls stop arriving.

A debounced function waits for a quiet period of Wait after the most recent
call before running the wrapped action, so a burst of calls collapses into a
single invocation carrying the last argument of the burst.

Basic usage:

	search, err := debounce.Wrap(func(q string) {
		runQuery(q)
	}, 300*time.Millisecond, false)
	if err != nil {
		log.Fatal(err)
	}

	search("g")
	search("go")
	search("gop") // runQuery("gop") runs 300ms after this call

Leading Edge:

With Immediate set, the action runs synchronously on the first call of a
burst and is suppressed until Wait has passed without any call:

	save, _ := debounce.Wrap(persist, time.Second, true)
	save(doc) // persist(doc) runs now
	save(doc) // ignored, and the quiet period restarts

Dynamic Signatures:

NewDynamic wraps a function of any signature and forwards arguments
positionally:

	log, _ := debounce.NewDynamic(func(level string, n int) { ... }, debounce.DefaultConfig())
	log("info", 3)

Configuration Options:

	config := debounce.Config{
		Wait:      200 * time.Millisecond,
		Immediate: false,
		Clock:     clock,  // Custom time source (for testing)
		Name:      "search",
		Metrics:   metrics.Config{Enabled: true},
		Logger:    logger, // *zap.Logger
	}
	d, err := debounce.NewWithConfig(action, config)

Each instance keeps its own timer. Two wrappers built from the same action
never share state. There is no cancellation: a pending invocation always
runs unless a later call supersedes it.

Thread Safety:

A Debouncer is safe for concurrent use. The action always runs outside the
instance lock, so it may call its own wrapper again.

Panics:

A panic raised by a leading-edge invocation propagates to the caller. A panic
raised by a trailing invocation runs on a timer goroutine; it is recovered,
logged at error level and counted in the panics metric.
*/
package debounce
