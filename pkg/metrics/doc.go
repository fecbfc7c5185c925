// Package metrics provides Prometheus instrumentation for callkit components.
//
// The debounce and throttle wrappers report how many calls they receive, how
// many of those reach the wrapped action, and how many are absorbed by the
// rate-control policy.
//
// # Quick Start
//
// Enable metrics through the wrapper configuration:
//
//	cfg := debounce.DefaultConfig()
//	cfg.Name = "search"
//	cfg.Metrics = metrics.Config{Enabled: true, Registry: prometheus.DefaultRegisterer}
//	search, _ := debounce.NewWithConfig(runQuery, cfg)
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Available Metrics
//
//   - callkit_ratecontrol_calls_total: Calls made to wrapped functions
//   - callkit_ratecontrol_fired_total: Invocations of the wrapped action, by edge
//   - callkit_ratecontrol_coalesced_total: Calls absorbed without their own invocation
//   - callkit_ratecontrol_panics_total: Recovered panics from timer-driven invocations
//   - callkit_ratecontrol_pending: 1 while a timer is armed
//   - callkit_ratecontrol_action_duration_seconds: Time spent in the wrapped action
//
// # Labels
//
//   - controller: "debounce" or "throttle"
//   - name: User-provided name for the wrapper instance
//   - edge: "leading" or "trailing" (fired_total only)
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation. Wrappers configured with
// the same registerer share one Registry:
//
//	registry := prometheus.NewRegistry()
//	cfg := throttle.DefaultConfig()
//	cfg.Metrics = metrics.Config{Enabled: true, Registry: registry, Namespace: "myapp"}
//
// # Runtime Control
//
// Wrappers implement Instrumentable:
//
//	d.DisableMetrics()
//	d.EnableMetrics(cfg)
//	enabled := d.MetricsEnabled()
package metrics
