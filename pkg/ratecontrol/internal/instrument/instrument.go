// Package instrument carries the logging and metrics plumbing shared by the
// rate controllers.
package instrument

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vnykmshr/callkit/pkg/metrics"
)

// Recorder reports the activity of one wrapped-function instance. Metric
// updates are skipped while metrics are disabled; logging is always active
// and defaults to a no-op logger.
type Recorder struct {
	controller string
	name       string
	logger     *zap.Logger

	mu       sync.RWMutex
	registry *metrics.Registry
	enabled  bool

	// armedOn is the registry whose pending gauge this instance incremented,
	// or nil while the instance is not counted as pending.
	armedOn *metrics.Registry
}

// New creates a Recorder for the given controller kind and instance name.
func New(controller, name string, cfg metrics.Config, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Recorder{
		controller: controller,
		name:       name,
		logger: logger.With(
			zap.String("component", controller),
			zap.String("name", name),
			zap.String("instance", uuid.NewString()),
		),
	}
	if cfg.Enabled {
		r.registry = metrics.RegistryFor(cfg)
		r.enabled = true
	}
	return r
}

// Logger returns the instance logger.
func (r *Recorder) Logger() *zap.Logger {
	return r.logger
}

// Call counts an incoming call.
func (r *Recorder) Call() {
	if reg := r.active(); reg != nil {
		reg.CallsTotal.WithLabelValues(r.controller, r.name).Inc()
	}
}

// Fired counts an invocation of the wrapped action on the given edge.
func (r *Recorder) Fired(edge string) {
	r.logger.Debug("fired", zap.String("edge", edge))
	if reg := r.active(); reg != nil {
		reg.FiredTotal.WithLabelValues(r.controller, r.name, edge).Inc()
	}
}

// Coalesced counts a call absorbed without its own invocation.
func (r *Recorder) Coalesced() {
	if reg := r.active(); reg != nil {
		reg.CoalescedTotal.WithLabelValues(r.controller, r.name).Inc()
	}
}

// Pending records a transition of the instance's armed state. The pending
// gauge counts armed instances, so instances sharing a name add up instead of
// overwriting each other. Repeated calls with the same state are no-ops.
func (r *Recorder) Pending(armed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case armed && r.armedOn == nil && r.enabled && r.registry != nil:
		r.registry.Pending.WithLabelValues(r.controller, r.name).Inc()
		r.armedOn = r.registry
	case !armed && r.armedOn != nil:
		r.armedOn.Pending.WithLabelValues(r.controller, r.name).Dec()
		r.armedOn = nil
	}
}

// Panicked logs and counts a panic recovered from a timer-driven invocation.
func (r *Recorder) Panicked(err error) {
	r.logger.Error("recovered panic in wrapped action", zap.Error(err))
	if reg := r.active(); reg != nil {
		reg.PanicsTotal.WithLabelValues(r.controller, r.name).Inc()
	}
}

// Observe records how long the wrapped action ran.
func (r *Recorder) Observe(d time.Duration) {
	if reg := r.active(); reg != nil {
		reg.ActionDuration.WithLabelValues(r.controller, r.name).Observe(d.Seconds())
	}
}

// EnableMetrics enables metrics collection.
func (r *Recorder) EnableMetrics(cfg metrics.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.enabled = cfg.Enabled
	if cfg.Registry != nil || r.registry == nil {
		r.registry = metrics.RegistryFor(cfg)
	}
	return nil
}

// DisableMetrics disables metrics collection.
func (r *Recorder) DisableMetrics() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (r *Recorder) MetricsEnabled() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enabled
}

func (r *Recorder) active() *metrics.Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.enabled {
		return nil
	}
	return r.registry
}
