package metrics

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace is the metric namespace used when none is configured.
const DefaultNamespace = "callkit"

// Edge labels for FiredTotal.
const (
	EdgeLeading  = "leading"
	EdgeTrailing = "trailing"
)

// Registry holds all metric instances for the rate controllers.
type Registry struct {
	CallsTotal     *prometheus.CounterVec
	FiredTotal     *prometheus.CounterVec
	CoalescedTotal *prometheus.CounterVec
	PanicsTotal    *prometheus.CounterVec
	Pending        *prometheus.GaugeVec
	ActionDuration *prometheus.HistogramVec
}

// DefaultRegistry is the default metrics registry used by callkit components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return NewRegistryWithConfig(Config{Registry: reg})
}

// NewRegistryWithConfig creates a metrics registry honouring the namespace
// and constant labels of cfg. A nil cfg.Registry registers nothing, which is
// useful when the caller only wants to inspect values.
func NewRegistryWithConfig(cfg Config) *Registry {
	factory := promauto.With(cfg.Registry)

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}
	labels := []string{"controller", "name"}

	return &Registry{
		CallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "ratecontrol",
				Name:        "calls_total",
				Help:        "Total number of calls made to wrapped functions",
				ConstLabels: cfg.Labels,
			},
			labels,
		),

		FiredTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "ratecontrol",
				Name:        "fired_total",
				Help:        "Total number of times the wrapped action was invoked",
				ConstLabels: cfg.Labels,
			},
			append(labels, "edge"),
		),

		CoalescedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "ratecontrol",
				Name:        "coalesced_total",
				Help:        "Total number of calls absorbed without their own invocation",
				ConstLabels: cfg.Labels,
			},
			labels,
		),

		PanicsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "ratecontrol",
				Name:        "panics_total",
				Help:        "Total number of recovered panics from timer-driven invocations",
				ConstLabels: cfg.Labels,
			},
			labels,
		),

		Pending: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Subsystem:   "ratecontrol",
				Name:        "pending",
				Help:        "Whether a timer is currently armed (1) or not (0)",
				ConstLabels: cfg.Labels,
			},
			labels,
		),

		ActionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   namespace,
				Subsystem:   "ratecontrol",
				Name:        "action_duration_seconds",
				Help:        "Time spent running the wrapped action",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: cfg.Labels,
			},
			labels,
		),
	}
}

type registryKey struct {
	reg       prometheus.Registerer
	namespace string
	labels    string
}

var (
	registriesMu sync.Mutex
	registries   = map[registryKey]*Registry{}
)

// RegistryFor returns the Registry for cfg, creating and registering it on
// first use. Configs with the same registerer, namespace and constant labels
// share one Registry, so metrics are registered exactly once. A nil
// registerer means the default registerer; with the default namespace and no
// constant labels it resolves to DefaultRegistry.
//
// Registries on one registerer and namespace must use the same constant
// label names (values may differ); Prometheus rejects inconsistent label
// names and registration panics.
func RegistryFor(cfg Config) *Registry {
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}
	if cfg.Registry == prometheus.DefaultRegisterer && cfg.Namespace == DefaultNamespace && len(cfg.Labels) == 0 {
		return DefaultRegistry
	}

	registriesMu.Lock()
	defer registriesMu.Unlock()

	key := registryKey{reg: cfg.Registry, namespace: cfg.Namespace, labels: labelKey(cfg.Labels)}
	if r, ok := registries[key]; ok {
		return r
	}
	r := NewRegistryWithConfig(cfg)
	registries[key] = r
	return r
}

func labelKey(labels prometheus.Labels) string {
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%q=%q,", name, labels[name])
	}
	return b.String()
}
