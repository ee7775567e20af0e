// Package metrics provides Prometheus metrics for measurement generation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager manages all Prometheus metrics for the generator.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	// Volume metrics
	rowsWritten       prometheus.Counter
	athletesProcessed prometheus.Counter
	anchorsComputed   prometheus.Counter

	// Model quality metrics - how often the guardrails fire
	anchorsEnforced prometheus.Counter
	anchorsClamped  prometheus.Counter
	trialsLimited   prometheus.Counter

	// Run metrics
	runDuration prometheus.Histogram
	rosterSize  prometheus.Gauge
	testDates   prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// Get returns the global metrics manager.
func Get() *Manager {
	return globalManager
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "combine",
		subsystem:        "generator",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rowsWritten = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_written_total",
		Help:      "Total number of measurement rows written",
	})

	m.athletesProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "athletes_processed_total",
		Help:      "Total number of roster entries processed",
	})

	m.anchorsComputed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "anchors_computed_total",
		Help:      "Total number of session anchors computed",
	})

	m.anchorsEnforced = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "anchors_enforced_total",
		Help:      "Total number of anchors capped by the progression constraint",
	})

	m.anchorsClamped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "anchors_clamped_total",
		Help:      "Total number of anchors clamped to a physiological bound",
	})

	m.trialsLimited = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trials_limited_total",
		Help:      "Total number of trials capped by the relaxed progression constraint",
	})

	m.runDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_duration_seconds",
		Help:      "Histogram of full generation run duration in seconds",
		Buckets:   m.histogramBuckets,
	})

	m.rosterSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_size",
		Help:      "Number of athletes in the current roster",
	})

	m.testDates = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "test_dates",
		Help:      "Number of test dates in the current run",
	})
}

// IncRowsWritten records written measurement rows.
func (m *Manager) IncRowsWritten(n int) {
	if !m.enabled {
		return
	}
	m.rowsWritten.Add(float64(n))
}

// IncAthletesProcessed records one processed roster entry.
func (m *Manager) IncAthletesProcessed() {
	if !m.enabled {
		return
	}
	m.athletesProcessed.Inc()
}

// IncAnchorsComputed records one computed session anchor.
func (m *Manager) IncAnchorsComputed() {
	if !m.enabled {
		return
	}
	m.anchorsComputed.Inc()
}

// IncAnchorsEnforced records an anchor capped by the progression constraint.
func (m *Manager) IncAnchorsEnforced() {
	if !m.enabled {
		return
	}
	m.anchorsEnforced.Inc()
}

// IncAnchorsClamped records an anchor clamped to a physiological bound.
func (m *Manager) IncAnchorsClamped() {
	if !m.enabled {
		return
	}
	m.anchorsClamped.Inc()
}

// IncTrialsLimited records a trial capped by the relaxed constraint.
func (m *Manager) IncTrialsLimited() {
	if !m.enabled {
		return
	}
	m.trialsLimited.Inc()
}

// ObserveRunDuration records a full generation run duration.
func (m *Manager) ObserveRunDuration(d time.Duration) {
	if !m.enabled {
		return
	}
	m.runDuration.Observe(d.Seconds())
}

// SetRosterSize records the roster size of the current run.
func (m *Manager) SetRosterSize(n int) {
	if !m.enabled {
		return
	}
	m.rosterSize.Set(float64(n))
}

// SetTestDates records the date count of the current run.
func (m *Manager) SetTestDates(n int) {
	if !m.enabled {
		return
	}
	m.testDates.Set(float64(n))
}

// Handler returns an HTTP handler exposing the manager's registry.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
