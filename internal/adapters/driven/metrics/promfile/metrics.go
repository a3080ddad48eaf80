// Package promfile collects run metrics with Prometheus and writes them in
// the text exposition format, for node_exporter's textfile collector.
package promfile

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/custodia-labs/evship/internal/core/ports/driven"
)

// Ensure Metrics implements the interface.
var _ driven.RunMetrics = (*Metrics)(nil)

// Metrics holds per-source run counters in a private registry.
type Metrics struct {
	path     string
	registry *prometheus.Registry
	now      func() time.Time

	counters map[string]*prometheus.CounterVec
	lastRun  prometheus.Gauge
}

// New creates a metrics collector that flushes to path.
// An empty path keeps metrics in memory only.
func New(path string) *Metrics {
	counters := map[string]*prometheus.CounterVec{
		"evship_records_fetched_total": prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "evship_records_fetched_total",
			Help: "Event log records resolved from source databases.",
		}, []string{"source"}),
		"evship_records_delivered_total": prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "evship_records_delivered_total",
			Help: "Records accepted by the index.",
		}, []string{"source"}),
		"evship_records_failed_total": prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "evship_records_failed_total",
			Help: "Records rejected by the index with a non-2xx response.",
		}, []string{"source"}),
		"evship_source_errors_total": prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "evship_source_errors_total",
			Help: "Sources aborted by a connection, fetch or transport error.",
		}, []string{"source"}),
		"evship_sources_skipped_total": prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "evship_sources_skipped_total",
			Help: "Sources skipped because the database file was absent.",
		}, []string{"source"}),
	}
	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "evship_last_run_timestamp_seconds",
		Help: "Unix time the last run finished.",
	})

	registry := prometheus.NewRegistry()
	for _, c := range counters {
		registry.MustRegister(c)
	}
	registry.MustRegister(lastRun)

	return &Metrics{
		path:     path,
		registry: registry,
		now:      time.Now,
		counters: counters,
		lastRun:  lastRun,
	}
}

// ObserveSource records the outcome of one processed source.
func (m *Metrics) ObserveSource(source string, fetched, delivered, failed int, err error) {
	m.add("evship_records_fetched_total", source, fetched)
	m.add("evship_records_delivered_total", source, delivered)
	m.add("evship_records_failed_total", source, failed)
	if err != nil {
		m.add("evship_source_errors_total", source, 1)
	}
}

// SourceSkipped records a source whose database is absent.
func (m *Metrics) SourceSkipped(source string) {
	m.add("evship_sources_skipped_total", source, 1)
}

func (m *Metrics) add(name, source string, v int) {
	if c, ok := m.counters[name]; ok {
		c.WithLabelValues(source).Add(float64(v))
	}
}

// Flush stamps the run time and writes the textfile if a path is set.
func (m *Metrics) Flush() error {
	m.lastRun.Set(float64(m.now().Unix()))
	if m.path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(m.path, m.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}

// Path returns the textfile location, empty when disabled.
func (m *Metrics) Path() string {
	return m.path
}
