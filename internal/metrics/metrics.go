// Package metrics publishes the engine's cost observables (latency, families scanned and
// excluded, rows scanned) as Prometheus collectors on a private registry.
package metrics

import (
	"github.com/litetable/litetable-analytics/internal/litetable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"time"
)

const namespace = "litetable"

// Recorder owns the collectors. Every Recorder has its own registry so tests and multiple
// engines in one process do not collide on registration.
type Recorder struct {
	registry *prometheus.Registry

	inserts          *prometheus.CounterVec
	queryDuration    *prometheus.HistogramVec
	familiesScanned  *prometheus.GaugeVec
	familiesExcluded *prometheus.GaugeVec
	rowsScanned      *prometheus.CounterVec
}

// New creates a Recorder and registers its collectors plus the Go runtime collectors.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		inserts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "inserts_total",
				Help:      "Logical row inserts, by result.",
			},
			[]string{"result"},
		),
		queryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "query_duration_seconds",
				Help:      "Wall clock duration of engine operations.",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"operation"},
		),
		familiesScanned: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "families_scanned",
				Help:      "Column families read by the most recent query.",
			},
			[]string{"operation"},
		),
		familiesExcluded: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "families_excluded",
				Help:      "Column families skipped by the most recent query.",
			},
			[]string{"operation"},
		),
		rowsScanned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rows_scanned_total",
				Help:      "Row keys visited by queries.",
			},
			[]string{"operation"},
		),
	}

	r.registry.MustRegister(
		r.inserts,
		r.queryDuration,
		r.familiesScanned,
		r.familiesExcluded,
		r.rowsScanned,
		collectors.NewGoCollector(),
	)
	return r
}

// Registry exposes the registry for the HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveInsert counts a single insert attempt.
func (r *Recorder) ObserveInsert(ok bool, elapsed time.Duration) {
	result := "ok"
	if !ok {
		result = "error"
	}
	r.inserts.WithLabelValues(result).Inc()
	r.queryDuration.WithLabelValues(litetable.OperationInsert.String()).Observe(elapsed.Seconds())
}

// ObserveScan records the cost of a projection or aggregation.
func (r *Recorder) ObserveScan(op litetable.Operation, elapsed time.Duration, scanned, total,
	rows int) {
	label := op.String()
	r.queryDuration.WithLabelValues(label).Observe(elapsed.Seconds())
	r.familiesScanned.WithLabelValues(label).Set(float64(scanned))
	r.familiesExcluded.WithLabelValues(label).Set(float64(total - scanned))
	r.rowsScanned.WithLabelValues(label).Add(float64(rows))
}
