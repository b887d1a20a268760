// Package metrics exposes Prometheus instruments for the trash lifecycle and
// the auto-delete scheduler.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "officehub"

// TrashMetrics tracks manual lifecycle actions.
//
// Metrics:
//   - officehub_trash_actions_total{action,item_type}
//   - officehub_trash_orphans_total{action}: records removed because the
//     entity was already gone
type TrashMetrics struct {
	actionsTotal *prometheus.CounterVec
	orphansTotal *prometheus.CounterVec
}

// SchedulerMetrics tracks auto-delete runs.
//
// Metrics:
//   - officehub_auto_delete_runs_total{outcome}
//   - officehub_auto_delete_purged_total
//   - officehub_auto_delete_failures_total
//   - officehub_auto_delete_run_duration_seconds
//   - officehub_auto_delete_last_run_timestamp_seconds
type SchedulerMetrics struct {
	runsTotal     *prometheus.CounterVec
	purgedTotal   prometheus.Counter
	failuresTotal prometheus.Counter
	runDuration   prometheus.Histogram
	lastRun       prometheus.Gauge
}

type Registry struct {
	registry  *prometheus.Registry
	Trash     *TrashMetrics
	Scheduler *SchedulerMetrics
}

// New registers every instrument on a fresh registry, plus the Go runtime
// and process collectors.
func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Registry{
		registry:  reg,
		Trash:     NewTrashMetrics(reg),
		Scheduler: NewSchedulerMetrics(reg),
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}

func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

func NewTrashMetrics(reg prometheus.Registerer) *TrashMetrics {
	m := &TrashMetrics{
		actionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "trash",
				Name:      "actions_total",
				Help:      "Trash lifecycle actions by action and item type",
			},
			[]string{"action", "item_type"},
		),
		orphansTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "trash",
				Name:      "orphans_total",
				Help:      "Trash records removed because their entity no longer exists",
			},
			[]string{"action"},
		),
	}
	reg.MustRegister(m.actionsTotal, m.orphansTotal)
	return m
}

// Nil receivers are no-ops so services can run without metrics.

func (m *TrashMetrics) RecordAction(action, itemType string) {
	if m == nil {
		return
	}
	m.actionsTotal.WithLabelValues(action, itemType).Inc()
}

func (m *TrashMetrics) RecordOrphan(action string) {
	if m == nil {
		return
	}
	m.orphansTotal.WithLabelValues(action).Inc()
}

func NewSchedulerMetrics(reg prometheus.Registerer) *SchedulerMetrics {
	m := &SchedulerMetrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "auto_delete",
				Name:      "runs_total",
				Help:      "Auto-delete runs by outcome (completed, skipped_locked)",
			},
			[]string{"outcome"},
		),
		purgedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auto_delete",
			Name:      "purged_total",
			Help:      "Items permanently deleted by the scheduler",
		}),
		failuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auto_delete",
			Name:      "failures_total",
			Help:      "Items or users the scheduler failed to process",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "auto_delete",
			Name:      "run_duration_seconds",
			Help:      "Wall time of one auto-delete run",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 5, 15, 60, 300},
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "auto_delete",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last auto-delete run finished",
		}),
	}
	reg.MustRegister(m.runsTotal, m.purgedTotal, m.failuresTotal, m.runDuration, m.lastRun)
	return m
}

func (m *SchedulerMetrics) RecordRun(started time.Time, purged, failures int) {
	if m == nil {
		return
	}
	m.runsTotal.WithLabelValues("completed").Inc()
	m.purgedTotal.Add(float64(purged))
	m.failuresTotal.Add(float64(failures))
	m.runDuration.Observe(time.Since(started).Seconds())
	m.lastRun.SetToCurrentTime()
}

func (m *SchedulerMetrics) RecordSkipped(reason string) {
	if m == nil {
		return
	}
	m.runsTotal.WithLabelValues(reason).Inc()
}
