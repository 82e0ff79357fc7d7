// Package metrics defines and registers all custom Prometheus metrics for the
// timesheet service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at init; the router exposes them
// on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timesheet"

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsStartedTotal counts session starts, including sessions resumed from
// a persisted marker at boot (label source: "start" or "resume").
var SessionsStartedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_started_total",
		Help:      "Total number of timer sessions entered into the running state.",
	},
	[]string{"source"},
)

// SessionsCompletedTotal counts sessions stopped and persisted as records.
var SessionsCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_completed_total",
		Help:      "Total number of timer sessions stopped and recorded.",
	},
)

// SessionDurationSeconds measures the length of completed sessions.
var SessionDurationSeconds = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "session_duration_seconds",
		Help:      "Duration of completed timer sessions.",
		Buckets:   prometheus.ExponentialBuckets(60, 2, 10), // 1m .. ~8.5h
	},
)

// SessionElapsedSeconds tracks the live elapsed time of the running session.
// Zero while idle.
var SessionElapsedSeconds = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "session_elapsed_seconds",
		Help:      "Elapsed time of the currently running session, zero when idle.",
	},
)

// ── Record metrics ────────────────────────────────────────────────────────────

// RecordsEditedTotal counts successful record interval edits.
var RecordsEditedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_edited_total",
		Help:      "Total number of records whose interval was rewritten.",
	},
)

// RecordsDeletedTotal counts confirmed record deletions.
var RecordsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_deleted_total",
		Help:      "Total number of records deleted.",
	},
)

// ReportsGeneratedTotal counts rendered timesheet exports.
var ReportsGeneratedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Total number of timesheet PDF reports rendered.",
	},
)
