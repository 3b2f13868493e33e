// Package metrics defines and registers all custom Prometheus metrics for the
// Thaalam admin API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "thaalam"

// ── Resource metrics ──────────────────────────────────────────────────────────

// ListQueriesTotal counts list fetches per module.
var ListQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_queries_total",
		Help:      "Total number of list queries served, by module.",
	},
	[]string{"module"},
)

// RecordsMutatedTotal counts create/update/delete operations per module.
var RecordsMutatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_mutated_total",
		Help:      "Total number of record mutations, by module and action.",
	},
	[]string{"module", "action"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "denied"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Media metrics ─────────────────────────────────────────────────────────────

// UploadsTotal counts accepted file uploads.
// Label:
//   - kind: "image", "document", "audio", or "video"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of accepted uploads, by media kind.",
	},
	[]string{"kind"},
)

// MediaJobsTotal counts queued media processing jobs by outcome.
// Label:
//   - result: "ok" or "error"
var MediaJobsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_jobs_total",
		Help:      "Total number of media processing jobs, by result.",
	},
	[]string{"result"},
)

// MediaProcessingDuration measures how long a media job takes from dequeue to
// persistence.
var MediaProcessingDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "media_processing_duration_seconds",
		Help:      "Duration of media processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
)
