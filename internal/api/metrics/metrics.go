// Package metrics defines and registers all custom Prometheus metrics for the
// investor CRM API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry via promauto at
// package init, before the HTTP server starts.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "investorcrm"

// ── Outreach event metrics ────────────────────────────────────────────────────

// OutreachEventsProcessedTotal counts contact events that completed processing.
// Labels:
//   - status: the new outreach status applied by the event (e.g. "contacted")
//   - source: the event source reported by the sender (e.g. "gmail_sync")
var OutreachEventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "outreach_events_processed_total",
		Help:      "Total number of contact events successfully processed.",
	},
	[]string{"status", "source"},
)

// OutreachEventsErrorsTotal counts contact events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "invalid_transition", "investor_not_found", "update_failed")
var OutreachEventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "outreach_events_errors_total",
		Help:      "Total number of contact events that failed processing.",
	},
	[]string{"reason"},
)

// OutreachDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new event, processed)
var OutreachDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "outreach_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// OutreachQueueDepth tracks the current number of contact events waiting in
// each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var OutreachQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "outreach_queue_depth",
		Help:      "Current number of contact events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// OutreachProcessingDuration measures how long a single contact event takes to
// process end-to-end.
// Label:
//   - status: the resulting outreach status
var OutreachProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "outreach_processing_duration_seconds",
		Help:      "Duration of contact event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"status"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts account creations.
// Label:
//   - role: "founder" or "fundraisingPro"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// ── Investor metrics ──────────────────────────────────────────────────────────

// InvestorsCreatedTotal counts newly created investor records.
var InvestorsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "investors_created_total",
		Help:      "Total number of investor records created.",
	},
)
