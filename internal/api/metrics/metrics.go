// Package metrics defines and registers all custom Prometheus metrics for the
// car-wash front-end shell. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry via promauto at package
// initialisation; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "carwash_ui"

// ── Gateway metrics ───────────────────────────────────────────────────────────

// GatewayRequestsTotal counts outbound backend requests.
// Labels:
//   - method: HTTP method of the outbound request
//   - outcome: "ok", "soft_failure" (success=false on 2xx), "http_error",
//     "auth_error" (401/403) or "transport_error"
var GatewayRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_requests_total",
		Help:      "Total number of outbound backend requests, by method and outcome.",
	},
	[]string{"method", "outcome"},
)

// GatewayRequestDuration measures outbound request latency from dispatch to
// envelope decode.
// Label:
//   - method: HTTP method of the outbound request
var GatewayRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "gateway_request_duration_seconds",
		Help:      "Duration of outbound backend requests.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"method"},
)

// ForcedLogoutsTotal counts sessions ended by the 401/403 forced-logout policy.
var ForcedLogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forced_logouts_total",
		Help:      "Total number of sessions ended because the backend answered 401 or 403.",
	},
)

// ── Wizard metrics ────────────────────────────────────────────────────────────

// WizardSearchesTotal counts debounced customer searches actually dispatched
// by the subscription wizard (after debouncing, not per keystroke).
var WizardSearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wizard_searches_total",
		Help:      "Total number of customer search queries dispatched by the subscription wizard.",
	},
)

// WizardSubmissionsTotal counts wizard submissions.
// Label:
//   - result: "ok" or "error"
var WizardSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wizard_submissions_total",
		Help:      "Total number of subscription wizard submissions, by result.",
	},
	[]string{"result"},
)
