// Package metrics defines and registers the custom Prometheus metrics for the
// Agrinova API. It is the single source of truth for metric names, labels, and
// help strings.
//
// All metrics are registered with the default registry on package load.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agrinova"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or the error kind (e.g. "invalid_credentials", "throttled")
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsCreatedTotal counts sessions issued by successful logins.
var SessionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Total number of sessions created.",
	},
)

// LogoutsTotal counts successful logouts, including ones without a session.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of completed logouts.",
	},
)

// RegistrationsTotal counts signup attempts.
// Label:
//   - result: "success", "conflict", "validation" or "internal"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts outbound calls to third-party services.
// Labels:
//   - feature: the dashboard feature (e.g. "weather", "ai_assistant")
//   - result: "success" or "error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of outbound third-party calls, by feature and result.",
	},
	[]string{"feature", "result"},
)

// UpstreamDuration measures outbound call latency, including time spent
// waiting for an in-flight slot.
var UpstreamDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_duration_seconds",
		Help:      "Duration of outbound third-party calls.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30},
	},
	[]string{"feature"},
)

// ObserveUpstream records one outbound call. Its signature matches
// upstream.Observer.
func ObserveUpstream(feature, result string, elapsed time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(feature, result).Inc()
	UpstreamDuration.WithLabelValues(feature).Observe(elapsed.Seconds())
}
