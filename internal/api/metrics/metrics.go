// Package metrics defines all custom Prometheus metrics for the identity API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Call Register with the router's registry once at startup, before the HTTP
// server starts serving /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "identity"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "duplicate", or "invalid"
var RegistrationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests the authorization guard turned away
// before they reached a handler.
// Label:
//   - reason: "unauthenticated" or "forbidden"
var AuthRejectionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the authorization guard.",
	},
	[]string{"reason"},
)

// Register attaches every metric to the given registry. A collector may be
// registered with several registries, so routers built side by side in tests
// each get a clean registry without colliding.
func Register(r prometheus.Registerer) {
	r.MustRegister(RegistrationsTotal, LoginsTotal, AuthRejectionsTotal)
}
