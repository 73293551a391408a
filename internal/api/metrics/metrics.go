// Package metrics defines the custom Prometheus metrics for the TrackRig
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "trackrig"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "throttled", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "email_taken", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts bearer tokens rejected by the authenticator.
// The reason label is internal observability only; clients always see a
// plain 401.
// Label:
//   - reason: "expired", "bad_signature", "malformed", or "unknown_subject"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of rejected bearer tokens, by internal reason.",
	},
	[]string{"reason"},
)

// InventoryWritesTotal counts mutations on inventory entities.
// Labels:
//   - entity: "component", "workstation", or "maintenance_log"
//   - op: "create", "update", or "delete"
var InventoryWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inventory_writes_total",
		Help:      "Total number of inventory write operations, by entity and operation.",
	},
	[]string{"entity", "op"},
)
