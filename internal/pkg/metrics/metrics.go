// Package metrics defines and registers all custom Prometheus metrics for the
// campus portal. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Session metrics ──────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "rejected"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created" or "taken"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Entity metrics ───────────────────────────────────────────────────────────

// EntityMutationsTotal counts create, update and delete calls against the
// entity stores.
// Labels:
//   - entity: "employee" or "student"
//   - op: "create", "update", "delete"
//   - result: "ok" or "miss"
var EntityMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_mutations_total",
		Help:      "Total number of entity store mutations.",
	},
	[]string{"entity", "op", "result"},
)

// ── Durable store metrics ────────────────────────────────────────────────────

// StoreOperationsTotal counts durable store calls.
// Labels:
//   - op: "get", "set", "delete"
//   - result: "ok", "not_found", "error", "open_circuit"
var StoreOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_operations_total",
		Help:      "Total number of durable store operations, by result.",
	},
	[]string{"op", "result"},
)

// StoreOperationDuration measures the latency of durable store calls.
// Label:
//   - op: "get", "set", "delete"
var StoreOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_operation_duration_seconds",
		Help:      "Duration of durable store operations.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// StoreCircuitState reports the durable store breaker state:
// 0 closed, 1 half-open, 2 open.
var StoreCircuitState = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "store_circuit_state",
		Help:      "Durable store circuit breaker state (0 closed, 1 half-open, 2 open).",
	},
)
