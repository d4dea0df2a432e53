// Package metrics registers the domain Prometheus collectors.
//
// HTTP request metrics come from echoprometheus; everything here counts
// business outcomes and is exported on the same /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// ManifestsFinalizedTotal counts committed manifests.
var ManifestsFinalizedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "manifests_finalized_total",
		Help:      "Total number of manifests finalized.",
	},
)

// OverpacksManifestedTotal counts overpacks frozen by a manifest.
var OverpacksManifestedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "overpacks_manifested_total",
		Help:      "Total number of overpacks linked to a manifest.",
	},
)

// StateConflictsTotal counts rejected operations.
// Label:
//   - entity: shipment, overpack, manifest, order
var StateConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "state_conflicts_total",
		Help:      "Total number of operations rejected because of entity state.",
	},
	[]string{"entity"},
)

// OrderTransitionsTotal counts applied order status changes.
var OrderTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_transitions_total",
		Help:      "Total number of order status transitions.",
	},
	[]string{"from", "to"},
)

// OutboxRelayedTotal counts outbox messages handed to the broker.
var OutboxRelayedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "outbox_relayed_total",
		Help:      "Total number of outbox messages published.",
	},
)

// OutboxRelayErrorsTotal counts failed relay runs.
var OutboxRelayErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "outbox_relay_errors_total",
		Help:      "Total number of outbox relay runs that failed.",
	},
)

// OutboxRelayDuration observes one relay run end to end.
var OutboxRelayDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "outbox_relay_duration_seconds",
		Help:      "Duration of an outbox relay run.",
		Buckets:   prometheus.DefBuckets,
	},
)
