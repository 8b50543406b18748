package syncer

import "github.com/prometheus/client_golang/prometheus"

var syncState = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "budget_tracker_sync_state",
		Help: "Synchronization state of the last written collection: 0 local, 1 syncing, 2 synced.",
	},
	[]string{"collection"},
)

var remoteFailures = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "budget_tracker_sync_remote_failures_total",
		Help: "How many remote store calls failed, partitioned by collection and operation.",
	},
	[]string{"collection", "operation"},
)

var corruptValues = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "budget_tracker_storage_corrupt_total",
		Help: "How many locally cached values could not be decoded.",
	},
	[]string{"collection"},
)

var migrationsApplied = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "budget_tracker_migrations_applied_total",
		Help: "How many one-shot data migrations have been applied.",
	},
)

// Collectors returns the Prometheus metrics of the sync engine so that they
// can be registered with a registry.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		syncState,
		remoteFailures,
		corruptValues,
		migrationsApplied,
	}
}
