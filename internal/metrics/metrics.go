// metrics — счётчики и гистограммы Prometheus планировщика.
// Векторы создаются при старте пакета, регистрируются один раз через MustRegister.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "planner"

var (
	// AuthRefreshTotal — исходы refresh: ok, invalid, expired, reuse_detected, error.
	AuthRefreshTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_refresh_total",
			Help:      "Refresh token redemption attempts by result.",
		},
		[]string{"result"},
	)

	AuthLoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_logins_total",
			Help:      "Identity provider logins by result.",
		},
		[]string{"result"},
	)

	PushDeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_deliveries_total",
			Help:      "Per-device push send attempts by result (ok, rejected, unregistered, transport).",
		},
		[]string{"result"},
	)

	DispatchBatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_batches_total",
			Help:      "Outbox dispatcher batches by result.",
		},
		[]string{"result"},
	)

	DispatchEntriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_entries_total",
			Help:      "Outbox entries processed by outcome (sent, failed, skipped).",
		},
		[]string{"outcome"},
	)

	CleanupPrunedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cleanup_pruned_total",
			Help:      "Rows deleted by the cleanup scheduler.",
		},
		[]string{"table"},
	)

	CleanupFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cleanup_failures_total",
			Help:      "Failed cleanup steps.",
		},
		[]string{"table"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// MustRegister регистрирует все метрики в регистре по умолчанию.
func MustRegister() {
	prometheus.MustRegister(
		AuthRefreshTotal,
		AuthLoginsTotal,
		PushDeliveriesTotal,
		DispatchBatchesTotal,
		DispatchEntriesTotal,
		CleanupPrunedTotal,
		CleanupFailuresTotal,
		HTTPRequestDuration,
	)
}
