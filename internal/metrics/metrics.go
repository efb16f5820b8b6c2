// metrics — прометеевские счётчики пайплайна синхронизации.
// Регистрация в DefaultRegisterer; отдаются promhttp-хендлером на /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SyncTotal — число попыток синхронизации подписок по исходу.
	SyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "readflow_feed_sync_total",
		Help: "Feed sync attempts by outcome.",
	}, []string{"outcome"})

	// ItemsInserted — суммарное число вставленных записей.
	ItemsInserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "readflow_feed_items_inserted_total",
		Help: "Feed items inserted into storage.",
	})

	// SyncDuration — длительность одной синхронизации (загрузка + разбор + вставка).
	SyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "readflow_feed_sync_duration_seconds",
		Help:    "Duration of a single feed sync.",
		Buckets: prometheus.DefBuckets,
	})
)

// Исходы синхронизации для SyncTotal.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
