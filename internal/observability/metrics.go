// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Pipeline metrics
	BatchesTransformed prometheus.Counter
	RecordsNormalized  prometheus.Counter
	RecordsDropped     prometheus.Counter
	InvalidBatches     prometheus.Counter
	TransformDuration  prometheus.Histogram

	// Provider metrics
	ProviderRequests *prometheus.CounterVec
	ProviderErrors   *prometheus.CounterVec
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter

	// Health metrics
	LastSuccessfulRefresh prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "stablecoin_view"
	}

	return &Metrics{
		BatchesTransformed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "batches_transformed_total",
			Help:      "Total number of batches transformed",
		}),
		RecordsNormalized: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "records_normalized_total",
			Help:      "Total number of records normalized into canonical form",
		}),
		RecordsDropped: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "records_dropped_total",
			Help:      "Total number of malformed records dropped",
		}),
		InvalidBatches: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "invalid_batches_total",
			Help:      "Total number of non-sequence batches treated as reset",
		}),
		TransformDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "transform_duration_seconds",
			Help:      "Batch transformation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		ProviderRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "requests_total",
			Help:      "Total number of successful provider requests by endpoint",
		}, []string{"endpoint"}),
		ProviderErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "errors_total",
			Help:      "Total number of failed provider requests by endpoint",
		}, []string{"endpoint"}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "cache_hits_total",
			Help:      "Total number of provider cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "cache_misses_total",
			Help:      "Total number of provider cache misses",
		}),

		LastSuccessfulRefresh: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "last_successful_refresh_timestamp",
			Help:      "Unix timestamp of last successful view model refresh",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordTransform records the outcome of one batch transformation.
func RecordTransform(kept, dropped int, durationSeconds float64) {
	DefaultMetrics.BatchesTransformed.Inc()
	DefaultMetrics.RecordsNormalized.Add(float64(kept))
	DefaultMetrics.RecordsDropped.Add(float64(dropped))
	DefaultMetrics.TransformDuration.Observe(durationSeconds)
}

// RecordInvalidBatch increments the invalid batch counter.
func RecordInvalidBatch() {
	DefaultMetrics.InvalidBatches.Inc()
}
