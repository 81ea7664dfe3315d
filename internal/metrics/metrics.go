// Package metrics provides Prometheus metrics for bikeshare queries.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StageDuration measures each query stage (load, derive, filter, aggregate.*, paginate)
	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bikeshare",
			Name:      "stage_duration_seconds",
			Help:      "Duration of query stages in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"stage"},
	)

	// StageRecords observes how many rows a stage processed
	StageRecords = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bikeshare",
			Name:      "stage_records",
			Help:      "Rows processed per query stage",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 7),
		},
		[]string{"stage"},
	)

	// QueriesTotal counts queries by city and outcome (ok, empty, error)
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bikeshare",
			Name:      "queries_total",
			Help:      "Total number of stat queries",
		},
		[]string{"city", "outcome"},
	)

	// DatasetCacheTotal counts dataset cache lookups
	DatasetCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bikeshare",
			Name:      "dataset_cache_total",
			Help:      "Dataset cache lookups by result",
		},
		[]string{"result"},
	)
)

// RecordStage records one finished stage
func RecordStage(stage string, duration time.Duration, records int64) {
	StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
	StageRecords.WithLabelValues(stage).Observe(float64(records))
}

// RecordQuery records a query outcome
func RecordQuery(city, outcome string) {
	QueriesTotal.WithLabelValues(city, outcome).Inc()
}

// RecordCacheLookup records a dataset cache hit or miss
func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	DatasetCacheTotal.WithLabelValues(result).Inc()
}
