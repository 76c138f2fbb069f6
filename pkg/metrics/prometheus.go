package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	RowsReturned  *prometheus.HistogramVec
	ErrorsCount   *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics registered on reg.
// Pass prometheus.DefaultRegisterer to expose them through promhttp.Handler.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		QueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flight_queries_total",
			Help:      "The total number of flight lookups by operation and status",
		}, []string{"operation", "status"}),
		QueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "flight_query_duration_seconds",
			Help:      "Time taken to run flight lookups",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		RowsReturned: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "flight_query_rows",
			Help:      "Number of flight records returned per lookup",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"operation"}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
