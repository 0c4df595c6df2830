package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeFiltered     = "filtered"
	OutcomeUnknownValue = "unknown_value"
	OutcomeCacheHit     = "cache_hit"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hr_dashboard_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	callbackInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hr_dashboard_callback_invocations_total",
		Help: "Number of dropdown callback invocations",
	}, []string{"control", "outcome"})

	cacheErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hr_dashboard_figure_cache_errors_total",
		Help: "Number of failed figure cache operations",
	}, []string{"op"})

	datasetRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hr_dashboard_dataset_rows",
		Help: "Number of employee rows loaded at startup",
	})
)

func ObserveRequest(method, route string, status int, d time.Duration) {
	httpRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

func IncCallback(control, outcome string) {
	callbackInvocations.WithLabelValues(control, outcome).Inc()
}

func IncCacheError(op string) {
	cacheErrors.WithLabelValues(op).Inc()
}

func SetDatasetRows(n int) {
	datasetRows.Set(float64(n))
}
