// Package metrics holds the Prometheus instrumentation for the query
// interpretation pipeline and the HTTP surface.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recognizer and pipeline metrics.
var (
	RecognizerRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "immich_search",
			Name:      "recognizer_requests_total",
			Help:      "Total number of entity recognizer requests",
		},
		[]string{"provider", "model", "status"},
	)

	RecognizerRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "immich_search",
			Name:      "recognizer_request_duration_seconds",
			Help:      "Entity recognizer request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "model"},
	)

	RecognizerErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "immich_search",
			Name:      "recognizer_errors_total",
			Help:      "Total entity recognizer errors",
		},
		[]string{"provider", "model", "error_type"},
	)

	SpanCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "immich_search",
			Name:      "span_cache_total",
			Help:      "Recognizer span cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	FiltersExtractedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "immich_search",
			Name:      "filters_extracted_total",
			Help:      "Structured filters extracted from queries, by filter kind",
		},
		[]string{"filter"}, // "date_range" / "location" / "flags" / "camera" / "none"
	)
)

var pipelineMetricsRegistered bool

// RegisterPipelineMetrics registers the pipeline metrics. Must be called
// once from main; no init() registration.
func RegisterPipelineMetrics() {
	if pipelineMetricsRegistered {
		return
	}
	prometheus.MustRegister(RecognizerRequestsTotal)
	prometheus.MustRegister(RecognizerRequestDuration)
	prometheus.MustRegister(RecognizerErrorsTotal)
	prometheus.MustRegister(SpanCacheTotal)
	prometheus.MustRegister(FiltersExtractedTotal)
	pipelineMetricsRegistered = true
}
