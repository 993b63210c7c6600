package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Post-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "posty",
			Subsystem: "post_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "posty",
			Subsystem: "post_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	// Post generations by outcome (structured, salvaged, fallback, error)
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "posty",
			Subsystem: "post_api",
			Name:      "generations_total",
			Help:      "Total post generations",
		},
		[]string{"platform", "outcome"},
	)

	// Generation latency against the LLM provider
	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "posty",
			Subsystem: "post_api",
			Name:      "generation_duration_seconds",
			Help:      "Post generation duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 45},
		},
	)

	// Image provider calls
	ImageSearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "posty",
			Subsystem: "post_api",
			Name:      "image_searches_total",
			Help:      "Total image provider searches",
		},
		[]string{"source", "status"},
	)

	// Image provider latency
	ImageSearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "posty",
			Subsystem: "post_api",
			Name:      "image_search_duration_seconds",
			Help:      "Image provider search duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 15},
		},
		[]string{"source"},
	)

	// Generation cache hits and misses
	ImageCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "posty",
			Subsystem: "post_api",
			Name:      "image_cache_total",
			Help:      "Generated-image cache lookups",
		},
		[]string{"result"},
	)

	// Live conversation sessions
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "posty",
			Subsystem: "post_api",
			Name:      "active_sessions",
			Help:      "Number of live conversation sessions",
		},
	)
)
