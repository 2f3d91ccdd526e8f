package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cadence_http_requests_total",
			Help: "Total HTTP requests by route and status code",
		},
		[]string{"route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cadence_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// StageCandidates records how many songs survive each pipeline stage.
	StageCandidates = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cadence_stage_candidates",
			Help:    "Number of songs leaving each recommendation stage",
			Buckets: []float64{0, 1, 5, 15, 50, 100, 500, 1000, 5000},
		},
		[]string{"stage"},
	)

	NarrowingFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cadence_narrowing_fallbacks_total",
			Help: "Requests whose listener preferences were left unapplied",
		},
	)

	// Catalog
	CatalogFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cadence_catalog_fetches_total",
			Help: "Spotify track fetches by outcome",
		},
		[]string{"outcome"}, // "resolved", "failed"
	)

	EnrichmentUnavailable = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cadence_enrichment_unavailable_total",
			Help: "Requests failed because the catalog could not be reached",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cadence_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)
