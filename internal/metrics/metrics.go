// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation:
// - API endpoint latency and throughput
// - Recommendation computation
// - Watchlist state and mutations
// - Metadata enrichment (TMDB) outcomes and circuit breaker health

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation computations",
		},
	)

	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of neighbors returned per recommendation",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Recommendation computation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// Watchlist Metrics
	WatchlistUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "watchlist_users",
			Help: "Current number of users with a watchlist",
		},
	)

	WatchlistOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchlist_operations_total",
			Help: "Total number of watchlist mutations",
		},
		[]string{"operation"}, // "add", "remove"
	)

	// Metadata Enrichment Metrics
	EnrichmentRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrichment_requests_total",
			Help: "Total number of metadata enrichment lookups",
		},
		[]string{"result"}, // "success", "fallback"
	)

	EnrichmentDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "enrichment_duration_seconds",
			Help:    "Metadata enrichment lookup duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one recommendation computation
func RecordRecommendation(results int, duration time.Duration) {
	RecommendationsTotal.Inc()
	RecommendationResults.Observe(float64(results))
	RecommendationDuration.Observe(duration.Seconds())
}

// RecordWatchlistOp records a watchlist mutation ("add" or "remove")
func RecordWatchlistOp(operation string) {
	WatchlistOpsTotal.WithLabelValues(operation).Inc()
}

// SetWatchlistUsers updates the watchlist user count gauge
func SetWatchlistUsers(count int) {
	WatchlistUsers.Set(float64(count))
}

// RecordEnrichment records a metadata enrichment lookup. Fallback means the
// provider failed or was disabled and placeholder metadata was served.
func RecordEnrichment(fallback bool, duration time.Duration) {
	result := "success"
	if fallback {
		result = "fallback"
	}
	EnrichmentRequestsTotal.WithLabelValues(result).Inc()
	EnrichmentDuration.Observe(duration.Seconds())
}
