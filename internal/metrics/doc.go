// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

/*
Package metrics provides Prometheus metrics collection and export for
observability.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)

Recommendation Metrics:
  - recommendations_total: Recommendation computations (counter)
  - recommendation_results: Neighbors returned per computation (histogram)
  - recommendation_duration_seconds: Computation latency (histogram)

Watchlist Metrics:
  - watchlist_users: Users with a watchlist (gauge)
  - watchlist_operations_total: Mutations (counter)
    Labels: operation (add, remove)

Enrichment Metrics:
  - enrichment_requests_total: Metadata lookups (counter)
    Labels: result (success, fallback)
  - enrichment_duration_seconds: Lookup latency (histogram)

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests through the breaker (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_consecutive_failures: Consecutive failures (gauge)
    Labels: name
  - circuit_breaker_state_transitions_total: State transitions (counter)
    Labels: name, from_state, to_state
*/
package metrics
