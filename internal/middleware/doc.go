// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

/*
Package middleware provides HTTP middleware components for the application.

Key Components:

  - Prometheus Metrics: request/response instrumentation (counter, latency
    histogram, active request gauge, status code capture)

Routing-level middleware (CORS, rate limiting, request IDs, security headers)
lives in the api package where the chi router is assembled; this package holds
the pieces that wrap individual handler funcs.

Usage:

	http.HandleFunc("/movies",
	    middleware.PrometheusMetrics(handler),
	)
*/
package middleware
