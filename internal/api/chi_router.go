// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/moviemitra/moviemitra/internal/middleware"
)

// Router wires handlers and middleware into the Chi routing tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router from a handler and a middleware factory.
// A nil factory falls back to the secure defaults.
func NewRouter(handler *Handler, chiMw *ChiMiddleware) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
	}
}

// chiMiddlewareFunc adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so it can be used with r.Use().
func chiMiddlewareFunc(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes using the Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	// Uniform error envelopes for unmatched routes and methods.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Endpoint not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	// Banner and Prometheus exposition sit outside the rate-limited groups.
	r.Get("/", router.handler.Root)
	r.Handle("/metrics", promhttp.Handler())

	// Health endpoints get permissive rate limiting so monitoring tools can
	// poll frequently.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealthChecks())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// Catalog endpoints.
	r.Route("/movies", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddlewareFunc(middleware.PrometheusMetrics))

		r.Get("/", router.handler.Movies)
		r.Get("/popular", router.handler.MoviesPopular)
		r.Get("/dropdown", router.handler.MoviesDropdown)
		r.Get("/title/{movie_title}", router.handler.MovieByTitle)
		r.Get("/{movie_id}", router.handler.MovieByID)
	})

	// Recommendation endpoints.
	r.Route("/recommend", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddlewareFunc(middleware.PrometheusMetrics))

		r.Get("/", router.handler.Recommend)
		r.Get("/title/{movie_title}", router.handler.RecommendByTitle)
	})

	// Watchlist endpoints. Reads share the default limit; mutations get the
	// stricter write limit.
	r.Route("/watchlist", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(chiMiddlewareFunc(middleware.PrometheusMetrics))

		r.With(router.chiMiddleware.RateLimit()).Get("/{username}", router.handler.WatchlistGet)
		r.With(router.chiMiddleware.RateLimitWriteOps()).Post("/add", router.handler.WatchlistAdd)
		r.With(router.chiMiddleware.RateLimitWriteOps()).Post("/remove", router.handler.WatchlistRemove)
	})

	return r
}
