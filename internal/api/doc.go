// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

// Package api provides the HTTP surface of MovieMitra using the Chi router.
//
// Handlers are split by concern:
//   - handlers.go: Handler struct, constructor, banner endpoint
//   - handlers_movies.go: catalog listing and lookup endpoints
//   - handlers_recommend.go: similarity recommendation endpoints
//   - handlers_watchlist.go: per-user watchlist endpoints
//   - handlers_health.go: health and probe endpoints
//   - handlers_helpers.go: shared response and parameter helpers
//   - assemble.go: movie result assembly with metadata enrichment
//
// Routing, CORS, rate limiting and request ID propagation live in
// chi_router.go and chi_middleware.go.
package api
