// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

/*
Package tmdb fetches display metadata (poster, overview, canonical title)
for a movie ID from The Movie Database API.

The client enforces a client-side rate limit and per-request timeout.
CircuitBreakerClient wraps it so a failing or slow upstream stops being
called for a recovery window instead of stalling every request. Callers
treat any error as a signal to fall back to placeholder metadata; failures
here are never surfaced to API clients.
*/
package tmdb
