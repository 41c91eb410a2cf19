// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

/*
Package models defines shared data structures for the MovieMitra application.

This package contains the API response envelope and the movie payload shapes
returned by the HTTP endpoints. It serves as the single source of truth for
data structure definitions shared between the handlers and their tests.

Key Components:

  - Movie: Enriched movie payload (identity plus display metadata)
  - MovieOption: Compact id/title pair for dropdowns
  - APIResponse: Standardized API response wrapper
  - APIError: Error details
  - Metadata: Response metadata (timestamp, query time)
*/
package models
