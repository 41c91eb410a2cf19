// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

/*
Package catalog holds the immutable in-memory movie table and the precomputed
similarity matrix, both loaded once at startup from JSON artifacts.

The catalog indexes entries by movie_id and by lower-cased title so per-request
lookups are hash lookups, not scans. Titles are not guaranteed unique; when two
entries share a lower-cased title the first in catalog order wins, and that
policy is fixed.

Both structures are read-only after Load returns, so concurrent readers need
no synchronization.
*/
package catalog
