// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

/*
Package recommend ranks catalog rows by precomputed similarity score and
selects the top K neighbors for a query row.

The ranking policy is fixed for compatibility with the data pipeline that
produces the matrix: all scores in the query row are sorted descending with a
stable sort (catalog order breaks ties), the top K+1 entries are taken, and
the single top-ranked entry is discarded. With a well-formed matrix the
discarded entry is the query row itself, since a row's self-similarity is
maximal. Matrices where another row outranks the query row will have that row
discarded instead; this is a known property of the policy, not corrected here.
*/
package recommend
