// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package models

// Movie is the enriched movie payload returned by the API. The display fields
// are filled from the metadata provider when it is reachable and from
// placeholder values otherwise, so the shape is identical on both paths.
type Movie struct {
	MovieID   int    `json:"movie_id"`
	Title     string `json:"title"`
	Overview  string `json:"overview"`
	PosterURL string `json:"poster_url"`
}

// MovieOption is the compact id/title pair used by the dropdown endpoint.
type MovieOption struct {
	MovieID int    `json:"movie_id"`
	Title   string `json:"title"`
}

// Banner is the payload for the service root endpoint.
type Banner struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}
