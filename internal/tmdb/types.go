// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package tmdb

// Placeholder metadata served when the provider is unreachable or disabled.
// The values are fixed so degraded responses stay deterministic.
const (
	PlaceholderPosterURL = "https://via.placeholder.com/500x750?text=No+Image"
	PlaceholderOverview  = "No description available."
	FallbackTitle        = "Unknown"
)

// Metadata is the display metadata for one movie.
type Metadata struct {
	Title     string
	Overview  string
	PosterURL string
}

// PlaceholderMetadata returns degraded metadata for a movie whose details
// could not be fetched. The given title is kept when known.
func PlaceholderMetadata(title string) Metadata {
	if title == "" {
		title = FallbackTitle
	}
	return Metadata{
		Title:     title,
		Overview:  PlaceholderOverview,
		PosterURL: PlaceholderPosterURL,
	}
}

// movieDetails is the subset of the TMDB movie details payload we consume.
type movieDetails struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Overview   string `json:"overview"`
	PosterPath string `json:"poster_path"`
}
