// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package api

import (
	"context"
	"time"

	"github.com/moviemitra/moviemitra/internal/catalog"
	"github.com/moviemitra/moviemitra/internal/logging"
	"github.com/moviemitra/moviemitra/internal/metrics"
	"github.com/moviemitra/moviemitra/internal/models"
	"github.com/moviemitra/moviemitra/internal/tmdb"
)

// Enricher supplies display metadata for a movie ID from an external source.
// Implementations are expected to be slow and unreliable; callers must treat
// every error as recoverable.
type Enricher interface {
	MovieDetails(ctx context.Context, movieID int) (*tmdb.Metadata, error)
}

// enrichTimeout bounds a single metadata lookup. The request context still
// applies, so cancellation propagates either way.
const enrichTimeout = 5 * time.Second

// buildMovie assembles the response shape for one catalog entry.
//
// Enrichment failures never propagate: the placeholder branch substitutes
// fixed values so the caller always receives a complete Movie. When no
// enricher is configured the placeholder path is taken directly.
func (h *Handler) buildMovie(ctx context.Context, entry catalog.Entry) models.Movie {
	start := time.Now()

	if h.enricher == nil {
		meta := tmdb.PlaceholderMetadata(entry.Title)
		return movieFromMetadata(entry.MovieID, meta)
	}

	callCtx, cancel := context.WithTimeout(ctx, enrichTimeout)
	defer cancel()

	meta, err := h.enricher.MovieDetails(callCtx, entry.MovieID)
	if err != nil {
		logging.Warn().
			Int("movie_id", entry.MovieID).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("Metadata enrichment failed, using placeholder")
		metrics.RecordEnrichment(true, time.Since(start))
		return movieFromMetadata(entry.MovieID, tmdb.PlaceholderMetadata(entry.Title))
	}

	metrics.RecordEnrichment(false, time.Since(start))

	// The catalog title is authoritative; enrichment contributes only
	// poster and overview. Upstream titles can differ (localization,
	// renames) and watchlist operations key on the exact catalog string.
	return models.Movie{
		MovieID:   entry.MovieID,
		Title:     entry.Title,
		Overview:  meta.Overview,
		PosterURL: meta.PosterURL,
	}
}

// buildMovies assembles a slice of entries in order. Enrichment runs
// sequentially under the upstream client's rate limiter.
func (h *Handler) buildMovies(ctx context.Context, entries []catalog.Entry) []models.Movie {
	movies := make([]models.Movie, 0, len(entries))
	for _, entry := range entries {
		movies = append(movies, h.buildMovie(ctx, entry))
	}
	return movies
}

func movieFromMetadata(movieID int, meta tmdb.Metadata) models.Movie {
	return models.Movie{
		MovieID:   movieID,
		Title:     meta.Title,
		Overview:  meta.Overview,
		PosterURL: meta.PosterURL,
	}
}
