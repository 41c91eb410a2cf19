// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/moviemitra/moviemitra/internal/catalog"
	"github.com/moviemitra/moviemitra/internal/models"
)

// Movies handles GET /movies and returns the first limit entries in catalog
// order. The limit defaults from configuration and has no upper bound, so a
// caller can request the whole catalog.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit := getIntParam(r, "limit", h.config.API.DefaultListLimit)
	entries := h.catalog.ListAll(limit)
	movies := h.buildMovies(r.Context(), entries)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   movies,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// MoviesPopular handles GET /movies/popular and returns entries sorted by
// the popularity proxy (vote count, then popularity score).
func (h *Handler) MoviesPopular(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit := getIntParam(r, "limit", h.config.API.PopularListLimit)
	entries := h.catalog.ListPopular(limit)
	movies := h.buildMovies(r.Context(), entries)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   movies,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// MoviesDropdown handles GET /movies/dropdown.
//
// With a movie_id query parameter it resolves to that movie's id and title;
// with movie_title it resolves case-insensitively. With neither it returns
// the full id/title list for populating a selection widget, without
// enrichment.
func (h *Handler) MoviesDropdown(w http.ResponseWriter, r *http.Request) {
	idParam := r.URL.Query().Get("movie_id")
	titleParam := r.URL.Query().Get("movie_title")

	switch {
	case idParam != "":
		movieID, err := strconv.Atoi(idParam)
		if err != nil {
			respondError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "movie_id must be an integer", err)
			return
		}
		row, err := h.catalog.ResolveByID(movieID)
		if err != nil {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found", nil)
			return
		}
		h.respondMovieOption(w, row)

	case titleParam != "":
		row, err := h.catalog.ResolveByTitle(titleParam)
		if err != nil {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found", nil)
			return
		}
		h.respondMovieOption(w, row)

	default:
		entries := h.catalog.ListAll(h.catalog.Len())
		options := make([]models.MovieOption, 0, len(entries))
		for _, entry := range entries {
			options = append(options, models.MovieOption{MovieID: entry.MovieID, Title: entry.Title})
		}
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status:   "success",
			Data:     options,
			Metadata: models.Metadata{Timestamp: time.Now()},
		})
	}
}

func (h *Handler) respondMovieOption(w http.ResponseWriter, row int) {
	entry, err := h.catalog.EntryAt(row)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Catalog row lookup failed", err)
		return
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     models.MovieOption{MovieID: entry.MovieID, Title: entry.Title},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// MovieByID handles GET /movies/{movie_id} and returns a single enriched
// movie or 404.
func (h *Handler) MovieByID(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "movie_id")
	movieID, err := strconv.Atoi(idParam)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "movie_id must be an integer", err)
		return
	}

	row, err := h.catalog.ResolveByID(movieID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Movie lookup failed", err)
		return
	}

	h.respondSingleMovie(w, r, row)
}

// MovieByTitle handles GET /movies/title/{movie_title}. Title matching is
// case-insensitive; duplicate titles resolve to the first catalog row.
func (h *Handler) MovieByTitle(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "movie_title")

	row, err := h.catalog.ResolveByTitle(title)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Movie lookup failed", err)
		return
	}

	h.respondSingleMovie(w, r, row)
}

func (h *Handler) respondSingleMovie(w http.ResponseWriter, r *http.Request, row int) {
	start := time.Now()

	entry, err := h.catalog.EntryAt(row)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Catalog row lookup failed", err)
		return
	}

	movie := h.buildMovie(r.Context(), entry)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   movie,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}
