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
	"github.com/moviemitra/moviemitra/internal/recommend"
)

// Recommend handles GET /recommend.
//
// The query movie is given as either movie_id or movie_title; supplying
// neither is a 400 and an unresolvable value is a 404. The response is a
// list of enriched movies in descending similarity order.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	idParam := r.URL.Query().Get("movie_id")
	titleParam := r.URL.Query().Get("movie_title")

	var (
		row int
		err error
	)
	switch {
	case idParam != "":
		var movieID int
		movieID, err = strconv.Atoi(idParam)
		if err != nil {
			respondError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "movie_id must be an integer", err)
			return
		}
		row, err = h.catalog.ResolveByID(movieID)

	case titleParam != "":
		row, err = h.catalog.ResolveByTitle(titleParam)

	default:
		respondError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "Either movie_id or movie_title is required", nil)
		return
	}

	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Movie lookup failed", err)
		return
	}

	h.respondRecommendations(w, r, row)
}

// RecommendByTitle handles GET /recommend/title/{movie_title}, the
// path-parameter variant of the recommendation endpoint.
func (h *Handler) RecommendByTitle(w http.ResponseWriter, r *http.Request) {
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

	h.respondRecommendations(w, r, row)
}

func (h *Handler) respondRecommendations(w http.ResponseWriter, r *http.Request, row int) {
	start := time.Now()

	k := getIntParam(r, "k", h.config.API.RecommendK)
	neighbors, err := h.recommender.Recommend(row, k)
	if err != nil {
		if errors.Is(err, recommend.ErrRowOutOfRange) {
			respondError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "Row index out of range", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Recommendation failed", err)
		return
	}

	entries := make([]catalog.Entry, 0, len(neighbors))
	for _, n := range neighbors {
		entry, err := h.catalog.EntryAt(n.RowIndex)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Catalog row lookup failed", err)
			return
		}
		entries = append(entries, entry)
	}

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
