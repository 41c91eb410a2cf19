// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/moviemitra/moviemitra/internal/models"
	"github.com/moviemitra/moviemitra/internal/watchlist"
)

// WatchlistGet handles GET /watchlist/{username} and returns the user's
// watchlist as enriched movies in insertion order. An unknown user yields an
// empty list, never an error.
//
// Titles are matched against the catalog case-sensitively, the same exact
// strings add and remove key on. Titles are not validated on add, so a
// stored title may have no catalog row; those are omitted from the response.
//
// List returns a copy of the stored titles, so enrichment runs entirely
// outside the store's critical section.
func (h *Handler) WatchlistGet(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	username := chi.URLParam(r, "username")
	titles := h.watchlist.List(username)

	movies := make([]models.Movie, 0, len(titles))
	for _, title := range titles {
		row, err := h.catalog.ResolveByTitleExact(title)
		if err != nil {
			continue
		}
		entry, err := h.catalog.EntryAt(row)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Catalog row lookup failed", err)
			return
		}
		movies = append(movies, h.buildMovie(r.Context(), entry))
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   movies,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// WatchlistAdd handles POST /watchlist/add.
//
// Adding a title that is already present is reported distinctly from a fresh
// insertion but is never an error, and the endpoint never returns 404.
func (h *Handler) WatchlistAdd(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeWatchlistRequest(w, r)
	if !ok {
		return
	}

	added := h.watchlist.Add(req.Username, req.MovieTitle)

	message := "Movie added to watchlist"
	if !added {
		message = "Movie already in watchlist"
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"username":    req.Username,
			"movie_title": req.MovieTitle,
			"added":       added,
			"message":     message,
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// WatchlistRemove handles POST /watchlist/remove. Removing a title the user
// never added is a 404, not a silent no-op.
func (h *Handler) WatchlistRemove(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeWatchlistRequest(w, r)
	if !ok {
		return
	}

	if err := h.watchlist.Remove(req.Username, req.MovieTitle); err != nil {
		if errors.Is(err, watchlist.ErrNotInWatchlist) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Movie not in watchlist", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Watchlist removal failed", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"username":    req.Username,
			"movie_title": req.MovieTitle,
			"removed":     true,
			"message":     "Movie removed from watchlist",
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// decodeWatchlistRequest parses and validates the add/remove request body.
// It writes the error response itself and reports success via the bool.
func decodeWatchlistRequest(w http.ResponseWriter, r *http.Request) (WatchlistRequest, bool) {
	var req WatchlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid JSON body", err)
		return req, false
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error:    apiErr,
		})
		return req, false
	}

	return req, true
}
