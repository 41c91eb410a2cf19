// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package api

import (
	"net/http"
	"time"

	"github.com/moviemitra/moviemitra/internal/catalog"
	"github.com/moviemitra/moviemitra/internal/config"
	"github.com/moviemitra/moviemitra/internal/models"
	"github.com/moviemitra/moviemitra/internal/recommend"
	"github.com/moviemitra/moviemitra/internal/watchlist"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct, constructor, banner endpoint (this file)
//   - handlers_movies.go: catalog listing and lookup endpoints
//   - handlers_recommend.go: recommendation endpoints
//   - handlers_watchlist.go: watchlist endpoints
//   - handlers_health.go: health and probe endpoints
type Handler struct {
	catalog     *catalog.Catalog
	recommender *recommend.Recommender
	watchlist   *watchlist.Store
	enricher    Enricher
	config      *config.Config
	startTime   time.Time
}

// NewHandler creates a new API handler with all required dependencies.
//
// The catalog and recommender are read-only after startup and need no
// synchronization. The watchlist store serializes its own mutations. The
// enricher may be nil, in which case every movie is assembled from
// placeholder metadata.
func NewHandler(cat *catalog.Catalog, rec *recommend.Recommender, wl *watchlist.Store, enricher Enricher, cfg *config.Config) *Handler {
	return &Handler{
		catalog:     cat,
		recommender: rec,
		watchlist:   wl,
		enricher:    enricher,
		config:      cfg,
		startTime:   time.Now(),
	}
}

// bannerEndpoints lists the public surface shown on the banner endpoint.
var bannerEndpoints = []string{
	"GET /movies",
	"GET /movies/popular",
	"GET /movies/dropdown",
	"GET /movies/{movie_id}",
	"GET /movies/title/{movie_title}",
	"GET /recommend",
	"GET /recommend/title/{movie_title}",
	"GET /watchlist/{username}",
	"POST /watchlist/add",
	"POST /watchlist/remove",
	"GET /api/v1/health",
}

// Root handles GET / and returns the service banner with the endpoint list.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.Banner{
			Message:   "Welcome to MovieMitra API",
			Endpoints: bannerEndpoints,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
