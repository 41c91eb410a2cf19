// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package api

import (
	"net/http"
	"time"

	"github.com/moviemitra/moviemitra/internal/models"
)

// Health handles GET /api/v1/health.
//
// The catalog and matrix are loaded before the server starts, so the service
// is healthy as soon as it serves traffic. Enrichment is best-effort and
// reported informationally, never as degraded.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"status":             "healthy",
			"catalog_size":       h.catalog.Len(),
			"enrichment_enabled": h.enricher != nil,
			"uptime":             time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles GET /api/v1/health/live (Kubernetes-style liveness).
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles GET /api/v1/health/ready (Kubernetes-style readiness).
// Ready means the catalog was loaded with at least one entry.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := h.catalog != nil && h.catalog.Len() > 0

	status := http.StatusOK
	state := "ready"
	if !ready {
		status = http.StatusServiceUnavailable
		state = "not_ready"
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"ready":  ready,
			"status": state,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
