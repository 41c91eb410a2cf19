// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/moviemitra/moviemitra/internal/models"
)

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain string unchanged", "hello world", "hello world"},
		{"newline escaped", "line1\nline2", "line1\\x0aline2"},
		{"carriage return escaped", "a\rb", "a\\x0db"},
		{"tab escaped", "a\tb", "a\\x09b"},
		{"delete escaped", "a\x7fb", "a\\x7fb"},
		{"unicode preserved", "héllo", "héllo"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := sanitizeLogValue(tt.input); got != tt.want {
				t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateETag(t *testing.T) {
	t.Parallel()

	a := generateETag([]byte("payload one"))
	b := generateETag([]byte("payload two"))
	if a == b {
		t.Error("different payloads should produce different ETags")
	}
	if a != generateETag([]byte("payload one")) {
		t.Error("same payload should produce a stable ETag")
	}
}

func TestGetIntParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"present integer", "limit=25", 25},
		{"missing uses default", "", 50},
		{"non-integer uses default", "limit=abc", 50},
		{"negative passes through", "limit=-3", -3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/movies?"+tt.query, nil)
			if got := getIntParam(r, "limit", 50); got != tt.want {
				t.Errorf("getIntParam = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRespondJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]string{"hello": "world"},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	if w.Header().Get("ETag") == "" {
		t.Error("expected ETag header")
	}

	var envelope models.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if envelope.Status != "success" {
		t.Errorf("expected success, got %q", envelope.Status)
	}
}

func TestRespondError(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	respondError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}

	var envelope models.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if envelope.Status != "error" {
		t.Errorf("expected error status, got %q", envelope.Status)
	}
	if envelope.Error == nil || envelope.Error.Code != "NOT_FOUND" {
		t.Errorf("unexpected error payload: %+v", envelope.Error)
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	t.Run("valid request passes", func(t *testing.T) {
		t.Parallel()
		req := WatchlistRequest{Username: "alice", MovieTitle: "Heat"}
		if apiErr := validateRequest(&req); apiErr != nil {
			t.Errorf("expected no error, got %+v", apiErr)
		}
	})

	t.Run("missing fields fail with VALIDATION_ERROR", func(t *testing.T) {
		t.Parallel()
		req := WatchlistRequest{}
		apiErr := validateRequest(&req)
		if apiErr == nil {
			t.Fatal("expected validation error")
		}
		if apiErr.Code != "VALIDATION_ERROR" {
			t.Errorf("expected VALIDATION_ERROR, got %q", apiErr.Code)
		}
	})
}
