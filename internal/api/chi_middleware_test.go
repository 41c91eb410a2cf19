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

	"github.com/moviemitra/moviemitra/internal/logging"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestChiMiddlewareDefaults(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	if len(cfg.CORSAllowedOrigins) != 0 {
		t.Error("default CORS origins should be empty, requiring explicit configuration")
	}
	if cfg.RateLimitRequests != 100 || cfg.RateLimitWindow != time.Minute {
		t.Errorf("unexpected rate limit defaults: %d/%v", cfg.RateLimitRequests, cfg.RateLimitWindow)
	}

	mw := NewChiMiddleware(nil)
	if mw.config == nil {
		t.Fatal("nil config should fall back to defaults")
	}
}

func TestRateLimitDisabled(t *testing.T) {
	t.Parallel()

	mw := NewChiMiddlewareFromSecurity(nil, 1, time.Minute, true)
	handler := mw.RateLimit()(okHandler())

	// Well past the configured limit; disabled limiter must pass everything.
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/movies", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200 with rate limiting disabled, got %d", i, w.Code)
		}
	}
}

func TestRateLimitEnforced(t *testing.T) {
	t.Parallel()

	mw := NewChiMiddlewareFromSecurity(nil, 2, time.Minute, false)
	handler := mw.RateLimit()(okHandler())

	statuses := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/movies", nil)
		req.RemoteAddr = "10.0.0.1:12345"
		handler.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Errorf("first two requests should pass, got %v", statuses)
	}
	if statuses[3] != http.StatusTooManyRequests {
		t.Errorf("expected 429 after exceeding limit, got %v", statuses)
	}
}

func TestRequestIDWithLogging(t *testing.T) {
	t.Parallel()

	t.Run("generates request ID when absent", func(t *testing.T) {
		t.Parallel()

		var gotRequestID string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotRequestID = logging.RequestIDFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		handler := RequestIDWithLogging()(inner)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if gotRequestID == "" {
			t.Error("expected a generated request ID in context")
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID response header")
		}
	})

	t.Run("preserves caller-supplied request ID", func(t *testing.T) {
		t.Parallel()

		var gotRequestID string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotRequestID = logging.RequestIDFromContext(r.Context())
		})

		handler := RequestIDWithLogging()(inner)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "caller-id-123")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		if gotRequestID != "caller-id-123" {
			t.Errorf("expected caller-id-123, got %q", gotRequestID)
		}
	})
}

func TestAPISecurityHeaders(t *testing.T) {
	t.Parallel()

	handler := APISecurityHeaders()(okHandler())
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/movies", nil))

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("expected nosniff, got %q", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("expected DENY, got %q", got)
	}
	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS should not be set for plain HTTP")
	}

	t.Run("HSTS behind TLS-terminating proxy", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/movies", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		handler.ServeHTTP(w, req)
		if w.Header().Get("Strict-Transport-Security") == "" {
			t.Error("expected HSTS header behind HTTPS proxy")
		}
	})
}
