// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/moviemitra/moviemitra/internal/catalog"
	"github.com/moviemitra/moviemitra/internal/config"
	"github.com/moviemitra/moviemitra/internal/models"
	"github.com/moviemitra/moviemitra/internal/recommend"
	"github.com/moviemitra/moviemitra/internal/tmdb"
	"github.com/moviemitra/moviemitra/internal/watchlist"
)

// stubEnricher returns canned metadata keyed by movie ID.
type stubEnricher struct {
	metadata map[int]tmdb.Metadata
}

func (s *stubEnricher) MovieDetails(ctx context.Context, movieID int) (*tmdb.Metadata, error) {
	meta, ok := s.metadata[movieID]
	if !ok {
		return nil, errors.New("stub: unknown movie")
	}
	return &meta, nil
}

// failingEnricher always errors, exercising the placeholder branch.
type failingEnricher struct{}

func (f *failingEnricher) MovieDetails(ctx context.Context, movieID int) (*tmdb.Metadata, error) {
	return nil, errors.New("upstream unavailable")
}

func testEntries() []catalog.Entry {
	return []catalog.Entry{
		{MovieID: 101, Title: "The Matrix", VoteCount: 5000, Popularity: 80.0},
		{MovieID: 102, Title: "Inception", VoteCount: 9000, Popularity: 95.0},
		{MovieID: 103, Title: "Heat", VoteCount: 3000, Popularity: 60.0},
		{MovieID: 104, Title: "Solaris", VoteCount: 3000, Popularity: 70.0},
	}
}

// testMatrix makes every row rank itself highest, with the remaining scores
// descending by distance from the query row.
func testMatrix(dim int) [][]float64 {
	rows := make([][]float64, dim)
	for i := range rows {
		rows[i] = make([]float64, dim)
		for j := range rows[i] {
			if i == j {
				rows[i][j] = 1.0
				continue
			}
			diff := i - j
			if diff < 0 {
				diff = -diff
			}
			rows[i][j] = 1.0 / float64(1+diff)
		}
	}
	return rows
}

func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{
			DefaultListLimit: 50,
			PopularListLimit: 40,
			RecommendK:       10,
		},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
		},
	}
}

func newTestEnricher(entries []catalog.Entry) *stubEnricher {
	metadata := make(map[int]tmdb.Metadata, len(entries))
	for _, e := range entries {
		metadata[e.MovieID] = tmdb.Metadata{
			Title:     e.Title,
			Overview:  fmt.Sprintf("Overview of %s", e.Title),
			PosterURL: fmt.Sprintf("https://image.tmdb.org/t/p/w500/%d.jpg", e.MovieID),
		}
	}
	return &stubEnricher{metadata: metadata}
}

// newTestServer builds a full router over the standard fixture catalog.
func newTestServer(t *testing.T, enricher Enricher) *httptest.Server {
	t.Helper()

	entries := testEntries()
	cat, err := catalog.NewCatalog(entries)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	matrix, err := catalog.NewSimilarityMatrix(testMatrix(len(entries)))
	if err != nil {
		t.Fatalf("failed to build matrix: %v", err)
	}

	handler := NewHandler(cat, recommend.NewRecommender(matrix), watchlist.NewStore(), enricher, testConfig())
	chiMw := NewChiMiddlewareFromSecurity([]string{"*"}, 100, time.Minute, true)
	router := NewRouter(handler, chiMw)

	srv := httptest.NewServer(router.SetupChi())
	t.Cleanup(srv.Close)
	return srv
}

// getJSON issues a GET and decodes the standard response envelope.
func getJSON(t *testing.T, url string) (int, *models.APIResponse) {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var envelope models.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.StatusCode, &envelope
}

// postJSON issues a POST with a JSON body and decodes the envelope.
func postJSON(t *testing.T, url string, body interface{}) (int, *models.APIResponse) {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	resp, err := http.Post(url, "application/json", bytesReader(data))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var envelope models.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.StatusCode, &envelope
}

func bytesReader(data []byte) io.Reader {
	return bytes.NewReader(data)
}

// decodeMovies re-marshals the envelope data into a movie slice.
func decodeMovies(t *testing.T, data interface{}) []models.Movie {
	t.Helper()

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("failed to re-marshal data: %v", err)
	}
	var movies []models.Movie
	if err := json.Unmarshal(raw, &movies); err != nil {
		t.Fatalf("failed to decode movies: %v", err)
	}
	return movies
}
