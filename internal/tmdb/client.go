// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package tmdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/moviemitra/moviemitra/internal/config"
)

// Client talks to the TMDB movie details endpoint. Outbound calls are
// throttled by a client-side token bucket so a burst of inbound traffic
// cannot exhaust the upstream quota.
type Client struct {
	baseURL      string
	imageBaseURL string
	apiKey       string
	language     string
	client       *http.Client
	limiter      *rate.Limiter
}

// NewClient creates a TMDB client from configuration.
func NewClient(cfg *config.TMDBConfig) *Client {
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		imageBaseURL: cfg.ImageBaseURL,
		apiKey:       cfg.APIKey,
		language:     cfg.Language,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
	}
}

// MovieDetails fetches display metadata for the given TMDB movie ID.
// Blocks until the rate limiter admits the call or ctx is done.
func (c *Client) MovieDetails(ctx context.Context, movieID int) (*Metadata, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("tmdb: rate limiter wait: %w", err)
	}

	reqURL := fmt.Sprintf("%s/movie/%d?%s", c.baseURL, movieID, url.Values{
		"api_key":  {c.apiKey},
		"language": {c.language},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("tmdb: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("tmdb: unexpected status %d for movie %d", resp.StatusCode, movieID)
	}

	var details movieDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, fmt.Errorf("tmdb: failed to decode response: %w", err)
	}

	title := details.Title
	if title == "" {
		title = FallbackTitle
	}
	overview := details.Overview
	if overview == "" {
		overview = PlaceholderOverview
	}

	return &Metadata{
		Title:     title,
		Overview:  overview,
		PosterURL: c.posterURL(details.PosterPath),
	}, nil
}

// posterURL builds the full image URL from a poster path. An empty path
// yields the fixed placeholder image.
func (c *Client) posterURL(posterPath string) string {
	if posterPath == "" {
		return PlaceholderPosterURL
	}
	return c.imageBaseURL + strings.TrimPrefix(posterPath, "/")
}
