// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateTMDB(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	return nil
}

func (c *Config) validateDataset() error {
	if c.Dataset.MoviesPath == "" {
		return fmt.Errorf("MOVIES_PATH is required")
	}
	if c.Dataset.SimilarityPath == "" {
		return fmt.Errorf("SIMILARITY_PATH is required")
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.DefaultListLimit < 1 {
		return fmt.Errorf("API_DEFAULT_LIST_LIMIT must be at least 1, got %d", c.API.DefaultListLimit)
	}
	if c.API.PopularListLimit < 1 {
		return fmt.Errorf("API_POPULAR_LIST_LIMIT must be at least 1, got %d", c.API.PopularListLimit)
	}
	if c.API.RecommendK < 1 {
		return fmt.Errorf("API_RECOMMEND_K must be at least 1, got %d", c.API.RecommendK)
	}
	return nil
}

// validateTMDB validates metadata provider configuration (only if enabled).
// Enrichment is optional; when disabled every movie is served with
// placeholder metadata.
func (c *Config) validateTMDB() error {
	if !c.TMDB.Enabled {
		return nil
	}

	if c.TMDB.BaseURL == "" {
		return fmt.Errorf("TMDB_BASE_URL is required when TMDB_ENABLED=true")
	}
	if err := validateHTTPURL(c.TMDB.BaseURL, "TMDB_BASE_URL"); err != nil {
		return err
	}
	if c.TMDB.APIKey == "" {
		return fmt.Errorf("TMDB_API_KEY is required when TMDB_ENABLED=true")
	}
	if c.TMDB.Timeout <= 0 {
		return fmt.Errorf("TMDB_TIMEOUT must be positive, got %v", c.TMDB.Timeout)
	}
	if c.TMDB.RateLimit <= 0 {
		return fmt.Errorf("TMDB_RATE_LIMIT must be positive, got %v", c.TMDB.RateLimit)
	}
	if c.TMDB.Burst < 1 {
		return fmt.Errorf("TMDB_BURST must be at least 1, got %d", c.TMDB.Burst)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, disabled; got %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// validateHTTPURL checks that a URL is absolute and uses http or https.
func validateHTTPURL(raw, name string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https scheme, got %q", name, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s is missing a host", name)
	}
	return nil
}
