// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package config

import (
	"fmt"
	"time"
)

// Config holds the complete application configuration.
// Values are layered: built-in defaults, then an optional YAML config file,
// then environment variables (highest priority).
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Dataset  DatasetConfig  `koanf:"dataset"`
	API      APIConfig      `koanf:"api"`
	TMDB     TMDBConfig     `koanf:"tmdb"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// DatasetConfig points at the precomputed catalog artifacts loaded at startup.
type DatasetConfig struct {
	// MoviesPath is the JSON array of catalog records.
	MoviesPath string `koanf:"movies_path"`

	// SimilarityPath is the JSON square matrix of pairwise scores.
	SimilarityPath string `koanf:"similarity_path"`
}

// APIConfig holds listing behavior settings.
type APIConfig struct {
	// DefaultListLimit caps /movies responses when no limit is given.
	DefaultListLimit int `koanf:"default_list_limit"`

	// PopularListLimit is the number of entries returned by /movies/popular.
	PopularListLimit int `koanf:"popular_list_limit"`

	// RecommendK is the number of recommendations returned by default.
	RecommendK int `koanf:"recommend_k"`
}

// TMDBConfig holds settings for the external movie metadata provider.
type TMDBConfig struct {
	Enabled      bool          `koanf:"enabled"`
	BaseURL      string        `koanf:"base_url"`
	ImageBaseURL string        `koanf:"image_base_url"`
	APIKey       string        `koanf:"api_key"`
	Language     string        `koanf:"language"`
	Timeout      time.Duration `koanf:"timeout"`

	// RateLimit caps outbound requests per second; Burst allows short spikes.
	RateLimit float64 `koanf:"rate_limit"`
	Burst     int     `koanf:"burst"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the host:port address the HTTP server binds to.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
