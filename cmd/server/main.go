// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

// Package main is the entry point for the MovieMitra server application.
//
// MovieMitra serves a precomputed movie-similarity table over HTTP: listing
// movies, looking up a movie by id or title, producing top-K similar movies,
// and maintaining per-user in-memory watchlists.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from defaults, config file, and
//     environment variables (Koanf v2)
//  2. Catalog: Load the movie catalog and similarity matrix artifacts
//  3. Recommender: Top-K similarity retrieval over the loaded matrix
//  4. Watchlist store: Shared in-memory per-user watchlists
//  5. Enrichment: TMDB metadata client with circuit breaker (optional)
//  6. HTTP Server: Chi-routed REST API under supervisor management
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (MOVIES_PATH, SIMILARITY_PATH, TMDB_API_KEY, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Enrichment
//
// TMDB enrichment is optional. Without an API key the server still answers
// every endpoint, substituting fixed placeholder metadata:
//
//	export TMDB_ENABLED=false
//	./moviemitra
//
// With enrichment:
//
//	export TMDB_API_KEY=your-tmdb-api-key
//	./moviemitra
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moviemitra/moviemitra/internal/api"
	"github.com/moviemitra/moviemitra/internal/catalog"
	"github.com/moviemitra/moviemitra/internal/config"
	"github.com/moviemitra/moviemitra/internal/logging"
	"github.com/moviemitra/moviemitra/internal/recommend"
	"github.com/moviemitra/moviemitra/internal/supervisor"
	"github.com/moviemitra/moviemitra/internal/supervisor/services"
	"github.com/moviemitra/moviemitra/internal/tmdb"
	"github.com/moviemitra/moviemitra/internal/watchlist"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting MovieMitra")
	logging.Info().
		Str("movies_path", cfg.Dataset.MoviesPath).
		Str("similarity_path", cfg.Dataset.SimilarityPath).
		Bool("tmdb_enabled", cfg.TMDB.Enabled).
		Msg("Configuration loaded")

	// Load the catalog and similarity matrix. Both are immutable after this
	// point, so request handlers read them without synchronization.
	cat, matrix, err := catalog.Load(cfg.Dataset.MoviesPath, cfg.Dataset.SimilarityPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog artifacts")
	}
	logging.Info().Int("movies", cat.Len()).Msg("Catalog loaded")

	recommender := recommend.NewRecommender(matrix)
	watchlistStore := watchlist.NewStore()

	// TMDB enricher with circuit breaker, or nil when disabled. A nil
	// enricher means every movie gets placeholder metadata.
	var enricher api.Enricher
	if cfg.TMDB.Enabled {
		enricher = tmdb.NewCircuitBreakerClient(&cfg.TMDB)
		logging.Info().Str("base_url", cfg.TMDB.BaseURL).Msg("TMDB enrichment enabled")
	} else {
		logging.Info().Msg("TMDB enrichment disabled - serving placeholder metadata")
	}

	handler := api.NewHandler(cat, recommender, watchlistStore, enricher, cfg)
	chiMw := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chiMw)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog compatibility
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
