// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

/*
Package config handles application configuration via Koanf v2 with layered
sources.

Configuration precedence (highest wins):

 1. Environment variables (TMDB_API_KEY, HTTP_PORT, ...)
 2. YAML config file (config.yaml, or CONFIG_PATH)
 3. Built-in defaults

Usage:

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}

Key sections:

  - Server: bind address and request timeout
  - Dataset: paths to the precomputed catalog and similarity artifacts
  - API: listing limits and default recommendation count
  - TMDB: external metadata provider (optional, degrades to placeholders)
  - Security: CORS origins and rate limiting
  - Logging: level, format, caller
*/
package config
