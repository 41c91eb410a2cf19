// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

// Package services provides suture.Service adapters for long-running
// components that the supervision tree manages.
//
// Each adapter translates a component's native lifecycle (for example
// http.Server's blocking ListenAndServe and Shutdown pair) into the
// context-driven Serve method suture expects, so crashes restart the
// component with backoff rather than taking the process down.
package services
