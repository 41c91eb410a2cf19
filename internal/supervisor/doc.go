// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

// Package supervisor builds the suture supervision tree that owns every
// long-running service in the process.
//
// The tree has a root supervisor with an api layer beneath it. Services
// added to the api layer (the HTTP server) are restarted with exponential
// backoff when they fail, and the whole tree shuts down gracefully when
// the root context is canceled.
//
// Supervisor events are logged through sutureslog, bridged onto the
// process-wide zerolog logger via logging.NewSlogLogger.
package supervisor
