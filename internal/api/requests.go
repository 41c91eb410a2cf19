// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package api

// WatchlistRequest is the body for watchlist add and remove operations.
// Usernames are arbitrary case-sensitive strings, not validated against
// any user registry.
type WatchlistRequest struct {
	Username   string `json:"username" validate:"required,min=1,max=128"`
	MovieTitle string `json:"movie_title" validate:"required,min=1,max=512"`
}
