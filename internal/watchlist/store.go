// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

// Package watchlist holds per-user ordered, duplicate-free lists of movie
// titles in process memory. Lists are created implicitly on first add, never
// persisted, and lost on restart.
package watchlist

import (
	"errors"
	"sync"

	"github.com/moviemitra/moviemitra/internal/metrics"
)

// ErrNotInWatchlist is returned when removing a title the user has not added.
var ErrNotInWatchlist = errors.New("watchlist: title not in watchlist")

// Store is the process-wide watchlist state. It is constructed at startup and
// injected into the request handlers. A single store-wide mutex guards all
// lists; contention is expected to be low. Titles are matched by exact string
// equality and usernames are case-sensitive.
type Store struct {
	mu    sync.Mutex
	lists map[string][]string
}

// NewStore creates an empty watchlist store.
func NewStore() *Store {
	return &Store{
		lists: make(map[string][]string),
	}
}

// Add appends title to the user's list, creating the list if absent.
// Returns true if the title was inserted, false if it was already present.
// Already-present is a distinct outcome, not an error.
func (s *Store) Add(username, title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.lists[username] {
		if t == title {
			return false
		}
	}

	if _, ok := s.lists[username]; !ok {
		metrics.SetWatchlistUsers(len(s.lists) + 1)
	}
	s.lists[username] = append(s.lists[username], title)
	metrics.RecordWatchlistOp("add")
	return true
}

// Remove deletes title from the user's list. Returns ErrNotInWatchlist when
// the user has no list or the title is absent; the list is left unchanged.
func (s *Store) Remove(username, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[username]
	if !ok {
		return ErrNotInWatchlist
	}

	for i, t := range list {
		if t == title {
			s.lists[username] = append(list[:i], list[i+1:]...)
			metrics.RecordWatchlistOp("remove")
			return nil
		}
	}
	return ErrNotInWatchlist
}

// List returns a copy of the user's titles in insertion order. Unknown users
// get an empty slice, never an error.
func (s *Store) List(username string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[username]
	out := make([]string, len(list))
	copy(out, list)
	return out
}
