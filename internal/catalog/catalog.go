// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when an id or title does not resolve to a catalog row.
var ErrNotFound = errors.New("catalog: entry not found")

// Entry is one movie record in the catalog. RowIndex matches the entry's
// position in both the catalog and the similarity matrix.
type Entry struct {
	MovieID    int     `json:"movie_id"`
	Title      string  `json:"title"`
	RowIndex   int     `json:"-"`
	VoteCount  int     `json:"vote_count,omitempty"`
	Popularity float64 `json:"popularity,omitempty"`
}

// Catalog is the immutable movie table with hash indexes built at load time.
type Catalog struct {
	entries      []Entry
	byID         map[int]int
	byTitle      map[string]int
	byExactTitle map[string]int
}

// NewCatalog builds a catalog from entries in order. RowIndex is assigned
// from position. Duplicate lower-cased titles keep the first occurrence in
// the title index; duplicate movie IDs are rejected.
func NewCatalog(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries:      make([]Entry, len(entries)),
		byID:         make(map[int]int, len(entries)),
		byTitle:      make(map[string]int, len(entries)),
		byExactTitle: make(map[string]int, len(entries)),
	}

	for i, e := range entries {
		e.RowIndex = i
		c.entries[i] = e

		if _, dup := c.byID[e.MovieID]; dup {
			return nil, fmt.Errorf("catalog: duplicate movie_id %d", e.MovieID)
		}
		c.byID[e.MovieID] = i

		key := strings.ToLower(e.Title)
		if _, exists := c.byTitle[key]; !exists {
			// First match wins for duplicate titles.
			c.byTitle[key] = i
		}
		if _, exists := c.byExactTitle[e.Title]; !exists {
			c.byExactTitle[e.Title] = i
		}
	}

	return c, nil
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// EntryAt returns the entry at the given row index.
func (c *Catalog) EntryAt(row int) (Entry, error) {
	if row < 0 || row >= len(c.entries) {
		return Entry{}, ErrNotFound
	}
	return c.entries[row], nil
}

// ResolveByID returns the row index for a movie ID.
func (c *Catalog) ResolveByID(movieID int) (int, error) {
	row, ok := c.byID[movieID]
	if !ok {
		return 0, ErrNotFound
	}
	return row, nil
}

// ResolveByTitle returns the row index for a title, matched case-insensitively.
// When multiple entries share the lower-cased title the first in catalog
// order is returned.
func (c *Catalog) ResolveByTitle(title string) (int, error) {
	row, ok := c.byTitle[strings.ToLower(title)]
	if !ok {
		return 0, ErrNotFound
	}
	return row, nil
}

// ResolveByTitleExact returns the row index for a title, matched
// case-sensitively. When multiple entries share the title the first in
// catalog order is returned.
func (c *Catalog) ResolveByTitleExact(title string) (int, error) {
	row, ok := c.byExactTitle[title]
	if !ok {
		return 0, ErrNotFound
	}
	return row, nil
}

// ListAll returns the first limit entries in catalog order. A non-positive
// limit returns an empty slice; no upper bound is enforced.
func (c *Catalog) ListAll(limit int) []Entry {
	if limit <= 0 {
		return []Entry{}
	}
	if limit > len(c.entries) {
		limit = len(c.entries)
	}
	out := make([]Entry, limit)
	copy(out, c.entries[:limit])
	return out
}

// ListPopular returns up to limit entries sorted descending by popularity
// proxy. Vote count is preferred; entries tied on vote count fall back to the
// popularity score, and the sort is stable so catalog order is preserved
// among full ties.
func (c *Catalog) ListPopular(limit int) []Entry {
	if limit <= 0 {
		return []Entry{}
	}

	sorted := make([]Entry, len(c.entries))
	copy(sorted, c.entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].VoteCount != sorted[j].VoteCount {
			return sorted[i].VoteCount > sorted[j].VoteCount
		}
		return sorted[i].Popularity > sorted[j].Popularity
	})

	if limit > len(sorted) {
		limit = len(sorted)
	}
	return sorted[:limit]
}
