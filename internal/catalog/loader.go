// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package catalog

import (
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"github.com/moviemitra/moviemitra/internal/logging"
)

// Load reads the movie table and the similarity matrix from their JSON
// artifacts and verifies they describe the same catalog: the matrix must be
// square with dimension equal to the number of movie records.
func Load(moviesPath, similarityPath string) (*Catalog, *SimilarityMatrix, error) {
	start := time.Now()

	cat, err := loadCatalog(moviesPath)
	if err != nil {
		return nil, nil, err
	}

	matrix, err := loadMatrix(similarityPath)
	if err != nil {
		return nil, nil, err
	}

	if cat.Len() != matrix.Dim() {
		return nil, nil, fmt.Errorf("catalog has %d entries but similarity matrix dimension is %d", cat.Len(), matrix.Dim())
	}

	logging.Info().
		Int("movies", cat.Len()).
		Int("matrix_dim", matrix.Dim()).
		Dur("elapsed", time.Since(start)).
		Msg("Catalog loaded")

	return cat, matrix, nil
}

func loadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read movie artifact %s: %w", path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse movie artifact %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("movie artifact %s contains no entries", path)
	}

	cat, err := NewCatalog(entries)
	if err != nil {
		return nil, fmt.Errorf("invalid movie artifact %s: %w", path, err)
	}
	return cat, nil
}

func loadMatrix(path string) (*SimilarityMatrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read similarity artifact %s: %w", path, err)
	}

	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse similarity artifact %s: %w", path, err)
	}

	matrix, err := NewSimilarityMatrix(rows)
	if err != nil {
		return nil, fmt.Errorf("invalid similarity artifact %s: %w", path, err)
	}
	return matrix, nil
}
