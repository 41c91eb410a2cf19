// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package catalog

import (
	"fmt"
)

// SimilarityMatrix is the dense precomputed square matrix of pairwise
// similarity scores. Row i holds the scores of catalog row i against every
// catalog row, itself included. Read-only after load.
type SimilarityMatrix struct {
	rows [][]float64
}

// NewSimilarityMatrix validates that rows form a square matrix.
func NewSimilarityMatrix(rows [][]float64) (*SimilarityMatrix, error) {
	dim := len(rows)
	for i, row := range rows {
		if len(row) != dim {
			return nil, fmt.Errorf("similarity matrix is not square: row %d has %d columns, want %d", i, len(row), dim)
		}
	}
	return &SimilarityMatrix{rows: rows}, nil
}

// Dim returns the matrix dimension.
func (m *SimilarityMatrix) Dim() int {
	return len(m.rows)
}

// Row returns the score row for the given index. The returned slice is the
// backing storage and must not be modified by callers.
func (m *SimilarityMatrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= len(m.rows) {
		return nil, fmt.Errorf("row index %d out of range [0, %d)", i, len(m.rows))
	}
	return m.rows[i], nil
}
