// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package catalog

import (
	"testing"
)

func TestNewSimilarityMatrixSquare(t *testing.T) {
	t.Parallel()

	m, err := NewSimilarityMatrix([][]float64{
		{1.0, 0.5, 0.2},
		{0.5, 1.0, 0.7},
		{0.2, 0.7, 1.0},
	})
	if err != nil {
		t.Fatalf("NewSimilarityMatrix() error = %v", err)
	}
	if m.Dim() != 3 {
		t.Errorf("Dim() = %d, want 3", m.Dim())
	}
}

func TestNewSimilarityMatrixRejectsRagged(t *testing.T) {
	t.Parallel()

	_, err := NewSimilarityMatrix([][]float64{
		{1.0, 0.5},
		{0.5},
	})
	if err == nil {
		t.Fatal("expected error for non-square matrix")
	}
}

func TestRow(t *testing.T) {
	t.Parallel()

	m, err := NewSimilarityMatrix([][]float64{
		{1.0, 0.3},
		{0.3, 1.0},
	})
	if err != nil {
		t.Fatalf("NewSimilarityMatrix() error = %v", err)
	}

	row, err := m.Row(1)
	if err != nil {
		t.Fatalf("Row(1) error = %v", err)
	}
	if row[0] != 0.3 || row[1] != 1.0 {
		t.Errorf("Row(1) = %v, want [0.3 1.0]", row)
	}

	for _, i := range []int{-1, 2, 50} {
		if _, err := m.Row(i); err == nil {
			t.Errorf("Row(%d) expected out of range error", i)
		}
	}
}
