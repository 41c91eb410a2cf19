// MovieMitra - Movie Similarity and Watchlist API
// Copyright 2026 MovieMitra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moviemitra/moviemitra

package recommend

import (
	"errors"
	"sort"
	"time"

	"github.com/moviemitra/moviemitra/internal/catalog"
	"github.com/moviemitra/moviemitra/internal/metrics"
)

// ErrRowOutOfRange is returned when the query row index does not exist in
// the similarity matrix.
var ErrRowOutOfRange = errors.New("recommend: row index out of range")

// DefaultK is the number of neighbors returned when the caller does not
// specify one.
const DefaultK = 10

// Neighbor is one ranked result: a catalog row and its similarity score
// against the query row.
type Neighbor struct {
	RowIndex int
	Score    float64
}

// Recommender selects the most similar catalog rows for a query row using
// the precomputed matrix. It is stateless beyond the matrix reference and
// safe for concurrent use.
type Recommender struct {
	matrix *catalog.SimilarityMatrix
}

// NewRecommender creates a recommender over the given matrix.
func NewRecommender(matrix *catalog.SimilarityMatrix) *Recommender {
	return &Recommender{matrix: matrix}
}

// Recommend returns up to k neighbors for rowIndex, ranked by descending
// score. Ties keep catalog order, so results are deterministic for a given
// matrix. The top-ranked candidate is always discarded before taking k
// results; see the package documentation for the implications. At most
// dim-1 neighbors can be returned. A non-positive k uses DefaultK.
func (r *Recommender) Recommend(rowIndex, k int) ([]Neighbor, error) {
	start := time.Now()

	scores, err := r.matrix.Row(rowIndex)
	if err != nil {
		return nil, ErrRowOutOfRange
	}
	if k <= 0 {
		k = DefaultK
	}

	ranked := make([]Neighbor, len(scores))
	for i, s := range scores {
		ranked[i] = Neighbor{RowIndex: i, Score: s}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	// Take the top k+1 and drop the highest-ranked entry.
	take := k + 1
	if take > len(ranked) {
		take = len(ranked)
	}
	out := []Neighbor{}
	if take > 1 {
		out = ranked[1:take]
	}

	metrics.RecordRecommendation(len(out), time.Since(start))
	return out, nil
}
