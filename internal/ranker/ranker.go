// Package ranker scores a fixed embedding matrix against a query vector and
// returns the closest rows.
package ranker

import (
	"errors"
	"fmt"
	"sort"
)

var ErrInvalidInput = errors.New("invalid input")

// Match is a row of the matrix and its cosine similarity to the query.
type Match struct {
	Index int
	Score float64
}

// Ranker holds an immutable N x D matrix. Rank may be called concurrently.
type Ranker struct {
	rows  [][]float64
	norms []float64
	dim   int
}

// New copies rows into a ranker. All rows must share one width; an empty
// matrix is allowed.
func New(rows [][]float64) (*Ranker, error) {
	r := &Ranker{
		rows:  make([][]float64, len(rows)),
		norms: make([]float64, len(rows)),
	}
	if len(rows) == 0 {
		return r, nil
	}

	r.dim = len(rows[0])
	for i, row := range rows {
		if len(row) != r.dim {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidInput, i, len(row), r.dim)
		}
		r.rows[i] = append([]float64(nil), row...)
		r.norms[i] = norm(row)
	}

	return r, nil
}

func (r *Ranker) Len() int {
	return len(r.rows)
}

// Dimension is the column count, 0 for an empty matrix.
func (r *Ranker) Dimension() int {
	return r.dim
}

// Rank scores query against every row and returns the k best, highest
// first. Equal scores keep ascending row order. k larger than the matrix is
// capped; an empty matrix yields an empty result.
func (r *Ranker) Rank(query []float64, k int) ([]Match, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", ErrInvalidInput, k)
	}
	if len(r.rows) == 0 {
		return []Match{}, nil
	}
	if len(query) != r.dim {
		return nil, fmt.Errorf("%w: dimension mismatch: expected %d, got %d", ErrInvalidInput, r.dim, len(query))
	}

	qn := norm(query)
	matches := make([]Match, len(r.rows))
	for i, row := range r.rows {
		matches[i] = Match{
			Index: i,
			Score: cosine(query, row, qn, r.norms[i]),
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})

	if k > len(matches) {
		k = len(matches)
	}
	return matches[:k:k], nil
}
