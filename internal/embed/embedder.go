// Package embed turns text into sentence embeddings.
package embed

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNoAPIKey = errors.New("OPENAI_API_KEY environment variable not set")
	ErrNoInput  = errors.New("no input texts")
)

// Embedder returns one vector per input text, in input order. Precomputed
// catalog vectors and query vectors must come from the same model and
// dimension or rankings are meaningless.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
	Dimension() int
}

// Batch embeds texts in chunks of size, calling progress after each chunk
// with the number of texts done so far.
func Batch(ctx context.Context, e Embedder, texts []string, size int, progress func(done, total int)) ([][]float64, error) {
	if size <= 0 {
		size = len(texts)
	}

	out := make([][]float64, 0, len(texts))
	for start := 0; start < len(texts); start += size {
		end := min(start+size, len(texts))

		vecs, err := e.Embed(ctx, texts[start:end])
		if err != nil {
			return nil, fmt.Errorf("embed texts %d-%d: %w", start, end-1, err)
		}
		out = append(out, vecs...)

		if progress != nil {
			progress(end, len(texts))
		}
	}

	return out, nil
}
