package search

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drew-myers/moviematch/internal/catalog"
	"github.com/drew-myers/moviematch/internal/logging"
	"github.com/drew-myers/moviematch/internal/ranker"
)

type fakeEmbedder struct {
	vectors map[string][]float64
	err     error
	delay   time.Duration
	calls   int
}

func (f *fakeEmbedder) Dimension() int { return 2 }

func (f *fakeEmbedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	f.calls++
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float64, len(texts))
	for i, t := range texts {
		out[i] = f.vectors[t]
	}
	return out, nil
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Movie{
		{Title: "Jaws", ReleaseYear: 1975, Plot: "shark"},
		{Title: "Alien", ReleaseYear: 1979, Plot: "space"},
		{Title: "Deep Blue Sea", ReleaseYear: 1999, Plot: "smart sharks"},
	}, [][]float64{
		{1, 0},
		{0, 1},
		{0.707, 0.707},
	})
	require.NoError(t, err)
	return c
}

func TestSearch(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float64{"shark movie": {1, 0}}}
	svc := NewService(testCatalog(t), emb, WithTopK(2))

	results, err := svc.Search(context.Background(), "  shark movie  ")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, "Jaws", results[0].Movie.Title)
	assert.Equal(t, "100%", results[0].Percent())
	assert.Equal(t, 2, results[1].Rank)
	assert.Equal(t, 2, results[1].Index)
	assert.Equal(t, "Deep Blue Sea", results[1].Movie.Title)
	assert.Equal(t, "71%", results[1].Percent())
}

func TestSearchDefaultTopKCapped(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float64{"q": {0, 1}}}
	svc := NewService(testCatalog(t), emb)
	assert.Equal(t, DefaultTopK, svc.TopK())

	results, err := svc.Search(context.Background(), "q")
	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, "Alien", results[0].Movie.Title)
}

func TestSearchEmptyQuery(t *testing.T) {
	emb := &fakeEmbedder{}
	svc := NewService(testCatalog(t), emb)

	for _, q := range []string{"", "   ", "\n\t"} {
		_, err := svc.Search(context.Background(), q)
		assert.ErrorIs(t, err, ErrEmptyQuery)
		assert.True(t, IsInvalidInput(err))
	}
	assert.Equal(t, 0, emb.calls)
}

func TestSearchDimensionMismatch(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float64{"q": {1, 0, 0}}}
	svc := NewService(testCatalog(t), emb)

	_, err := svc.Search(context.Background(), "q")
	assert.ErrorIs(t, err, ranker.ErrInvalidInput)
	assert.True(t, IsInvalidInput(err))
}

func TestSearchProviderError(t *testing.T) {
	emb := &fakeEmbedder{err: errors.New("rate limited")}
	svc := NewService(testCatalog(t), emb)

	_, err := svc.Search(context.Background(), "q")

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.False(t, pe.Timeout)
	assert.False(t, IsInvalidInput(err))
	assert.Contains(t, err.Error(), "rate limited")
}

func TestSearchProviderTimeout(t *testing.T) {
	emb := &fakeEmbedder{delay: time.Second}
	svc := NewService(testCatalog(t), emb, WithTimeout(10*time.Millisecond))

	_, err := svc.Search(context.Background(), "q")

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.True(t, pe.Timeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "timed out")
}

func TestSearchEmptyCatalog(t *testing.T) {
	c, err := catalog.New(nil, nil)
	require.NoError(t, err)

	emb := &fakeEmbedder{vectors: map[string][]float64{"q": {1, 0}}}
	svc := NewService(c, emb)

	results, err := svc.Search(context.Background(), "q")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchLogs(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, "info", "text")
	require.NoError(t, err)

	emb := &fakeEmbedder{vectors: map[string][]float64{"q": {1, 0}}}
	svc := NewService(testCatalog(t), emb, WithLogger(log))

	_, err = svc.Search(context.Background(), "q")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "msg=search")
	assert.Contains(t, buf.String(), "results=3")
}

func TestResultFormatting(t *testing.T) {
	r := Result{
		Movie: catalog.Movie{Title: "Jaws", ReleaseYear: 1975},
		Score: 0.866,
	}
	assert.Equal(t, "87%", r.Percent())
	assert.Equal(t, "Jaws (1975) - Match: 87%", r.Heading())
	assert.InDelta(t, 0.866, r.Progress(), 1e-9)

	assert.Equal(t, 0.0, Result{Score: -0.2}.Progress())
	assert.Equal(t, 1.0, Result{Score: 1.0000001}.Progress())
}
