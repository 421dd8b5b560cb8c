package embed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lengthEmbedder struct {
	calls [][]string
	fail  int
}

func (e *lengthEmbedder) Dimension() int { return 1 }

func (e *lengthEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	e.calls = append(e.calls, texts)
	if e.fail > 0 && len(e.calls) == e.fail {
		return nil, errors.New("boom")
	}
	out := make([][]float64, len(texts))
	for i, s := range texts {
		out[i] = []float64{float64(len(s))}
	}
	return out, nil
}

func TestBatch(t *testing.T) {
	e := &lengthEmbedder{}
	var progress [][2]int

	vecs, err := Batch(context.Background(), e, []string{"a", "bb", "ccc", "dddd", "eeeee"}, 2, func(done, total int) {
		progress = append(progress, [2]int{done, total})
	})
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1}, {2}, {3}, {4}, {5}}, vecs)
	assert.Len(t, e.calls, 3)
	assert.Equal(t, [][2]int{{2, 5}, {4, 5}, {5, 5}}, progress)
}

func TestBatchSingleChunk(t *testing.T) {
	e := &lengthEmbedder{}

	vecs, err := Batch(context.Background(), e, []string{"a", "bb"}, 0, nil)
	require.NoError(t, err)
	assert.Len(t, vecs, 2)
	assert.Len(t, e.calls, 1)
}

func TestBatchError(t *testing.T) {
	e := &lengthEmbedder{fail: 2}

	_, err := Batch(context.Background(), e, []string{"a", "b", "c"}, 1, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embed texts 1-1")
}
