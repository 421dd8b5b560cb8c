package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drew-myers/moviematch/internal/config"
	"github.com/drew-myers/moviematch/internal/embed"
)

var vocabulary = []string{"shark", "dinosaur", "space"}

// keywordEmbedder counts vocabulary words, giving tests a tiny embedding
// space where the right answer is obvious.
type keywordEmbedder struct {
	calls int
}

func (e *keywordEmbedder) Dimension() int { return len(vocabulary) }

func (e *keywordEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	e.calls++
	out := make([][]float64, len(texts))
	for i, t := range texts {
		vec := make([]float64, len(vocabulary))
		lower := strings.ToLower(t)
		for j, w := range vocabulary {
			vec[j] = float64(strings.Count(lower, w))
		}
		out[i] = vec
	}
	return out, nil
}

const testMoviesCSV = `Title,Release Year,Plot
Jaws,1975,"A great white shark terrorizes a beach town."
Jurassic Park,1993,"Cloned dinosaur attractions escape on an island."
Alien,1979,"A space freighter crew meets a deadly creature in space."
`

type fixture struct {
	dir        string
	movies     string
	embeddings string
	config     string
	embedder   *keywordEmbedder
	app        *app
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()

	f := &fixture{
		dir:        dir,
		movies:     filepath.Join(dir, "movies.csv"),
		embeddings: filepath.Join(dir, "movies.npy"),
		config:     filepath.Join(dir, "moviematch.yaml"),
		embedder:   &keywordEmbedder{},
	}
	require.NoError(t, os.WriteFile(f.movies, []byte(testMoviesCSV), 0644))

	cfg := config.DefaultConfig()
	cfg.Data.Movies = f.movies
	cfg.Data.Embeddings = f.embeddings
	cfg.Embeddings.Dimension = len(vocabulary)
	cfg.Log.Level = "error"
	cfg.Log.File = filepath.Join(dir, "moviematch.log")
	require.NoError(t, config.Save(f.config, cfg))

	f.app = &app{embedderFor: func(*config.Config) (embed.Embedder, error) {
		return f.embedder, nil
	}}
	return f
}

func (f *fixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd("test", f.app)
	cmd.SetArgs(append(args, "--config", f.config))

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), err
}

func (f *fixture) build(t *testing.T) {
	t.Helper()
	_, err := f.run(t, "build-embeddings")
	require.NoError(t, err)
}
