// Package catalog loads the fixed movie table and its precomputed embedding
// matrix. A Catalog is built once at startup and never mutated.
package catalog

import (
	"fmt"

	"github.com/drew-myers/moviematch/internal/ranker"
)

type Catalog struct {
	movies         []Movie
	ranker         *ranker.Ranker
	moviesPath     string
	embeddingsPath string
}

// Load reads both artifacts and checks that row i of the matrix has a movie
// i to belong to.
func Load(moviesPath, embeddingsPath string) (*Catalog, error) {
	movies, err := LoadMovies(moviesPath)
	if err != nil {
		return nil, err
	}

	rows, err := LoadEmbeddings(embeddingsPath)
	if err != nil {
		return nil, err
	}

	c, err := New(movies, rows)
	if err != nil {
		return nil, &LoadError{Path: embeddingsPath, Err: err}
	}
	c.moviesPath = moviesPath
	c.embeddingsPath = embeddingsPath
	return c, nil
}

// New pairs movies with their embedding rows by position.
func New(movies []Movie, rows [][]float64) (*Catalog, error) {
	if len(movies) != len(rows) {
		return nil, fmt.Errorf("%w: %d movies, %d embeddings", ErrRowMismatch, len(movies), len(rows))
	}

	r, err := ranker.New(rows)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		movies: append([]Movie(nil), movies...),
		ranker: r,
	}, nil
}

func (c *Catalog) Len() int {
	return len(c.movies)
}

func (c *Catalog) Dimension() int {
	return c.ranker.Dimension()
}

func (c *Catalog) Movie(i int) (Movie, bool) {
	if i < 0 || i >= len(c.movies) {
		return Movie{}, false
	}
	return c.movies[i], true
}

func (c *Catalog) Movies() []Movie {
	return append([]Movie(nil), c.movies...)
}

func (c *Catalog) Ranker() *ranker.Ranker {
	return c.ranker
}

func (c *Catalog) MoviesPath() string {
	return c.moviesPath
}

func (c *Catalog) EmbeddingsPath() string {
	return c.embeddingsPath
}
