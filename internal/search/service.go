// Package search answers free-text movie queries against a catalog.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/drew-myers/moviematch/internal/catalog"
	"github.com/drew-myers/moviematch/internal/embed"
	"github.com/drew-myers/moviematch/internal/logging"
	"github.com/drew-myers/moviematch/internal/ranker"
)

const (
	DefaultTopK    = 5
	DefaultTimeout = 15 * time.Second
)

var ErrEmptyQuery = errors.New("please enter a description first")

// ProviderError wraps a failed or timed out embedding call.
type ProviderError struct {
	Err     error
	Timeout bool
}

func (e *ProviderError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("embedding provider timed out: %v", e.Err)
	}
	return fmt.Sprintf("embedding provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

type Service struct {
	catalog  *catalog.Catalog
	embedder embed.Embedder
	topK     int
	timeout  time.Duration
	log      logrus.FieldLogger
}

type Option func(*Service)

func WithTopK(k int) Option {
	return func(s *Service) { s.topK = k }
}

func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Service) { s.log = log }
}

func NewService(cat *catalog.Catalog, emb embed.Embedder, opts ...Option) *Service {
	s := &Service{
		catalog:  cat,
		embedder: emb,
		topK:     DefaultTopK,
		timeout:  DefaultTimeout,
		log:      logging.Discard(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) TopK() int {
	return s.topK
}

func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Search embeds text and returns the TopK closest movies.
func (s *Service) Search(ctx context.Context, text string) ([]Result, error) {
	return s.SearchK(ctx, text, s.topK)
}

// SearchK is Search with an explicit result count. Blank text is rejected
// before the provider is called.
func (s *Service) SearchK(ctx context.Context, text string, k int) ([]Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyQuery
	}

	start := time.Now()
	log := s.log.WithFields(logrus.Fields{
		"query_len": len(text),
		"k":         k,
	})

	query, err := s.embed(ctx, text)
	if err != nil {
		log.WithError(err).Warn("embed query failed")
		return nil, err
	}

	matches, err := s.catalog.Ranker().Rank(query, k)
	if err != nil {
		log.WithError(err).Warn("rank failed")
		return nil, fmt.Errorf("rank: %w", err)
	}

	results := make([]Result, 0, len(matches))
	for i, m := range matches {
		movie, ok := s.catalog.Movie(m.Index)
		if !ok {
			return nil, fmt.Errorf("rank: index %d outside catalog of %d movies", m.Index, s.catalog.Len())
		}
		results = append(results, Result{
			Rank:  i + 1,
			Index: m.Index,
			Movie: movie,
			Score: m.Score,
		})
	}

	if s.catalog.Len() == 0 {
		log.Warn("catalog is empty")
	}
	log.WithFields(logrus.Fields{
		"results": len(results),
		"elapsed": time.Since(start).String(),
	}).Info("search")

	return results, nil
}

func (s *Service) embed(ctx context.Context, text string) ([]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	vecs, err := s.embedder.Embed(ctx, []string{text})
	if err != nil {
		return nil, &ProviderError{Err: err, Timeout: errors.Is(err, context.DeadlineExceeded)}
	}
	if len(vecs) != 1 {
		return nil, &ProviderError{Err: fmt.Errorf("expected 1 embedding, got %d", len(vecs))}
	}
	return vecs[0], nil
}

// IsInvalidInput reports whether err is a rejected query rather than a
// provider or catalog failure.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrEmptyQuery) || errors.Is(err, ranker.ErrInvalidInput)
}
