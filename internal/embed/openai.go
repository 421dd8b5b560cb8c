package embed

import (
	"context"
	"fmt"
	"sort"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const DefaultModel = "text-embedding-3-small"

var _ Embedder = (*OpenAIEmbedder)(nil)

type OpenAIEmbedder struct {
	client    openai.Client
	model     string
	dimension int
}

type OpenAIOption func(*openAIConfig)

type openAIConfig struct {
	baseURL    string
	maxRetries int
}

func WithBaseURL(url string) OpenAIOption {
	return func(c *openAIConfig) { c.baseURL = url }
}

func WithMaxRetries(n int) OpenAIOption {
	return func(c *openAIConfig) { c.maxRetries = n }
}

// NewOpenAIEmbedder requests vectors of the given dimension from the
// embeddings endpoint.
func NewOpenAIEmbedder(apiKey, model string, dimension int, opts ...OpenAIOption) (*OpenAIEmbedder, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if dimension <= 0 {
		return nil, fmt.Errorf("invalid embedding dimension %d", dimension)
	}
	if model == "" {
		model = DefaultModel
	}

	cfg := openAIConfig{maxRetries: 2}
	for _, o := range opts {
		o(&cfg)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(cfg.maxRetries),
	}
	if cfg.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.baseURL))
	}

	return &OpenAIEmbedder{
		client:    openai.NewClient(reqOpts...),
		model:     model,
		dimension: dimension,
	}, nil
}

func (e *OpenAIEmbedder) Dimension() int {
	return e.dimension
}

func (e *OpenAIEmbedder) Model() string {
	return e.model
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, ErrNoInput
	}

	resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input:          openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
		Model:          openai.EmbeddingModel(e.model),
		Dimensions:     openai.Int(int64(e.dimension)),
		EncodingFormat: openai.EmbeddingNewParamsEncodingFormatFloat,
	})
	if err != nil {
		return nil, fmt.Errorf("create embeddings: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	data := resp.Data
	sort.SliceStable(data, func(a, b int) bool { return data[a].Index < data[b].Index })

	out := make([][]float64, len(data))
	for i, d := range data {
		if int(d.Index) != i {
			return nil, fmt.Errorf("embedding index %d missing from response", i)
		}
		if len(d.Embedding) != e.dimension {
			return nil, fmt.Errorf("embedding %d has dimension %d, expected %d", i, len(d.Embedding), e.dimension)
		}
		out[i] = d.Embedding
	}

	return out, nil
}
