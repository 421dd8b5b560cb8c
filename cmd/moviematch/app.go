package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drew-myers/moviematch/internal/catalog"
	"github.com/drew-myers/moviematch/internal/config"
	"github.com/drew-myers/moviematch/internal/embed"
)

type app struct {
	embedderFor func(cfg *config.Config) (embed.Embedder, error)
}

func newApp() *app {
	return &app{embedderFor: openAIEmbedder}
}

func openAIEmbedder(cfg *config.Config) (embed.Embedder, error) {
	return embed.NewOpenAIEmbedder(
		cfg.Embeddings.APIKey,
		cfg.Embeddings.Model,
		cfg.Embeddings.Dimension,
		embed.WithBaseURL(cfg.Embeddings.BaseURL),
	)
}

// loadConfig layers .env, the config file, environment and finally any
// flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("movies") {
		cfg.Data.Movies, _ = flags.GetString("movies")
	}
	if flags.Changed("embeddings") {
		cfg.Data.Embeddings, _ = flags.GetString("embeddings")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openCatalog loads the startup artifacts and checks them against the
// embedder, so a model or dimension mismatch fails before the first query.
func openCatalog(cfg *config.Config, emb embed.Embedder) (*catalog.Catalog, error) {
	cat, err := catalog.Load(cfg.Data.Movies, cfg.Data.Embeddings)
	if err != nil {
		return nil, err
	}

	if emb != nil && cat.Len() > 0 && cat.Dimension() != emb.Dimension() {
		return nil, &catalog.LoadError{
			Path: cfg.Data.Embeddings,
			Err:  fmt.Errorf("embedding dimension %d does not match provider dimension %d", cat.Dimension(), emb.Dimension()),
		}
	}
	return cat, nil
}
