package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/drew-myers/moviematch/internal/logging"
	"github.com/drew-myers/moviematch/internal/search"
	"github.com/drew-myers/moviematch/internal/tui"
)

func makeInteractiveRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		log, closer, err := logging.NewFile(cfg.Log.File, cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}
		defer closer.Close()

		emb, err := a.embedderFor(cfg)
		if err != nil {
			return err
		}

		cat, err := openCatalog(cfg, emb)
		if err != nil {
			log.WithError(err).Error("startup aborted")
			return err
		}
		log.WithField("movies", cat.Len()).WithField("dimension", cat.Dimension()).Info("catalog loaded")

		svc := search.NewService(cat, emb,
			search.WithTopK(cfg.Search.TopK),
			search.WithTimeout(cfg.Embeddings.Timeout),
			search.WithLogger(log),
		)

		model := tui.New(cmd.Context(), svc, tui.Options{
			DefaultQuery: cfg.Search.Default,
			CatalogSize:  cat.Len(),
			Dimension:    cat.Dimension(),
		})

		p := tea.NewProgram(model, tea.WithContext(cmd.Context()), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run ui: %w", err)
		}
		return nil
	}
}
