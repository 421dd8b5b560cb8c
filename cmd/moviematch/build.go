package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/drew-myers/moviematch/internal/catalog"
	"github.com/drew-myers/moviematch/internal/embed"
	"github.com/drew-myers/moviematch/internal/logging"
)

// NewBuildEmbeddingsCmd precomputes the embedding matrix for the movie
// table. Searches only ever read its output.
func NewBuildEmbeddingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build-embeddings",
		Short: "Precompute plot embeddings for the movie table",
		Long: `Embed every plot in the movie table and write the N x D matrix
that interactive searches load at startup.`,
		Args: cobra.NoArgs,
		RunE: makeBuildRunner(a),
	}

	cmd.Flags().IntP("batch", "b", 0, "Plots per provider request (default from config)")
	cmd.Flags().StringP("out", "o", "", "Output .npy (default: the configured embeddings file)")
	return cmd
}

func makeBuildRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		batch, _ := cmd.Flags().GetInt("batch")
		if batch <= 0 {
			batch = cfg.Embeddings.BatchSize
		}
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = cfg.Data.Embeddings
		}

		log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}

		movies, err := catalog.LoadMovies(cfg.Data.Movies)
		if err != nil {
			return err
		}
		if len(movies) == 0 {
			return fmt.Errorf("%s has no movies", cfg.Data.Movies)
		}

		emb, err := a.embedderFor(cfg)
		if err != nil {
			return err
		}

		plots := make([]string, len(movies))
		for i, m := range movies {
			plots[i] = m.Plot
		}

		start := time.Now()
		vecs, err := embed.Batch(cmd.Context(), emb, plots, batch, func(done, total int) {
			log.WithField("done", done).WithField("total", total).Debug("embedded batch")
		})
		if err != nil {
			return err
		}

		if err := catalog.WriteEmbeddings(out, vecs); err != nil {
			return err
		}

		log.WithField("movies", len(vecs)).WithField("elapsed", time.Since(start).String()).Info("embeddings written")
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d x %d embeddings to %s\n", len(vecs), emb.Dimension(), out)
		return nil
	}
}
