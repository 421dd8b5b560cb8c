package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drew-myers/moviematch/internal/logging"
	"github.com/drew-myers/moviematch/internal/search"
)

func NewSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <description>",
		Short: "Find movies matching a description",
		Long:  `Embed a free-text description and print the closest movies by cosine similarity.`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  makeSearchRunner(a),
	}

	cmd.Flags().IntP("number", "n", 0, "Maximum results (default from config)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("plot", false, "Print each plot under its title")
	return cmd
}

func makeSearchRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		limit, _ := cmd.Flags().GetInt("number")
		asJSON, _ := cmd.Flags().GetBool("json")
		withPlot, _ := cmd.Flags().GetBool("plot")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if limit <= 0 {
			limit = cfg.Search.TopK
		}

		log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}

		emb, err := a.embedderFor(cfg)
		if err != nil {
			return err
		}

		cat, err := openCatalog(cfg, emb)
		if err != nil {
			return err
		}

		svc := search.NewService(cat, emb,
			search.WithTimeout(cfg.Embeddings.Timeout),
			search.WithLogger(log),
		)

		results, err := svc.SearchK(cmd.Context(), query, limit)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}

		if asJSON {
			return outputResultsJSON(cmd, results)
		}

		out := cmd.OutOrStdout()
		for _, r := range results {
			fmt.Fprintf(out, "%4s  %s (%d)\n", r.Percent(), r.Movie.Title, r.Movie.ReleaseYear)
			if withPlot {
				fmt.Fprintf(out, "      %s\n", r.Movie.Plot)
			}
		}
		return nil
	}
}

func outputResultsJSON(cmd *cobra.Command, results []search.Result) error {
	out := make([]map[string]any, 0, len(results))
	for _, r := range results {
		out = append(out, map[string]any{
			"rank":         r.Rank,
			"index":        r.Index,
			"title":        r.Movie.Title,
			"release_year": r.Movie.ReleaseYear,
			"plot":         r.Movie.Plot,
			"score":        r.Score,
			"match":        r.Percent(),
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
