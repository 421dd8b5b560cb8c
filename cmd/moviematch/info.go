package main

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func NewInfoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show catalog statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			cat, err := openCatalog(cfg, nil)
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"movies":          cat.Len(),
					"dimension":       cat.Dimension(),
					"movies_file":     cat.MoviesPath(),
					"embeddings_file": cat.EmbeddingsPath(),
					"model":           cfg.Embeddings.Model,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Movies:     %s\n", humanize.Comma(int64(cat.Len())))
			fmt.Fprintf(out, "Dimension:  %d\n", cat.Dimension())
			fmt.Fprintf(out, "Model:      %s\n", cfg.Embeddings.Model)
			fmt.Fprintf(out, "Table:      %s\n", cat.MoviesPath())
			fmt.Fprintf(out, "Embeddings: %s\n", cat.EmbeddingsPath())
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	return cmd
}
