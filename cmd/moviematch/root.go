package main

import (
	"github.com/spf13/cobra"
)

func NewRootCmd(version string, a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "moviematch",
		Short:         "Semantic movie matcher",
		Long:          `Describe a movie vaguely and find it by meaning, not keywords.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	addPersistentFlags(rootCmd)

	if a != nil {
		rootCmd.RunE = makeInteractiveRunner(a)
		rootCmd.AddCommand(
			NewSearchCmd(a),
			NewInfoCmd(a),
			NewBuildEmbeddingsCmd(a),
		)
	}

	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "Config file (default moviematch.yaml)")
	cmd.PersistentFlags().String("movies", "", "Movie table CSV")
	cmd.PersistentFlags().String("embeddings", "", "Embedding matrix .npy")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
}
