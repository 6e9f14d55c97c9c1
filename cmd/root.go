package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "novelscope",
		Short: "Novel curation and LLM-powered character analysis tool",
		Long: `NovelScope curates a catalog of classic novels from the Project Gutenberg
corpus and analyzes them with LLMs: plot summaries, character extraction,
Big Five personality profiles and first-person persona retellings.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			if verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	cmd.AddCommand(newCurateCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}
