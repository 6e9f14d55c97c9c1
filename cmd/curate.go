package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/novelscope/novelscope/internal/catalogstore"
	"github.com/novelscope/novelscope/internal/corpus"
	"github.com/novelscope/novelscope/internal/curation"
	"github.com/novelscope/novelscope/internal/gemini"
	"github.com/novelscope/novelscope/internal/translation"
	"github.com/spf13/cobra"
)

// streamCorpus adapts a corpus stream to the scanner's document iterator
type streamCorpus struct {
	stream corpus.Stream
}

func (s *streamCorpus) Next() (curation.Document, error) {
	record, err := s.stream.Next()
	if err != nil {
		return curation.Document{}, err
	}
	return curation.Document{Text: record.Text}, nil
}

func newCurateCmd() *cobra.Command {
	var (
		datasetPath   string
		shard         string
		outputDir     string
		reportDir     string
		minLength     int
		scanLimit     int
		targetCount   int
		skipTranslate bool
	)

	cmd := &cobra.Command{
		Use:   "curate",
		Short: "Build the curated novel catalog from the Gutenberg corpus",
		Long: `Scans a Project Gutenberg corpus shard for full-length novels, keeps
famous titles first, translates the title list into Korean and writes the
catalog artifacts (books_data.json, korean_map.json) consumed by
"novelscope serve".

Without --dataset the default English shard is downloaded from
HuggingFace and cached locally.`,
		Example: `  # Curate from the default HuggingFace shard
  novelscope curate

  # Curate from a local parquet or JSONL file, skipping translation
  novelscope curate --dataset ./en-00000.parquet --skip-translate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := os.Getenv("GEMINI_MODEL")
			if model == "" {
				model = "gemini-1.5-flash-latest"
			}

			if !skipTranslate {
				if _, err := gemini.APIKey(); err != nil {
					return fmt.Errorf("%w (use --skip-translate to keep English titles)", err)
				}
			}

			var stream corpus.Stream
			var err error
			corpusLabel := datasetPath
			if datasetPath != "" {
				stream, err = corpus.Open(datasetPath)
			} else {
				corpusLabel = corpus.HFDatasetRepo + "/" + shard
				stream, err = corpus.OpenOrDownload(shard, corpus.DownloadConfig{
					Token: os.Getenv("HF_TOKEN"),
				})
			}
			if err != nil {
				return fmt.Errorf("unable to open corpus: %w", err)
			}
			defer stream.Close()

			slog.Info("Starting curation scan",
				"corpus", corpusLabel,
				"min_length", minLength,
				"scan_limit", scanLimit,
				"target", targetCount)

			classifier := curation.NewClassifier(curation.DefaultPriorityKeywords, targetCount)
			stats, err := curation.Scan(&streamCorpus{stream: stream}, classifier, curation.ScanConfig{
				MinLength:   minLength,
				ScanLimit:   scanLimit,
				TargetCount: targetCount,
			})
			if err != nil {
				return fmt.Errorf("corpus scan failed: %w", err)
			}

			priority, other := classifier.Partition()
			catalog := curation.Build(priority, other)
			if len(catalog.OrderedTitles) == 0 {
				return fmt.Errorf("no novels matched the curation filters")
			}

			titleMap := translation.IdentityMap(catalog.OrderedTitles)
			translated := false
			if !skipTranslate {
				translator := translation.New(gemini.New(), model, 0.3)
				titleMap, translated = translator.TranslateTitles(cmd.Context(), catalog.OrderedTitles)
			}

			if err := catalogstore.Save(outputDir, catalog.TextByTitle, titleMap); err != nil {
				return err
			}

			report := curation.NewReport(curation.ReportConfig{
				CorpusPath:  corpusLabel,
				MinLength:   minLength,
				ScanLimit:   scanLimit,
				TargetCount: targetCount,
				Model:       model,
			}, stats, classifier, translated)
			reportPath, err := curation.SaveReport(reportDir, report)
			if err != nil {
				return err
			}

			fmt.Printf("Curated %d novels (%d priority, %d other)\n",
				len(catalog.OrderedTitles), len(priority), len(other))
			fmt.Printf("Scanned %d documents: %d too short, %d without a title, %d duplicates, %d rejected\n",
				stats.Scanned, stats.SkippedShort, stats.SkippedNoTitle, stats.SkippedDuplicate, stats.Rejected)
			fmt.Printf("Catalog written to %s\n", outputDir)
			fmt.Printf("Report written to %s\n", reportPath)
			fmt.Printf("\nStart the analysis interface with:\n  novelscope serve --catalog %s\n", outputDir)

			return nil
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "", "Local corpus file (.parquet or .jsonl); downloads the default shard when empty")
	cmd.Flags().StringVar(&shard, "shard", corpus.DefaultShard, "HuggingFace shard to download when no local dataset is given")
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Directory for the catalog artifacts")
	cmd.Flags().StringVar(&reportDir, "report-dir", "reports", "Directory for curation run reports")
	cmd.Flags().IntVar(&minLength, "min-length", curation.DefaultMinLength, "Minimum document length in characters")
	cmd.Flags().IntVar(&scanLimit, "scan-limit", curation.DefaultScanLimit, "Maximum number of documents to scan")
	cmd.Flags().IntVar(&targetCount, "target", curation.DefaultTargetCount, "Number of novels to collect")
	cmd.Flags().BoolVar(&skipTranslate, "skip-translate", false, "Keep English titles instead of translating them")

	return cmd
}
