package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/openny/stylemind/internal/crawling"
	"github.com/openny/stylemind/internal/schemas"
	"github.com/openny/stylemind/internal/types"
	schemafiles "github.com/openny/stylemind/schemas"
	"github.com/spf13/cobra"
)

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Retrieve blog posts and save the aggregated corpus",
	Long:  "Retrieves every --url concurrently and writes corpus.txt plus corpus.sources.json with the per-URL outcome.",
	RunE:  runCrawl,
}

var (
	crawlURLs      []string
	crawlOutputDir string
)

func init() {
	crawlCmd.Flags().StringSliceVarP(&crawlURLs, "url", "u", nil, "Blog post URL (repeatable, required)")
	crawlCmd.Flags().StringVarP(&crawlOutputDir, "out", "o", "", "Output directory (required)")

	if err := crawlCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}
	if err := crawlCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(crawlCmd)
}

// corpusSources is the on-disk shape of corpus.sources.json.
type corpusSources struct {
	ID           uuid.UUID              `json:"id"`
	SuccessCount int                    `json:"success_count"`
	Sources      []types.SourceDocument `json:"sources"`
}

func runCrawl(cmd *cobra.Command, _ []string) error {
	if err := crawling.RequireURLs(crawlURLs); err != nil {
		return err
	}

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	ctx, cancel := signalContext()
	defer cancel()

	corpus := a.newCoordinator().BuildCorpus(ctx, crawlURLs)
	if a.cfg.Verbose {
		a.printer.PrintSources(corpus.Sources)
	}

	corpusPath, sourcesPath, err := writeCorpus(crawlOutputDir, corpus)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Retrieved %d of %d posts\n", corpus.SuccessCount(), len(corpus.Sources))
	_, _ = fmt.Fprintf(os.Stdout, "Corpus: %s\n", corpusPath)
	_, _ = fmt.Fprintf(os.Stdout, "Sources: %s\n", sourcesPath)
	return nil
}

// writeCorpus writes corpus.txt and corpus.sources.json into dir.
func writeCorpus(dir string, corpus *types.Corpus) (string, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	corpusPath := filepath.Join(dir, "corpus.txt")
	if err := os.WriteFile(corpusPath, []byte(corpus.Text), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write corpus file %s: %w", corpusPath, err)
	}

	sources := corpusSources{ID: corpus.ID, SuccessCount: corpus.SuccessCount(), Sources: corpus.Sources}
	if err := schemas.Validate(schemafiles.CorpusSources, sources); err != nil {
		return "", "", fmt.Errorf("sources failed schema validation: %w", err)
	}

	sourcesPath := filepath.Join(dir, "corpus.sources.json")
	if err := writeJSON(sourcesPath, sources); err != nil {
		return "", "", err
	}
	return corpusPath, sourcesPath, nil
}
