package main

import (
	"errors"
	"fmt"

	"github.com/openny/stylemind/internal/crawling"
	"github.com/openny/stylemind/internal/logging"
	"github.com/openny/stylemind/internal/schemas"
	"github.com/openny/stylemind/internal/style"
	"github.com/openny/stylemind/internal/types"
	schemafiles "github.com/openny/stylemind/schemas"
	"github.com/spf13/cobra"
)

var analyzeStyleCmd = &cobra.Command{
	Use:   "analyze-style",
	Short: "Retrieve blog posts and compute their style profile",
	Long:  "Retrieves every --url concurrently, aggregates the extracted text and prints the resulting style profile as JSON.",
	RunE:  runAnalyzeStyle,
}

var (
	analyzeStyleURLs   []string
	analyzeStyleOutput string
)

func init() {
	analyzeStyleCmd.Flags().StringSliceVarP(&analyzeStyleURLs, "url", "u", nil, "Blog post URL (repeatable, required)")
	analyzeStyleCmd.Flags().StringVarP(&analyzeStyleOutput, "out", "o", "", "Output JSON file (default: stdout)")

	if err := analyzeStyleCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeStyleCmd)
}

func runAnalyzeStyle(cmd *cobra.Command, _ []string) error {
	if err := crawling.RequireURLs(analyzeStyleURLs); err != nil {
		return err
	}

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	ctx, cancel := signalContext()
	defer cancel()

	docs := a.newCoordinator().Collect(ctx, analyzeStyleURLs)
	if a.cfg.Verbose {
		a.printer.PrintSources(docs)
	}

	profile, err := analyzeText(crawling.Aggregate(docs))
	if err != nil {
		return err
	}
	a.logger.Info("style profile computed",
		logging.Int("sentences", profile.SentenceCount),
		logging.Bool("polite", profile.IsPolite),
	)
	if a.cfg.Verbose {
		a.printer.PrintStyleProfile(profile)
	}

	return writeJSON(analyzeStyleOutput, profile)
}

// analyzeText profiles text and checks the result against the published schema.
func analyzeText(text string) (*types.StyleProfile, error) {
	profile, err := style.NewDefaultProfiler().Analyze(text)
	if errors.Is(err, style.ErrNoAnalyzableText) {
		return nil, fmt.Errorf("no analyzable text: every source failed or produced no sentences")
	}
	if err != nil {
		return nil, err
	}

	if err := schemas.Validate(schemafiles.StyleProfile, profile); err != nil {
		return nil, fmt.Errorf("style profile failed schema validation: %w", err)
	}
	return profile, nil
}
