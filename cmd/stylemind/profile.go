package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Compute the style profile of a local text file",
	Long:  "Analyzes an existing corpus (for example corpus.txt from the crawl command) without any network access.",
	RunE:  runProfile,
}

var (
	profileInput  string
	profileOutput string
)

func init() {
	profileCmd.Flags().StringVarP(&profileInput, "in", "i", "", "Input text file (required)")
	profileCmd.Flags().StringVarP(&profileOutput, "out", "o", "", "Output JSON file (default: stdout)")

	if err := profileCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	text, err := os.ReadFile(profileInput)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", profileInput, err)
	}

	profile, err := analyzeText(string(text))
	if err != nil {
		return err
	}
	if a.cfg.Verbose {
		a.printer.PrintStyleProfile(profile)
	}
	return writeJSON(profileOutput, profile)
}
