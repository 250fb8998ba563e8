// Package main provides the stylemind CLI: Korean blog style extraction and style-matched writing.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stylemind",
	Short: "Extract a writing-style fingerprint from Korean blogs",
	Long: "stylemind retrieves posts from Naver and Tistory blogs, measures sentence length, " +
		"formality and favourite sentence endings, and turns them into a style directive for post generation.",
	SilenceUsage: true,
}

var (
	rootConfigPath string
	rootVerbose    bool
	rootRenderer   string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootConfigPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print human-readable summaries and debug logs")
	rootCmd.PersistentFlags().StringVar(&rootRenderer, "renderer", "", "Page renderer: browser or http (overrides config)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
