package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openny/stylemind/internal/llm"
	"github.com/openny/stylemind/internal/logging"
	"github.com/openny/stylemind/internal/schemas"
	"github.com/openny/stylemind/internal/types"
	"github.com/openny/stylemind/internal/writer"
	schemafiles "github.com/openny/stylemind/schemas"
	"github.com/spf13/cobra"
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write a blog post in a captured style",
	Long:  "Describes --image with the vision model, then writes a post about --topic following the style directive stored in --style.",
	RunE:  runWrite,
}

var (
	writeTopic     string
	writeStylePath string
	writeImagePath string
	writeOutput    string
	writeAPIKey    string
)

func init() {
	writeCmd.Flags().StringVarP(&writeTopic, "topic", "t", "", "Post topic (required)")
	writeCmd.Flags().StringVarP(&writeStylePath, "style", "s", "", "Style profile JSON from analyze-style or profile (required)")
	writeCmd.Flags().StringVar(&writeImagePath, "image", "", "Image to describe and weave into the post (required)")
	writeCmd.Flags().StringVarP(&writeOutput, "out", "o", "", "Output markdown file (default: stdout)")
	writeCmd.Flags().StringVar(&writeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	for _, name := range []string{"topic", "style", "image"} {
		if err := writeCmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}

	rootCmd.AddCommand(writeCmd)
}

func runWrite(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	apiKey := writeAPIKey
	if apiKey == "" {
		apiKey = a.cfg.APIKey
	}
	if apiKey == "" {
		return fmt.Errorf("API key required: set --api-key flag or GEMINI_API_KEY environment variable")
	}

	profile, err := loadStyleProfile(writeStylePath)
	if err != nil {
		return err
	}
	image, err := os.ReadFile(writeImagePath)
	if err != nil {
		return fmt.Errorf("failed to read image %s: %w", writeImagePath, err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	w := writer.New(client, a.logger)
	description, err := w.DescribeImage(ctx, image, "")
	if err != nil {
		return err
	}
	a.logger.Debug("image described", logging.Int("runes", len([]rune(description))))

	post, err := w.WritePost(ctx, writer.Request{
		Topic:            writeTopic,
		ImageDescription: description,
		StyleDirective:   profile.StyleDirective,
	})
	if err != nil {
		return err
	}

	if writeOutput == "" {
		_, err = fmt.Fprintln(os.Stdout, post)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(writeOutput), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", writeOutput, err)
	}
	if err := os.WriteFile(writeOutput, []byte(post+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", writeOutput, err)
	}
	printErr("Post written to %s", writeOutput)
	return nil
}

// loadStyleProfile reads a profile JSON file after checking it against the schema.
func loadStyleProfile(path string) (*types.StyleProfile, error) {
	if err := schemas.ValidateFile(schemafiles.StyleProfile, path); err != nil {
		return nil, fmt.Errorf("invalid style profile %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style profile %s: %w", path, err)
	}
	var profile types.StyleProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse style profile %s: %w", path, err)
	}
	return &profile, nil
}
