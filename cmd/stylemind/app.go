package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/openny/stylemind/internal/config"
	"github.com/openny/stylemind/internal/crawling"
	"github.com/openny/stylemind/internal/fetch"
	"github.com/openny/stylemind/internal/logging"
	"github.com/openny/stylemind/internal/observability"
	"github.com/spf13/cobra"
)

// app carries what every command needs once flags and config are resolved.
type app struct {
	cfg     config.Config
	logger  logging.Logger
	printer *observability.Printer
}

// loadApp resolves configuration in order: defaults, config file, environment, flags.
func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if cfg.Verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{Level: level, Console: true})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		printer: observability.NewPrinter(os.Stderr),
	}, nil
}

func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	fileCfg := &config.Config{}
	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = loaded
	}
	cfg := fileCfg.MergeWithDefaults(config.DefaultConfig())

	if key := os.Getenv("GEMINI_API_KEY"); key != "" && cfg.APIKey == "" {
		cfg.APIKey = key
	}
	if cmd.Flags().Changed("renderer") {
		cfg.Renderer = rootRenderer
	}
	if rootVerbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newExtractor wires the configured renderer into a content extractor.
func (a *app) newExtractor() *fetch.Extractor {
	var renderer fetch.Renderer
	switch a.cfg.Renderer {
	case config.RendererHTTP:
		renderer = fetch.NewHTTPRenderer(&fetch.Options{
			Timeout:   a.cfg.NavigationTimeout(),
			UserAgent: a.cfg.UserAgent,
		})
	default:
		preparer := fetch.NewBrowserPreparer(a.cfg.ChromePath, a.cfg.InstallCommand, a.logger)
		renderer = fetch.NewBrowserRenderer(fetch.BrowserOptions{
			UserAgent: a.cfg.UserAgent,
			Headful:   a.cfg.Headful,
			IdleWait:  a.cfg.IdleWait(),
			TextWait:  a.cfg.ElementWait(),
		}, preparer, a.logger)
	}

	return fetch.NewExtractor(renderer,
		fetch.WithStrategies(fetch.DefaultStrategies(a.cfg.ElementWait())),
		fetch.WithTimeout(a.cfg.NavigationTimeout()),
		fetch.WithLogger(a.logger),
	)
}

func (a *app) newCoordinator() *crawling.Coordinator {
	return crawling.NewCoordinator(a.newExtractor(), a.cfg.MaxConcurrency, a.logger)
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// writeJSON writes v as indented JSON to path, or to stdout when path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// printErr writes a status line to stderr, keeping stdout for results.
func printErr(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
}
