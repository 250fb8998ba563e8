// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Renderer names accepted by the "renderer" field.
const (
	RendererBrowser = "browser"
	RendererHTTP    = "http"
)

// DefaultUserAgent is a desktop Chrome user agent; blog platforms reject obvious bots.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Extraction
	Renderer                 string `json:"renderer,omitempty" validate:"omitempty,oneof=browser http"`
	UserAgent                string `json:"user_agent,omitempty"`
	NavigationTimeoutSeconds int    `json:"navigation_timeout_seconds,omitempty" validate:"gte=0,lte=600"`
	ElementWaitSeconds       int    `json:"element_wait_seconds,omitempty" validate:"gte=0,lte=120"`
	IdleWaitSeconds          int    `json:"idle_wait_seconds,omitempty" validate:"gte=0,lte=120"`
	MaxConcurrency           int    `json:"max_concurrency,omitempty" validate:"gte=0"`

	// Browser environment
	ChromePath     string `json:"chrome_path,omitempty"`
	InstallCommand string `json:"install_command,omitempty"` // Run once when no Chrome binary is found
	Headful        bool   `json:"headful,omitempty"`         // Show the browser window (debugging)

	// Behavior
	LogLevel string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Verbose  bool   `json:"verbose,omitempty"` // Print human-readable summaries
	APIKey   string `json:"api_key,omitempty"` // Gemini API key for the write command
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Renderer:                 RendererBrowser,
		UserAgent:                DefaultUserAgent,
		NavigationTimeoutSeconds: 30,
		ElementWaitSeconds:       5,
		IdleWaitSeconds:          10,
		LogLevel:                 "info",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' validation", jsonFieldName(fe.StructField()), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Renderer == "" {
		result.Renderer = defaults.Renderer
	}
	if result.UserAgent == "" {
		result.UserAgent = defaults.UserAgent
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.InstallCommand == "" {
		result.InstallCommand = defaults.InstallCommand
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Int fields: use default if zero
	if result.NavigationTimeoutSeconds == 0 {
		result.NavigationTimeoutSeconds = defaults.NavigationTimeoutSeconds
	}
	if result.ElementWaitSeconds == 0 {
		result.ElementWaitSeconds = defaults.ElementWaitSeconds
	}
	if result.IdleWaitSeconds == 0 {
		result.IdleWaitSeconds = defaults.IdleWaitSeconds
	}
	if result.MaxConcurrency == 0 {
		result.MaxConcurrency = defaults.MaxConcurrency
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// NavigationTimeout is the hard timeout for a single extraction.
func (c *Config) NavigationTimeout() time.Duration {
	return time.Duration(c.NavigationTimeoutSeconds) * time.Second
}

// ElementWait bounds each wait for a content container.
func (c *Config) ElementWait() time.Duration {
	return time.Duration(c.ElementWaitSeconds) * time.Second
}

// IdleWait bounds the wait for network idleness after navigation.
func (c *Config) IdleWait() time.Duration {
	return time.Duration(c.IdleWaitSeconds) * time.Second
}

// jsonFieldName converts a Go field name to the snake_case key used in config files.
func jsonFieldName(field string) string {
	var sb strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
