package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client generates text with a hosted model.
type Client interface {
	// GenerateContent returns the model's answer to prompt.
	GenerateContent(ctx context.Context, prompt string, tier ModelTier, opts GenerationOptions) (string, error)
	// DescribeImage answers prompt about a single image.
	DescribeImage(ctx context.Context, image []byte, mimeType, prompt string, tier ModelTier, opts GenerationOptions) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a Client for the configured provider.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	switch config.Provider {
	case ProviderGemini, "":
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", config.Provider)
	}
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, config: config}, nil
}

// GenerateContent implements Client.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier, opts GenerationOptions) (string, error) {
	model, err := c.model(tier, opts)
	if err != nil {
		return "", err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractTextFromResponse(resp)
}

// DescribeImage implements Client.
func (c *GeminiClient) DescribeImage(ctx context.Context, image []byte, mimeType, prompt string, tier ModelTier, opts GenerationOptions) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("image is empty")
	}
	model, err := c.model(tier, opts)
	if err != nil {
		return "", err
	}

	resp, err := model.GenerateContent(ctx, genai.Blob{MIMEType: mimeType, Data: image}, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to describe image: %w", err)
	}
	return extractTextFromResponse(resp)
}

func (c *GeminiClient) model(tier ModelTier, opts GenerationOptions) (*genai.GenerativeModel, error) {
	name := c.config.GetModel(tier)
	if name == "" {
		return nil, fmt.Errorf("no model configured for tier %s", tier)
	}

	model := c.client.GenerativeModel(name)
	if opts.Temperature > 0 {
		model.SetTemperature(opts.Temperature)
	}
	if opts.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(opts.MaxOutputTokens)
	}
	return model, nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
