// Package llm wraps the generation model used to turn a style profile into posts.
package llm

// ModelTier selects a model by capability rather than by name.
type ModelTier string

const (
	// TierLite is used for image description
	TierLite ModelTier = "lite"
	// TierStandard is used for post writing
	TierStandard ModelTier = "standard"
	// TierAdvanced is available for long-form rewriting
	TierAdvanced ModelTier = "advanced"
)

// Provider names an LLM backend.
type Provider string

// ProviderGemini is the only backend wired today.
const ProviderGemini Provider = "gemini"

// Config maps tiers to concrete model names.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model for tier, falling back to standard and then lite.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of c with tier mapped to model.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{Provider: c.Provider, Models: make(map[ModelTier]string, len(c.Models)+1)}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}

// GenerationOptions tunes a single generation call. Zero values keep the model defaults.
type GenerationOptions struct {
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultWritingOptions are used for blog post generation.
func DefaultWritingOptions() GenerationOptions {
	return GenerationOptions{Temperature: 0.7, MaxOutputTokens: 2048}
}

// DefaultDescribeOptions are used for image description.
func DefaultDescribeOptions() GenerationOptions {
	return GenerationOptions{Temperature: 0.2, MaxOutputTokens: 1024}
}
