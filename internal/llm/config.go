package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration. It is a section of the
// application config and is filled from the YAML file and IMPA_LLM__*
// environment variables.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock".
	// Empty means "discover from the standard API key variables".
	Provider string `koanf:"provider"`

	Gemini     GeminiConfig     `koanf:"gemini"`
	OpenAI     OpenAIConfig     `koanf:"openai"`
	Anthropic  AnthropicConfig  `koanf:"anthropic"`
	OpenRouter OpenRouterConfig `koanf:"openrouter"`
	Retry      RetryConfig      `koanf:"retry"`
}

type GeminiConfig struct {
	APIKey string `koanf:"apiKey"`
	Model  string `koanf:"model"`
}

// OpenAIConfig also serves OpenAI-compatible endpoints through BaseURL.
type OpenAIConfig struct {
	APIKey  string `koanf:"apiKey"`
	Model   string `koanf:"model"`
	BaseURL string `koanf:"baseUrl"`
}

type AnthropicConfig struct {
	APIKey string `koanf:"apiKey"`
	Model  string `koanf:"model"`
}

type OpenRouterConfig struct {
	APIKey  string `koanf:"apiKey"`
	Model   string `koanf:"model"`
	BaseURL string `koanf:"baseUrl"` // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int           `koanf:"maxAttempts"`
	InitialWait time.Duration `koanf:"initialWait"`
	MaxWait     time.Duration `koanf:"maxWait"`
	Multiplier  float64       `koanf:"multiplier"`
}

// DefaultConfig returns a Config with no provider selected and the
// default model of each provider filled in.
func DefaultConfig() Config {
	return Config{
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// Discover fills empty API keys from the standard env vars
// (GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY)
// and, when no provider is selected, picks the first one with a key in
// that priority order.
func Discover(cfg Config) Config {
	fill := func(dst *string, env string) {
		if *dst == "" {
			*dst = os.Getenv(env)
		}
	}
	fill(&cfg.Gemini.APIKey, "GEMINI_API_KEY")
	fill(&cfg.OpenAI.APIKey, "OPENAI_API_KEY")
	fill(&cfg.Anthropic.APIKey, "ANTHROPIC_API_KEY")
	fill(&cfg.OpenRouter.APIKey, "OPENROUTER_API_KEY")

	if cfg.Provider != "" {
		return cfg
	}
	switch {
	case cfg.Gemini.APIKey != "":
		cfg.Provider = "gemini"
	case cfg.OpenAI.APIKey != "":
		cfg.Provider = "openai"
	case cfg.Anthropic.APIKey != "":
		cfg.Provider = "anthropic"
	case cfg.OpenRouter.APIKey != "":
		cfg.Provider = "openrouter"
	}
	return cfg
}

// Enabled reports whether a provider is selected.
func (c Config) Enabled() bool {
	return c.Provider != ""
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("IMPA_LLM__GEMINI__APIKEY or GEMINI_API_KEY is required for the gemini provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("IMPA_LLM__OPENAI__APIKEY or OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("IMPA_LLM__ANTHROPIC__APIKEY or ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("IMPA_LLM__OPENROUTER__APIKEY or OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("llm retry maxAttempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}
