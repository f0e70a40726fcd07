package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/impa-jovem/impa/internal/logging"
	"github.com/impa-jovem/impa/internal/store"
)

// ErrNoProvider is returned by NewProvider when no provider is configured.
var ErrNoProvider = errors.New("no LLM provider configured")

// NewProvider creates a Provider from configuration, wrapped with retry
// and event recording: caller → retry → events → provider.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, log *logging.Logger) (Provider, error) {
	if !cfg.Enabled() {
		return nil, ErrNoProvider
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if events != nil {
		base = WithEvents(base, cfg.Provider, events, log)
	}
	return WithRetry(base, cfg.Retry, log), nil
}
