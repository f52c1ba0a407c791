package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/languify/internal/store"
)

// NewProvider builds the configured vendor adapter and layers the timeout,
// retry and event recording around it. Each attempt is recorded separately.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, logger *zap.Logger) (Provider, error) {
	if cfg.Provider == "mock" {
		return NewScripted(), nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	}
	if err != nil {
		return nil, fmt.Errorf("%s provider: %w", cfg.Provider, err)
	}

	p := WithLogging(base, events, logger)
	p = WithRetry(p, cfg.Retry)
	return WithTimeout(p, cfg.Timeout), nil
}

// NewProviderFromEnv uses the LANGUIFY_* settings when they name a usable
// provider and otherwise falls back to whichever vendor key is exported.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo, logger *zap.Logger) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		found, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = found
	}
	return NewProvider(ctx, cfg, events, logger)
}
