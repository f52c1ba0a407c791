package llm

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// NewOpenRouterProvider creates a provider for OpenRouter's OpenAI-compatible
// API. Model IDs carry a vendor prefix ("google/gemini-2.0-flash-001") and
// are passed through unchanged.
func NewOpenRouterProvider(cfg OpenRouterConfig) (Provider, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	p, err := newOpenAICompatible("openrouter", cfg.APIKey, baseURL, cfg.Model)
	if err != nil {
		return nil, err
	}
	return p, nil
}
