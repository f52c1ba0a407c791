package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects and configures one LLM provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter" or
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including its retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the backoff applied by WithRetry.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-001"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// vendor describes where one provider's settings live in the environment.
type vendor struct {
	name    string
	keyVar  string // the vendor's own variable, used for discovery
	apiKey  *string
	model   *string
	baseURL *string
}

// vendors lists the providers in discovery order.
func (c *Config) vendors() []vendor {
	return []vendor{
		{name: "gemini", keyVar: "GEMINI_API_KEY", apiKey: &c.Gemini.APIKey, model: &c.Gemini.Model},
		{name: "openai", keyVar: "OPENAI_API_KEY", apiKey: &c.OpenAI.APIKey, model: &c.OpenAI.Model, baseURL: &c.OpenAI.BaseURL},
		{name: "anthropic", keyVar: "ANTHROPIC_API_KEY", apiKey: &c.Anthropic.APIKey, model: &c.Anthropic.Model},
		{name: "openrouter", keyVar: "OPENROUTER_API_KEY", apiKey: &c.OpenRouter.APIKey, model: &c.OpenRouter.Model, baseURL: &c.OpenRouter.BaseURL},
	}
}

func (v vendor) prefixed(setting string) string {
	return "LANGUIFY_" + strings.ToUpper(v.name) + "_" + setting
}

func setFromEnv(dst *string, key string) {
	if dst == nil {
		return
	}
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ConfigFromEnv reads LANGUIFY_LLM_PROVIDER, LANGUIFY_LLM_TIMEOUT and the
// LANGUIFY_<VENDOR>_{API_KEY,MODEL,BASE_URL} variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	setFromEnv(&cfg.Provider, "LANGUIFY_LLM_PROVIDER")

	for _, v := range cfg.vendors() {
		setFromEnv(v.apiKey, v.prefixed("API_KEY"))
		setFromEnv(v.model, v.prefixed("MODEL"))
		setFromEnv(v.baseURL, v.prefixed("BASE_URL"))
	}

	if d, err := time.ParseDuration(os.Getenv("LANGUIFY_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	return cfg
}

// DiscoverConfig picks the first vendor whose standard API key variable is
// set, in the order Gemini, OpenAI, Anthropic, OpenRouter.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	for _, v := range cfg.vendors() {
		if k := os.Getenv(v.keyVar); k != "" {
			cfg.Provider = v.name
			*v.apiKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider exists and has an API key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	for _, v := range c.vendors() {
		if v.name != c.Provider {
			continue
		}
		if *v.apiKey == "" {
			return fmt.Errorf("%s is required for the %s provider", v.prefixed("API_KEY"), v.name)
		}
		return nil
	}
	return fmt.Errorf("unknown LLM provider: %q", c.Provider)
}
