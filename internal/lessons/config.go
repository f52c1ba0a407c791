package lessons

// MaxInputLength is the longest English text, in characters, accepted for
// lesson generation.
const MaxInputLength = 500

// Config holds lesson generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	From        string
	To          string
}

// DefaultConfig returns sensible defaults for lesson generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.3,
		From:        "en",
		To:          "es",
	}
}
