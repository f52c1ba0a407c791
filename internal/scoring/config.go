package scoring

// Point pools. The two punctuation marks plus the vocabulary and word-order
// pools add up to MaxScore.
const (
	PunctuationWeight = 10
	VocabularyPool    = 40
	WordOrderPool     = 40

	MaxScore = 2*PunctuationWeight + VocabularyPool + WordOrderPool
)

// Config holds the tunable unlock thresholds and the hint cap.
// The two thresholds are independent; neither is derived from the other.
type Config struct {
	// ExamplesThreshold unlocks example sentences when the score is
	// strictly greater than it.
	ExamplesThreshold int

	// RevealThreshold reveals the reference answer when the score is
	// greater than or equal to it.
	RevealThreshold int

	// MaxHints caps the number of hints returned.
	MaxHints int
}

// DefaultConfig returns the shipped thresholds.
func DefaultConfig() Config {
	return Config{
		ExamplesThreshold: 50,
		RevealThreshold:   80,
		MaxHints:          3,
	}
}

// ExamplesUnlocked reports whether score unlocks the examples panel.
func (c Config) ExamplesUnlocked(score int) bool {
	return score > c.ExamplesThreshold
}

// AnswerRevealed reports whether score reveals the reference answer.
func (c Config) AnswerRevealed(score int) bool {
	return score >= c.RevealThreshold
}
