// Package scoring grades a learner's Spanish translation against a lesson.
//
// Score is a pure function: it performs no I/O, keeps no state and never
// fails. Every input, including the empty string, maps to a Result.
package scoring

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/abhisek/languify/internal/lessons"
)

const (
	openingMark = "¿"
	closingMark = "?"
)

// Hint messages for the punctuation checks.
const (
	HintMissingOpeningMark = "Missing opening question mark (¿)"
	HintMissingClosingMark = "Missing closing question mark (?)"
)

// Result is the outcome of scoring one answer.
type Result struct {
	Score            int      `json:"score"`
	Hints            []string `json:"hints"`
	ExamplesUnlocked bool     `json:"examplesUnlocked"`
	IsAnswerRevealed bool     `json:"isAnswerRevealed"`
}

// Score compares userAnswer with correctAnswer and the lesson's vocabulary.
//
// The score is the sum of four independent stages: opening mark, closing
// mark, vocabulary coverage and positional word order. The sum is clamped to
// [0, MaxScore] and rounded half away from zero. Hints are collected in
// discovery order (opening mark, closing mark, vocabulary in lesson order)
// and truncated to cfg.MaxHints.
func Score(userAnswer, correctAnswer string, lesson *lessons.Lesson, cfg Config) Result {
	var total float64
	var hints []string

	if strings.Contains(userAnswer, openingMark) {
		total += PunctuationWeight
	} else {
		hints = append(hints, HintMissingOpeningMark)
	}

	if strings.Contains(userAnswer, closingMark) {
		total += PunctuationWeight
	} else {
		hints = append(hints, HintMissingClosingMark)
	}

	var vocab []lessons.VocabEntry
	if lesson != nil {
		vocab = lesson.Vocabulary
	}
	vocabPoints, vocabHints := vocabularyScore(userAnswer, vocab)
	total += vocabPoints
	hints = append(hints, vocabHints...)

	total += wordOrderScore(userAnswer, correctAnswer)

	score := int(math.Round(clamp(total, 0, MaxScore)))

	return Result{
		Score:            score,
		Hints:            limitHints(hints, cfg.MaxHints),
		ExamplesUnlocked: cfg.ExamplesUnlocked(score),
		IsAnswerRevealed: cfg.AnswerRevealed(score),
	}
}

// VocabularyHint formats the hint for a vocabulary entry missing from the answer.
func VocabularyHint(v lessons.VocabEntry) string {
	return fmt.Sprintf("Missing vocabulary: %q (%s)", v.Spanish, v.English)
}

// vocabularyScore awards VocabularyPool/n for every entry whose Spanish term
// occurs as a case-insensitive substring of the answer. An empty vocabulary
// contributes nothing.
func vocabularyScore(userAnswer string, vocab []lessons.VocabEntry) (float64, []string) {
	if len(vocab) == 0 {
		return 0, nil
	}

	perEntry := float64(VocabularyPool) / float64(len(vocab))
	answer := strings.ToLower(userAnswer)

	var points float64
	var hints []string
	for _, v := range vocab {
		if strings.Contains(answer, strings.ToLower(v.Spanish)) {
			points += perEntry
		} else {
			hints = append(hints, VocabularyHint(v))
		}
	}
	return points, hints
}

// wordOrderScore awards WordOrderPool/m for every position where the user's
// token equals the reference token. m is the reference token count, with a
// floor of one.
func wordOrderScore(userAnswer, correctAnswer string) float64 {
	userTokens := Tokenize(userAnswer)
	correctTokens := Tokenize(correctAnswer)

	perMatch := float64(WordOrderPool) / float64(max(len(correctTokens), 1))

	var points float64
	for i, tok := range correctTokens {
		if i < len(userTokens) && userTokens[i] == tok {
			points += perMatch
		}
	}
	return points
}

// Tokenize strips question marks, lowercases and splits s on runs of
// whitespace. Empty tokens are never returned.
func Tokenize(s string) []string {
	s = strings.ReplaceAll(s, openingMark, "")
	s = strings.ReplaceAll(s, closingMark, "")
	return strings.FieldsFunc(strings.ToLower(s), isSeparator)
}

// isSeparator also treats the byte order mark as whitespace, which pasted
// text sometimes carries.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func limitHints(hints []string, maxHints int) []string {
	n := min(len(hints), max(maxHints, 0))
	out := make([]string, n)
	copy(out, hints[:n])
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
