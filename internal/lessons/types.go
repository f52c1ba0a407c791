package lessons

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// VocabEntry is one vocabulary item a lesson expects in the learner's answer.
type VocabEntry struct {
	English string `json:"english"`
	Spanish string `json:"spanish"`
	Notes   string `json:"notes"`
}

// Lesson is a unit of practice: an English prompt, its reference Spanish
// translation, and the supporting vocabulary, structure and example metadata.
// Lessons are immutable once created.
type Lesson struct {
	ID             string       `json:"id"`
	English        string       `json:"english"`
	CorrectAnswer  string       `json:"correctAnswer"`
	Vocabulary     []VocabEntry `json:"vocabulary"`
	StructureClues []string     `json:"structureClues"`
	Examples       []string     `json:"examples"`
}

// Attempt records one learner submission.
// Nothing persists attempts; the type is kept for callers that want to hold
// them in memory.
type Attempt struct {
	Input     string    `json:"input"`
	Score     int       `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrInvalidLesson is returned (wrapped) when a lesson fails Validate.
var ErrInvalidLesson = errors.New("invalid lesson")

// Validate checks the invariants the scoring engine relies on.
func (l *Lesson) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidLesson)
	}
	if strings.TrimSpace(l.English) == "" {
		return fmt.Errorf("%w: english text is required", ErrInvalidLesson)
	}
	if strings.TrimSpace(l.CorrectAnswer) == "" {
		return fmt.Errorf("%w: correct answer is required", ErrInvalidLesson)
	}
	if len(l.Vocabulary) == 0 {
		return fmt.Errorf("%w: vocabulary must not be empty", ErrInvalidLesson)
	}
	for i, v := range l.Vocabulary {
		if strings.TrimSpace(v.Spanish) == "" {
			return fmt.Errorf("%w: vocabulary[%d] has no spanish term", ErrInvalidLesson, i)
		}
	}
	return nil
}
