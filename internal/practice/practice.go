// Package practice holds the state of one practice session as a value.
// Every operation returns a new State; nothing is mutated in place.
package practice

import (
	"strings"
	"time"

	"github.com/abhisek/languify/internal/lessons"
	"github.com/abhisek/languify/internal/scoring"
)

// Tab is a content panel shown beside the exercise.
type Tab int

const (
	TabVocabulary Tab = iota
	TabStructure
	TabExamples
	TabAnswer
)

func (t Tab) String() string {
	switch t {
	case TabVocabulary:
		return "Vocabulary"
	case TabStructure:
		return "Structure"
	case TabExamples:
		return "Examples"
	case TabAnswer:
		return "Answer"
	default:
		return "Unknown"
	}
}

// State is the practice session for one lesson.
type State struct {
	Lesson   *lessons.Lesson
	Input    string
	Tab      Tab
	Result   *scoring.Result
	Attempts []lessons.Attempt
}

// New starts a session on lesson with empty input and no result.
func New(lesson *lessons.Lesson) State {
	return State{Lesson: lesson, Tab: TabVocabulary}
}

// SetInput replaces the typed answer.
func SetInput(s State, input string) State {
	s.Input = input
	return s
}

// Submit scores the current input. Blank input leaves the state unchanged.
func Submit(s State, cfg scoring.Config, now time.Time) State {
	if s.Lesson == nil || strings.TrimSpace(s.Input) == "" {
		return s
	}

	res := scoring.Score(s.Input, s.Lesson.CorrectAnswer, s.Lesson, cfg)
	s.Result = &res

	attempts := make([]lessons.Attempt, len(s.Attempts), len(s.Attempts)+1)
	copy(attempts, s.Attempts)
	s.Attempts = append(attempts, lessons.Attempt{
		Input:     s.Input,
		Score:     res.Score,
		Timestamp: now,
	})

	if !tabAvailable(s, s.Tab) {
		s.Tab = TabVocabulary
	}
	return s
}

// AvailableTabs lists the panels the current result unlocks, in order.
func AvailableTabs(s State) []Tab {
	tabs := []Tab{TabVocabulary, TabStructure}
	if s.Result != nil && s.Result.ExamplesUnlocked {
		tabs = append(tabs, TabExamples)
	}
	if s.Result != nil && s.Result.IsAnswerRevealed {
		tabs = append(tabs, TabAnswer)
	}
	return tabs
}

// SelectTab switches to t if it is available; otherwise s is returned as is.
func SelectTab(s State, t Tab) State {
	if tabAvailable(s, t) {
		s.Tab = t
	}
	return s
}

// NextTab cycles forward through the available panels.
func NextTab(s State) State {
	tabs := AvailableTabs(s)
	for i, t := range tabs {
		if t == s.Tab {
			s.Tab = tabs[(i+1)%len(tabs)]
			return s
		}
	}
	s.Tab = tabs[0]
	return s
}

// BestScore returns the highest score among the attempts, or -1 if there
// are none.
func BestScore(s State) int {
	best := -1
	for _, a := range s.Attempts {
		best = max(best, a.Score)
	}
	return best
}

func tabAvailable(s State, t Tab) bool {
	for _, a := range AvailableTabs(s) {
		if a == t {
			return true
		}
	}
	return false
}
