// Package teach translates a learner's sentence and critiques the result
// with a short rating and teaching material.
package teach

import (
	"context"
	"errors"
)

// MaxTextLength is the longest text, in characters, accepted for critique.
const MaxTextLength = 500

var (
	// ErrMissingText is returned when the request carries no text.
	ErrMissingText = errors.New("missing text")
	// ErrTextTooLong is returned when the text exceeds MaxTextLength.
	ErrTextTooLong = errors.New("text too long")
)

// Request asks for a translation and critique. From and To default to
// en and es. LessonID optionally ties the critique to a practice lesson.
type Request struct {
	Text     string `json:"text"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
	LessonID string `json:"lessonId,omitempty"`
}

// Rating grades the translation.
type Rating struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// Tip is one mini-lesson point.
type Tip struct {
	Title string `json:"title"`
	Tip   string `json:"tip"`
}

// Drill types.
const (
	DrillFillBlank = "fillBlank"
	DrillTranslate = "translate"
	DrillReorder   = "reorder"
)

// Drill is a short follow-up exercise.
type Drill struct {
	Type   string `json:"type"`
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// Teaching is the explanatory material attached to a critique.
type Teaching struct {
	Explanation string  `json:"explanation"`
	MiniLesson  []Tip   `json:"miniLesson"`
	Drills      []Drill `json:"drills"`
}

// Critique is the translation together with its rating and teaching.
type Critique struct {
	Translation string   `json:"translation"`
	Rating      Rating   `json:"rating"`
	Teaching    Teaching `json:"teaching"`
}

// Critic produces critiques.
type Critic interface {
	Critique(ctx context.Context, req Request) (*Critique, error)
}
