// Package api serves the translation, lesson and scoring operations over
// HTTP as JSON.
package api

//go:generate mockgen -source=api.go -destination=mock/api_mock.go

import (
	"context"

	"github.com/abhisek/languify/internal/lessons"
	"github.com/abhisek/languify/internal/teach"
	"github.com/abhisek/languify/internal/translate"
)

// Translator translates free text.
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (translate.Result, error)
}

// LessonGenerator creates lessons and annotates translations.
type LessonGenerator interface {
	Generate(ctx context.Context, english string) (*lessons.Lesson, error)
	Explain(ctx context.Context, english, spanish string) (*lessons.Annotation, error)
}

// Critic translates and critiques learner text.
type Critic interface {
	Critique(ctx context.Context, req teach.Request) (*teach.Critique, error)
}

// LessonSource looks lessons up by id.
type LessonSource interface {
	Get(ctx context.Context, id string) (*lessons.Lesson, error)
	List(ctx context.Context) ([]*lessons.Lesson, error)
}
