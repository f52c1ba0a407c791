package lessons

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/languify/internal/store"
)

// ErrLessonNotFound is returned when no lesson has the requested id.
var ErrLessonNotFound = errors.New("lesson not found")

// Source supplies lessons by id.
type Source interface {
	Get(ctx context.Context, id string) (*Lesson, error)
	List(ctx context.Context) ([]*Lesson, error)
}

// Library serves the built-in catalog plus generated lessons kept in a
// store.LessonRepo. Catalog lessons shadow stored lessons with the same id.
type Library struct {
	repo store.LessonRepo
}

// NewLibrary creates a Library. A nil repo serves the catalog only.
func NewLibrary(repo store.LessonRepo) *Library {
	return &Library{repo: repo}
}

// Get returns the lesson with the given id.
func (l *Library) Get(ctx context.Context, id string) (*Lesson, error) {
	if lesson, ok := CatalogLesson(id); ok {
		return lesson, nil
	}
	if l.repo == nil {
		return nil, fmt.Errorf("%w: %s", ErrLessonNotFound, id)
	}

	rec, err := l.repo.GetLesson(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: %s", ErrLessonNotFound, id)
	}
	return decodeRecord(*rec)
}

// List returns the catalog in display order followed by generated lessons,
// newest first.
func (l *Library) List(ctx context.Context) ([]*Lesson, error) {
	out := Catalog()
	if l.repo == nil {
		return out, nil
	}

	recs, err := l.repo.ListLessons(ctx, store.QueryOpts{})
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		if _, shadowed := CatalogLesson(rec.ID); shadowed {
			continue
		}
		lesson, err := decodeRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, lesson)
	}
	return out, nil
}

// Save validates and stores a generated lesson.
func (l *Library) Save(ctx context.Context, lesson *Lesson) error {
	if err := lesson.Validate(); err != nil {
		return err
	}
	if _, reserved := CatalogLesson(lesson.ID); reserved {
		return fmt.Errorf("%w: id %q is reserved by the catalog", ErrInvalidLesson, lesson.ID)
	}
	if l.repo == nil {
		return errors.New("lesson library has no storage")
	}

	payload, err := json.Marshal(lesson)
	if err != nil {
		return fmt.Errorf("encode lesson: %w", err)
	}
	return l.repo.SaveLesson(ctx, store.LessonRecord{
		ID:            lesson.ID,
		English:       lesson.English,
		CorrectAnswer: lesson.CorrectAnswer,
		Payload:       string(payload),
		CreatedAt:     time.Now(),
	})
}

func decodeRecord(rec store.LessonRecord) (*Lesson, error) {
	var lesson Lesson
	if err := json.Unmarshal([]byte(rec.Payload), &lesson); err != nil {
		return nil, fmt.Errorf("decode lesson %s: %w", rec.ID, err)
	}
	return &lesson, nil
}
