package teach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/abhisek/languify/internal/lessons"
	"github.com/abhisek/languify/internal/llm"
	"github.com/abhisek/languify/internal/translate"
)

// Config holds critique generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for critiques.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}

// Service is the LLM-backed Critic.
type Service struct {
	translator translate.Translator
	provider   llm.Provider
	lessons    lessons.Source
	cfg        Config
	logger     *zap.Logger
}

// NewService creates a critique service. src may be nil, in which case
// lesson ids are ignored.
func NewService(translator translate.Translator, provider llm.Provider, src lessons.Source, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		translator: translator,
		provider:   provider,
		lessons:    src,
		cfg:        cfg,
		logger:     logger,
	}
}

type critiqueOutput struct {
	Rating   Rating   `json:"rating"`
	Teaching Teaching `json:"teaching"`
}

// Critique translates req.Text and asks the LLM to rate and explain the
// translation.
func (s *Service) Critique(ctx context.Context, req Request) (*Critique, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrMissingText
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return nil, ErrTextTooLong
	}

	from, to := req.From, req.To
	if from == "" {
		from = translate.DefaultFrom
	}
	if to == "" {
		to = translate.DefaultTo
	}

	tr, err := s.translator.Translate(ctx, text, from, to)
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}

	lesson := s.lookupLesson(ctx, req.LessonID)

	ctx = llm.WithPurpose(ctx, "critique")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: critiqueSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCritiqueUserMessage(text, tr.Text, from, to, lesson)},
		},
		Schema:      CritiqueSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("critique generation: %w", err)
	}

	var out critiqueOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse critique response: %w", err)
	}

	out.Rating.Score = min(max(out.Rating.Score, 0), 100)
	if out.Rating.Reasons == nil {
		out.Rating.Reasons = []string{}
	}
	if out.Teaching.MiniLesson == nil {
		out.Teaching.MiniLesson = []Tip{}
	}
	if out.Teaching.Drills == nil {
		out.Teaching.Drills = []Drill{}
	}

	return &Critique{
		Translation: tr.Text,
		Rating:      out.Rating,
		Teaching:    out.Teaching,
	}, nil
}

// lookupLesson resolves an optional lesson id. Unknown ids are ignored so a
// stale client lesson does not block the critique.
func (s *Service) lookupLesson(ctx context.Context, id string) *lessons.Lesson {
	if id == "" || s.lessons == nil {
		return nil
	}
	lesson, err := s.lessons.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, lessons.ErrLessonNotFound) {
			s.logger.Warn("lesson lookup failed", zap.String("lesson_id", id), zap.Error(err))
		}
		return nil
	}
	return lesson
}
