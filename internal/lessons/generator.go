package lessons

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/abhisek/languify/internal/llm"
	"github.com/abhisek/languify/internal/translate"
)

// ErrInvalidInput is returned for empty or oversized English text.
var ErrInvalidInput = errors.New("invalid input")

// Generation stages reported by GenerationError.
const (
	StageTranslate = "translate"
	StageAnnotate  = "annotate"
	StageValidate  = "validate"
	StageSave      = "save"
)

// GenerationError reports which step of lesson generation failed.
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("lesson generation failed at %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Generator turns free English text into a practice lesson.
type Generator interface {
	Generate(ctx context.Context, english string) (*Lesson, error)
}

// Annotation is the teaching metadata attached to a translation.
type Annotation struct {
	Vocabulary     []VocabEntry `json:"vocabulary"`
	StructureClues []string     `json:"structureClues"`
	Examples       []string     `json:"examples"`
}

// Saver persists generated lessons.
type Saver interface {
	Save(ctx context.Context, lesson *Lesson) error
}

// LLMGenerator builds lessons by translating the text and then asking an LLM
// to annotate the translation.
type LLMGenerator struct {
	translator translate.Translator
	provider   llm.Provider
	saver      Saver
	cfg        Config
}

// NewLLMGenerator creates a generator. saver may be nil, in which case
// lessons are returned without being stored.
func NewLLMGenerator(translator translate.Translator, provider llm.Provider, saver Saver, cfg Config) *LLMGenerator {
	return &LLMGenerator{translator: translator, provider: provider, saver: saver, cfg: cfg}
}

// Generate translates english, annotates the translation and returns a
// validated lesson with a fresh dynamic id.
func (g *LLMGenerator) Generate(ctx context.Context, english string) (*Lesson, error) {
	english, err := CleanInput(english)
	if err != nil {
		return nil, err
	}

	tr, err := g.translator.Translate(ctx, english, g.cfg.From, g.cfg.To)
	if err != nil {
		return nil, &GenerationError{Stage: StageTranslate, Err: err}
	}

	ann, err := g.annotate(ctx, english, tr.Text)
	if err != nil {
		return nil, &GenerationError{Stage: StageAnnotate, Err: err}
	}

	lesson := &Lesson{
		ID:             "dynamic-" + uuid.NewString(),
		English:        english,
		CorrectAnswer:  tr.Text,
		Vocabulary:     presentVocabulary(ann.Vocabulary, tr.Text),
		StructureClues: nonEmpty(ann.StructureClues),
		Examples:       nonEmpty(ann.Examples),
	}
	if err := lesson.Validate(); err != nil {
		return nil, &GenerationError{Stage: StageValidate, Err: err}
	}

	if g.saver != nil {
		if err := g.saver.Save(ctx, lesson); err != nil {
			return nil, &GenerationError{Stage: StageSave, Err: err}
		}
	}
	return lesson, nil
}

// Explain annotates an existing English/Spanish pair without creating a
// lesson.
func (g *LLMGenerator) Explain(ctx context.Context, english, spanish string) (*Annotation, error) {
	english = strings.TrimSpace(english)
	spanish = strings.TrimSpace(spanish)
	if english == "" || spanish == "" {
		return nil, fmt.Errorf("%w: both English and Spanish text are required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(english) > MaxInputLength || utf8.RuneCountInString(spanish) > MaxInputLength {
		return nil, fmt.Errorf("%w: text exceeds %d characters", ErrInvalidInput, MaxInputLength)
	}

	ann, err := g.annotate(ctx, english, spanish)
	if err != nil {
		return nil, &GenerationError{Stage: StageAnnotate, Err: err}
	}
	return ann, nil
}

func (g *LLMGenerator) annotate(ctx context.Context, english, spanish string) (*Annotation, error) {
	ctx = llm.WithPurpose(ctx, "lesson-annotate")

	req := llm.Request{
		System: annotationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAnnotationUserMessage(english, spanish)},
		},
		Schema:      AnnotationSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var ann Annotation
	if err := json.Unmarshal(resp.Content, &ann); err != nil {
		return nil, fmt.Errorf("parse annotation response: %w", err)
	}
	return &ann, nil
}

// CleanInput trims english and enforces the length bounds for generation.
func CleanInput(english string) (string, error) {
	english = strings.TrimSpace(english)
	if english == "" {
		return "", fmt.Errorf("%w: English text is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(english) > MaxInputLength {
		return "", fmt.Errorf("%w: text exceeds %d characters", ErrInvalidInput, MaxInputLength)
	}
	return english, nil
}

// presentVocabulary keeps the entries whose Spanish term occurs in the
// translation. Terms the reference answer lacks could never be matched.
func presentVocabulary(vocab []VocabEntry, translation string) []VocabEntry {
	lower := strings.ToLower(translation)
	var out []VocabEntry
	for _, v := range vocab {
		v.Spanish = strings.TrimSpace(v.Spanish)
		if v.Spanish == "" || !strings.Contains(lower, strings.ToLower(v.Spanish)) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
