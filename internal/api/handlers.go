package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/abhisek/languify/internal/lessons"
	"github.com/abhisek/languify/internal/llm"
	"github.com/abhisek/languify/internal/scoring"
	"github.com/abhisek/languify/internal/teach"
	"github.com/abhisek/languify/internal/translate"
	"github.com/abhisek/languify/internal/validate"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 64 << 10

type translateRequest struct {
	Text string `json:"text" validate:"required"`
}

type translateResponse struct {
	Translation string `json:"translation"`
	Source      string `json:"source"`
}

type explainRequest struct {
	EnglishText string `json:"englishText" validate:"required"`
	SpanishText string `json:"spanishText" validate:"required"`
}

type createLessonRequest struct {
	EnglishText string `json:"englishText" validate:"required"`
}

type scoreRequest struct {
	LessonID string `json:"lessonId" validate:"required"`
	Answer   string `json:"answer"`
}

type lessonsResponse struct {
	Lessons []*lessons.Lesson `json:"lessons"`
}

type errResp struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Languify backend is running!",
	})
}

func (s *server) translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Text = strings.TrimSpace(req.Text)
	if err := validate.Struct(req); err != nil {
		writeErr(w, http.StatusBadRequest, "Text is required", err.Error())
		return
	}

	res, err := s.Translator.Translate(r.Context(), req.Text, translate.DefaultFrom, translate.DefaultTo)
	if err != nil {
		s.Logger.Warn("translation failed", zap.Error(err))
		writeErr(w, upstreamStatus(err), "Translation failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, translateResponse{Translation: res.Text, Source: res.Source})
}

func (s *server) explain(w http.ResponseWriter, r *http.Request) {
	if s.Generator == nil {
		writeNoLLM(w)
		return
	}
	var req explainRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EnglishText = strings.TrimSpace(req.EnglishText)
	req.SpanishText = strings.TrimSpace(req.SpanishText)
	if err := validate.Struct(req); err != nil {
		writeErr(w, http.StatusBadRequest, "Both English and Spanish text are required", err.Error())
		return
	}

	ann, err := s.Generator.Explain(r.Context(), req.EnglishText, req.SpanishText)
	if err != nil {
		if errors.Is(err, lessons.ErrInvalidInput) {
			writeErr(w, http.StatusBadRequest, "Invalid input", err.Error())
			return
		}
		s.Logger.Warn("explanation failed", zap.Error(err))
		writeErr(w, upstreamStatus(err), "AI explanation failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ann)
}

func (s *server) createLesson(w http.ResponseWriter, r *http.Request) {
	if s.Generator == nil {
		writeNoLLM(w)
		return
	}
	var req createLessonRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EnglishText = strings.TrimSpace(req.EnglishText)
	if err := validate.Struct(req); err != nil {
		writeErr(w, http.StatusBadRequest, "English text is required", err.Error())
		return
	}

	lesson, err := s.Generator.Generate(r.Context(), req.EnglishText)
	if err != nil {
		var genErr *lessons.GenerationError
		switch {
		case errors.Is(err, lessons.ErrInvalidInput):
			writeErr(w, http.StatusBadRequest, "Invalid input", err.Error())
		case errors.As(err, &genErr) && genErr.Stage == lessons.StageTranslate:
			s.Logger.Warn("lesson translation failed", zap.Error(err))
			writeErr(w, http.StatusBadGateway, "Failed to create lesson", err.Error())
		default:
			s.Logger.Warn("lesson generation failed", zap.Error(err))
			writeErr(w, upstreamStatus(err), "Failed to create lesson", err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, lesson)
}

func (s *server) translateAndTeach(w http.ResponseWriter, r *http.Request) {
	if s.Critic == nil {
		writeNoLLM(w)
		return
	}
	var req teach.Request
	if !decodeJSON(w, r, &req) {
		return
	}

	critique, err := s.Critic.Critique(r.Context(), req)
	switch {
	case errors.Is(err, teach.ErrMissingText):
		writeErr(w, http.StatusBadRequest, "Missing text", "")
	case errors.Is(err, teach.ErrTextTooLong):
		writeErr(w, http.StatusBadRequest, "Text too long", err.Error())
	case err != nil:
		s.Logger.Warn("critique failed", zap.Error(err))
		writeErr(w, upstreamStatus(err), "Server error", err.Error())
	default:
		writeJSON(w, http.StatusOK, critique)
	}
}

func (s *server) listLessons(w http.ResponseWriter, r *http.Request) {
	list, err := s.Lessons.List(r.Context())
	if err != nil {
		s.Logger.Error("list lessons", zap.Error(err))
		writeErr(w, http.StatusInternalServerError, "Failed to list lessons", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, lessonsResponse{Lessons: list})
}

func (s *server) getLesson(w http.ResponseWriter, r *http.Request) {
	lesson, ok := s.lookupLesson(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, lesson)
}

func (s *server) score(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.LessonID = strings.TrimSpace(req.LessonID)
	if err := validate.Struct(req); err != nil {
		writeErr(w, http.StatusBadRequest, "Lesson id is required", err.Error())
		return
	}

	lesson, ok := s.lookupLesson(w, r, req.LessonID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, scoring.Score(req.Answer, lesson.CorrectAnswer, lesson, s.Scoring))
}

// lookupLesson writes a 404 or 500 and reports false when the lesson cannot
// be served.
func (s *server) lookupLesson(w http.ResponseWriter, r *http.Request, id string) (*lessons.Lesson, bool) {
	lesson, err := s.Lessons.Get(r.Context(), id)
	if errors.Is(err, lessons.ErrLessonNotFound) {
		writeErr(w, http.StatusNotFound, "Lesson not found", id)
		return nil, false
	}
	if err != nil {
		s.Logger.Error("get lesson", zap.String("id", id), zap.Error(err))
		writeErr(w, http.StatusInternalServerError, "Failed to load lesson", err.Error())
		return nil, false
	}
	return lesson, true
}

// decodeJSON reads a capped JSON body into v, writing a 400 or 413 and
// reporting false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErr(w, http.StatusRequestEntityTooLarge, "Request body too large", "")
			return false
		}
		writeErr(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return false
	}
	return true
}

// upstreamStatus maps translation service failures to 502 and transient
// LLM failures to 503.
func upstreamStatus(err error) int {
	var trErr *translate.Error
	switch {
	case errors.As(err, &trErr):
		return http.StatusBadGateway
	case llm.IsKind(err, llm.KindRateLimited), llm.IsKind(err, llm.KindUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeNoLLM(w http.ResponseWriter) {
	writeErr(w, http.StatusServiceUnavailable, "LLM provider not configured",
		"set LANGUIFY_LLM_PROVIDER and its API key, or export GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or OPENROUTER_API_KEY")
}

func writeErr(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, errResp{Error: msg, Details: details})
}
