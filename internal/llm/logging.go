package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/languify/internal/store"
)

// eventProvider records each call as an LLM event and a log line.
type eventProvider struct {
	Provider
	repo   store.EventRepo
	logger *zap.Logger
}

// WithLogging wraps p so every Generate call is appended to repo and logged
// through logger. Either may be nil.
func WithLogging(p Provider, repo store.EventRepo, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &eventProvider{Provider: p, repo: repo, logger: logger.Named("llm")}
}

func (p *eventProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := p.Provider.Generate(ctx, req)
	ev := p.event(ctx, req, resp, err, time.Since(start))

	fields := []zap.Field{
		zap.String("provider", ev.Provider),
		zap.String("model", ev.Model),
		zap.String("purpose", ev.Purpose),
		zap.Int("input_tokens", ev.InputTokens),
		zap.Int("output_tokens", ev.OutputTokens),
		zap.Int64("latency_ms", ev.LatencyMs),
	}
	var lerr *Error
	switch {
	case err == nil:
		p.logger.Debug("llm call", append(fields, zap.String("stop", string(resp.StopReason)))...)
	case errors.As(err, &lerr):
		p.logger.Warn("llm call failed", append(fields, zap.Stringer("kind", lerr.Kind), zap.Error(err))...)
	default:
		p.logger.Warn("llm call failed", append(fields, zap.Error(err))...)
	}

	if p.repo != nil {
		if rerr := p.repo.AppendLLMRequest(ctx, ev); rerr != nil {
			p.logger.Warn("recording llm event", zap.Error(rerr))
		}
	}
	return resp, err
}

func (p *eventProvider) event(ctx context.Context, req Request, resp *Response, err error, took time.Duration) store.LLMRequestEventData {
	ev := store.LLMRequestEventData{
		Provider:    p.Name(),
		Model:       p.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   took.Milliseconds(),
		Success:     err == nil,
		RequestBody: describeRequest(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
		// Keep what the model produced when it failed validation.
		var lerr *Error
		if errors.As(err, &lerr) && len(lerr.Content) > 0 {
			ev.ResponseBody = string(lerr.Content)
		}
	}
	return ev
}

// describeRequest renders req as tagged plain-text sections for the
// activity views.
func describeRequest(req Request) string {
	var b strings.Builder
	section := func(tag, body string) {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", tag, body)
	}

	if req.System != "" {
		section("system", req.System)
	}
	for _, m := range req.Messages {
		section(string(m.Role), m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			section("schema: "+req.Schema.Name, string(def))
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
