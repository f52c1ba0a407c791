package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// Reply is one scripted outcome.
type Reply struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// ScriptedProvider replays replies in order and records every request. It
// backs the "mock" provider setting and tests.
type ScriptedProvider struct {
	mu       sync.Mutex
	replies  []Reply
	requests []Request
}

// NewScripted returns a provider that answers with replies, then fails with
// KindUnavailable once they run out.
func NewScripted(replies ...Reply) *ScriptedProvider {
	return &ScriptedProvider{replies: replies}
}

func (s *ScriptedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
	if len(s.replies) == 0 {
		return nil, &Error{Kind: KindUnavailable, Provider: s.Name(), Err: errors.New("no scripted reply left")}
	}

	next := s.replies[0]
	s.replies = s.replies[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{Content: next.Content, Usage: next.Usage, Model: s.ModelID(), StopReason: StopEnd}, nil
}

func (s *ScriptedProvider) ModelID() string { return "mock" }

func (s *ScriptedProvider) Name() string { return "mock" }

// Push queues another reply.
func (s *ScriptedProvider) Push(r Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, r)
}

// Requests returns a copy of the requests seen so far.
func (s *ScriptedProvider) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}
